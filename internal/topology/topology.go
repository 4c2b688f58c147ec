// Package topology derives the network-overlay route graph from the
// current node set. Synthesis is a pure function of its inputs except
// for the per-edge opacity jitter on node-to-hub links, which comes
// from the caller-supplied random source and carries no state.
package topology

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/cybergis/ctfmap/internal/game"
)

// Point is a latitude/longitude pair on the rendered polyline.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Edge is one rendered curve with its display style.
type Edge struct {
	Points  []Point `json:"points"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Weight  float64 `json:"weight"`
}

// Graph is the full derived route set. It is recomputed from scratch
// on every topology-relevant change and never persisted.
type Graph struct {
	Edges []Edge `json:"edges"`
}

// Regional hub keys.
const (
	hubUSA = iota
	hubEurope
	hubRussia
	hubAsia
	hubCount
)

// hubPatterns matches each hub by node name, first match wins.
var hubPatterns = [hubCount]string{
	hubUSA:    "United States",
	hubEurope: "Germany",
	hubRussia: "Russia",
	hubAsia:   "China",
}

// Region display colors.
const (
	colorBackbone = "#ef4444"
	colorAmericas = "#3b82f6"
	colorEurope   = "#10b981"
	colorRussia   = "#f59e0b"
	colorAsia     = "#d946ef"
	colorManual   = "#ffffff"
)

// Curvature ratio and sampling for the quadratic bezier interpolation.
const (
	arcRatio   = 0.2
	curveSteps = 50
)

// Opacity band for node-to-hub edges.
const (
	spokeOpacityBase = 0.15
	spokeOpacitySpan = 0.25
)

// Synthesize builds the route graph for the given nodes: backbone
// edges between the regional hubs, one edge from every other node to
// its regional hub, and a high-contrast edge for every manual
// connection. Backbone and manual geometry is deterministic; only the
// spoke opacity draws from rng.
func Synthesize(nodes []game.Node, rng *rand.Rand) Graph {
	var g Graph
	if len(nodes) == 0 {
		return g
	}

	hubs := findHubs(nodes)

	// Backbone: US <-> Europe <-> Russia <-> Asia.
	backbone := [][2]int{
		{hubUSA, hubEurope},
		{hubEurope, hubRussia},
		{hubRussia, hubAsia},
	}
	for _, pair := range backbone {
		from, to := hubs[pair[0]], hubs[pair[1]]
		if from == nil || to == nil {
			continue
		}
		g.Edges = append(g.Edges, curveEdge(*from, *to, colorBackbone, 0.6, 2))
	}

	// Regional spokes.
	for _, n := range nodes {
		if isHub(hubs, n.ID) {
			continue
		}

		hub, color := assignHub(n, hubs)
		if hub == nil {
			continue
		}
		opacity := spokeOpacityBase + rng.Float64()*spokeOpacitySpan
		g.Edges = append(g.Edges, curveEdge(n, *hub, color, opacity, 1))
	}

	// Manual connections, independent of regional routing.
	for _, n := range nodes {
		if n.ConnectedTo == nil {
			continue
		}
		if target, ok := findNode(nodes, *n.ConnectedTo); ok {
			g.Edges = append(g.Edges, curveEdge(n, target, colorManual, 0.9, 2))
		}
	}

	return g
}

// findHubs scans for the four regional hubs by name pattern. A missing
// hub stays nil and silently disables routes terminating there.
func findHubs(nodes []game.Node) [hubCount]*game.Node {
	var hubs [hubCount]*game.Node
	for h, pattern := range hubPatterns {
		for i := range nodes {
			if strings.Contains(nodes[i].Name, pattern) {
				hubs[h] = &nodes[i]
				break
			}
		}
	}
	return hubs
}

// assignHub places a node in exactly one regional band by longitude
// and latitude. Africa and the Middle East fall through to the Europe
// hub; when the preferred hub is absent the route falls back to
// Russia, then the US.
func assignHub(n game.Node, hubs [hubCount]*game.Node) (*game.Node, string) {
	var hub *game.Node
	color := colorAmericas

	switch {
	case n.Lng < -30:
		hub, color = hubs[hubUSA], colorAmericas
	case n.Lng >= -30 && n.Lng < 45 && n.Lat > 20:
		hub, color = hubs[hubEurope], colorEurope
	case n.Lng >= 45 && n.Lng < 90 && n.Lat > 40:
		hub, color = hubs[hubRussia], colorRussia
	case n.Lng >= 60:
		hub, color = hubs[hubAsia], colorAsia
	default:
		hub, color = hubs[hubEurope], colorEurope
	}

	if hub == nil {
		if hubs[hubRussia] != nil {
			hub = hubs[hubRussia]
		} else {
			hub = hubs[hubUSA]
		}
	}
	return hub, color
}

func isHub(hubs [hubCount]*game.Node, id int64) bool {
	for _, h := range hubs {
		if h != nil && h.ID == id {
			return true
		}
	}
	return false
}

func findNode(nodes []game.Node, id int64) (game.Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return game.Node{}, false
}

func curveEdge(from, to game.Node, color string, opacity, weight float64) Edge {
	return Edge{
		Points:  Curve(Point{from.Lat, from.Lng}, Point{to.Lat, to.Lng}),
		Color:   color,
		Opacity: opacity,
		Weight:  weight,
	}
}

// Curve interpolates a quadratic bezier between the endpoints. The
// control point sits at the midpoint, lifted on the latitude axis by
// arcRatio times the euclidean distance between the endpoints, and the
// curve is sampled at curveSteps+1 parameters from 0 to 1 inclusive.
// Same endpoints always produce the same polyline.
func Curve(from, to Point) []Point {
	dist := math.Hypot(to.Lng-from.Lng, to.Lat-from.Lat)
	arc := dist * arcRatio

	ctrl := Point{
		Lat: (from.Lat+to.Lat)/2 + arc,
		Lng: (from.Lng + to.Lng) / 2,
	}

	points := make([]Point, 0, curveSteps+1)
	for i := 0; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		points = append(points, Point{
			Lat: u*u*from.Lat + 2*u*t*ctrl.Lat + t*t*to.Lat,
			Lng: u*u*from.Lng + 2*u*t*ctrl.Lng + t*t*to.Lng,
		})
	}
	return points
}
