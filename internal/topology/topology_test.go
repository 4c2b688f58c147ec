package topology_test

import (
	"math/rand/v2"
	"testing"

	"github.com/cybergis/ctfmap/internal/game"
	"github.com/cybergis/ctfmap/internal/topology"
)

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func edgesByColor(g topology.Graph, color string) []topology.Edge {
	var out []topology.Edge
	for _, e := range g.Edges {
		if e.Color == color {
			out = append(out, e)
		}
	}
	return out
}

func TestEmptyNodeSet(t *testing.T) {
	g := topology.Synthesize(nil, newRng(1))
	if len(g.Edges) != 0 {
		t.Fatalf("edges = %d, want 0", len(g.Edges))
	}
}

func TestScenarioBackboneAndEuropeSpoke(t *testing.T) {
	nodes := []game.Node{
		{ID: 1, Name: "Washington, D.C. [United States]", Lat: 38, Lng: -100},
		{ID: 2, Name: "Berlin [Germany]", Lat: 52, Lng: 10},
		{ID: 3, Name: "Kyiv [Ukraine]", Lat: 50, Lng: 40},
	}

	g := topology.Synthesize(nodes, newRng(1))

	backbone := edgesByColor(g, "#ef4444")
	if len(backbone) != 1 {
		t.Fatalf("backbone edges = %d, want 1 (US-Europe)", len(backbone))
	}
	start := backbone[0].Points[0]
	if start.Lat != 38 || start.Lng != -100 {
		t.Errorf("backbone starts at %+v, want the US hub", start)
	}

	spokes := edgesByColor(g, "#10b981")
	if len(spokes) != 1 {
		t.Fatalf("europe spokes = %d, want 1", len(spokes))
	}
	first := spokes[0].Points[0]
	last := spokes[0].Points[len(spokes[0].Points)-1]
	if first.Lat != 50 || first.Lng != 40 {
		t.Errorf("spoke starts at %+v, want the non-hub node", first)
	}
	if last.Lat != 52 || last.Lng != 10 {
		t.Errorf("spoke ends at %+v, want the Europe hub", last)
	}
}

func TestRegionalBands(t *testing.T) {
	hubs := []game.Node{
		{ID: 1, Name: "Washington, D.C. [United States]", Lat: 38.9, Lng: -77},
		{ID: 2, Name: "Berlin [Germany]", Lat: 52.5, Lng: 13.4},
		{ID: 3, Name: "Moscow [Russia]", Lat: 55.7, Lng: 37.6},
		{ID: 4, Name: "Beijing [China]", Lat: 39.9, Lng: 116.4},
	}

	tests := []struct {
		name  string
		node  game.Node
		color string
	}{
		{"americas", game.Node{ID: 10, Name: "Lima", Lat: -12, Lng: -77.1}, "#3b82f6"},
		{"europe", game.Node{ID: 11, Name: "Paris", Lat: 48.8, Lng: 2.3}, "#10b981"},
		{"russia band", game.Node{ID: 12, Name: "Astana", Lat: 51.1, Lng: 71.4}, "#f59e0b"},
		{"asia", game.Node{ID: 13, Name: "Jakarta", Lat: -6.2, Lng: 106.8}, "#d946ef"},
		{"africa falls to europe", game.Node{ID: 14, Name: "Lagos", Lat: 6.5, Lng: 3.4}, "#10b981"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := topology.Synthesize(append(hubs[:4:4], tc.node), newRng(1))
			spokes := edgesByColor(g, tc.color)
			if len(spokes) != 1 {
				t.Fatalf("spokes colored %s = %d, want 1", tc.color, len(spokes))
			}
			first := spokes[0].Points[0]
			if first.Lat != tc.node.Lat || first.Lng != tc.node.Lng {
				t.Errorf("spoke starts at %+v, want %+v", first, tc.node)
			}
		})
	}
}

func TestMissingPreferredHubFallsBack(t *testing.T) {
	// No Germany node, so the Africa band's preferred hub is absent;
	// the spoke must route to Russia instead.
	nodes := []game.Node{
		{ID: 1, Name: "Moscow [Russia]", Lat: 55.7, Lng: 37.6},
		{ID: 2, Name: "Lagos", Lat: 6.5, Lng: 3.4},
	}

	g := topology.Synthesize(nodes, newRng(1))
	spokes := edgesByColor(g, "#10b981")
	if len(spokes) != 1 {
		t.Fatalf("spokes = %d, want 1", len(spokes))
	}
	last := spokes[0].Points[len(spokes[0].Points)-1]
	if last.Lat != 55.7 || last.Lng != 37.6 {
		t.Errorf("spoke ends at %+v, want the Russia hub", last)
	}
}

func TestNoHubsNoSpokes(t *testing.T) {
	nodes := []game.Node{
		{ID: 1, Name: "Lagos", Lat: 6.5, Lng: 3.4},
		{ID: 2, Name: "Lima", Lat: -12, Lng: -77.1},
	}

	g := topology.Synthesize(nodes, newRng(1))
	if len(g.Edges) != 0 {
		t.Fatalf("edges = %d, want 0 with no hubs present", len(g.Edges))
	}
}

func TestManualConnection(t *testing.T) {
	target := int64(2)
	nodes := []game.Node{
		{ID: 1, Name: "Alpha Relay", Lat: 10, Lng: 10, ConnectedTo: &target},
		{ID: 2, Name: "Beta Relay", Lat: 20, Lng: 20},
	}

	g := topology.Synthesize(nodes, newRng(1))
	manual := edgesByColor(g, "#ffffff")
	if len(manual) != 1 {
		t.Fatalf("manual edges = %d, want 1", len(manual))
	}
	if manual[0].Opacity != 0.9 || manual[0].Weight != 2 {
		t.Errorf("manual edge style = %+v, want opacity 0.9 weight 2", manual[0])
	}
}

func TestManualConnectionToMissingNode(t *testing.T) {
	gone := int64(99)
	nodes := []game.Node{
		{ID: 1, Name: "Alpha Relay", Lat: 10, Lng: 10, ConnectedTo: &gone},
	}

	g := topology.Synthesize(nodes, newRng(1))
	if manual := edgesByColor(g, "#ffffff"); len(manual) != 0 {
		t.Fatalf("manual edges = %d, want 0 for a dangling reference", len(manual))
	}
}

func TestDeterministicGeometry(t *testing.T) {
	target := int64(2)
	nodes := []game.Node{
		{ID: 1, Name: "Washington, D.C. [United States]", Lat: 38.9, Lng: -77, ConnectedTo: &target},
		{ID: 2, Name: "Berlin [Germany]", Lat: 52.5, Lng: 13.4},
		{ID: 3, Name: "Paris", Lat: 48.8, Lng: 2.3},
	}

	// Different random sources: backbone and manual polylines must not
	// change; only spoke opacity may.
	a := topology.Synthesize(nodes, newRng(1))
	b := topology.Synthesize(nodes, newRng(2))

	for _, color := range []string{"#ef4444", "#ffffff"} {
		ea, eb := edgesByColor(a, color), edgesByColor(b, color)
		if len(ea) != len(eb) {
			t.Fatalf("edge count for %s differs: %d vs %d", color, len(ea), len(eb))
		}
		for i := range ea {
			if ea[i].Opacity != eb[i].Opacity || ea[i].Weight != eb[i].Weight {
				t.Errorf("style for %s edge %d differs", color, i)
			}
			for j := range ea[i].Points {
				if ea[i].Points[j] != eb[i].Points[j] {
					t.Fatalf("point %d of %s edge %d differs: %+v vs %+v",
						j, color, i, ea[i].Points[j], eb[i].Points[j])
				}
			}
		}
	}
}

func TestSpokeOpacityWithinBand(t *testing.T) {
	nodes := []game.Node{
		{ID: 1, Name: "Berlin [Germany]", Lat: 52.5, Lng: 13.4},
		{ID: 2, Name: "Paris", Lat: 48.8, Lng: 2.3},
		{ID: 3, Name: "Rome", Lat: 41.9, Lng: 12.5},
	}

	g := topology.Synthesize(nodes, newRng(7))
	spokes := edgesByColor(g, "#10b981")
	if len(spokes) != 2 {
		t.Fatalf("spokes = %d, want 2", len(spokes))
	}
	for _, e := range spokes {
		if e.Opacity < 0.15 || e.Opacity >= 0.40 {
			t.Errorf("spoke opacity %v outside [0.15, 0.40)", e.Opacity)
		}
	}
}

func TestCurveSampling(t *testing.T) {
	from := topology.Point{Lat: 0, Lng: 0}
	to := topology.Point{Lat: 0, Lng: 10}

	pts := topology.Curve(from, to)
	if len(pts) != 51 {
		t.Fatalf("len(points) = %d, want 51", len(pts))
	}
	if pts[0] != from {
		t.Errorf("first point = %+v, want %+v", pts[0], from)
	}
	if pts[50] != to {
		t.Errorf("last point = %+v, want %+v", pts[50], to)
	}

	// Midpoint of the bezier sits halfway between the chord midpoint
	// and the control point: lat = 0.2 * distance / 2.
	mid := pts[25]
	if got, want := mid.Lat, 1.0; got != want {
		t.Errorf("midpoint lat = %v, want %v", got, want)
	}
	if mid.Lng != 5 {
		t.Errorf("midpoint lng = %v, want 5", mid.Lng)
	}
}

func TestCurveRepeatable(t *testing.T) {
	from := topology.Point{Lat: 38.9, Lng: -77}
	to := topology.Point{Lat: 52.5, Lng: 13.4}

	a := topology.Curve(from, to)
	b := topology.Curve(from, to)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs across calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}
