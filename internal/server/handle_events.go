package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cybergis/ctfmap/internal/event"
	"github.com/cybergis/ctfmap/internal/game"
)

// StreamEvent is one SSE frame: the bus topic and its typed payload.
type StreamEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// handleEvents streams every engine event to the client. Consumers
// (map, scoreboard) re-pull fresh state when they see a topology- or
// score-relevant type; the stream itself carries the payloads only as
// a convenience.
func handleEvents(bus *event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		flusher.Flush()

		ch := make(chan []byte, 16)
		forward := func(ctx context.Context, e event.Event) error {
			data, err := json.Marshal(StreamEvent{Type: string(e.Topic()), Data: e})
			if err != nil {
				return fmt.Errorf("encoding %s event: %w", e.Topic(), err)
			}
			select {
			case ch <- data:
			default:
				// Drop if the client is slow; it re-pulls state anyway.
			}
			return nil
		}

		unsubs := make([]func(), 0, len(game.Topics))
		for _, topic := range game.Topics {
			unsubs = append(unsubs, bus.Subscribe(topic, forward))
		}
		defer func() {
			for _, unsub := range unsubs {
				unsub()
			}
		}()

		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case data := <-ch:
				fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
				flusher.Flush()
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}
