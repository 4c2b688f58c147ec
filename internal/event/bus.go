// Package event provides the in-process notification bus the engine
// components synchronize through. Delivery is synchronous and ordered
// by subscription; there is no buffering or replay.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
)

// Topic identifies an event stream on the bus.
type Topic string

// Event is a published payload. Each topic has exactly one payload
// type, so subscribers can assert the concrete type without checks
// beyond the topic they subscribed to.
type Event interface {
	Topic() Topic
}

// Handler consumes one event. A returned error is logged and does not
// stop delivery to later handlers.
type Handler func(ctx context.Context, e Event) error

type subscription struct {
	handler Handler
}

// Bus is a topic-keyed many-to-many pub/sub channel.
type Bus struct {
	logger *slog.Logger
	mu     sync.Mutex
	subs   map[Topic][]*subscription
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[Topic][]*subscription),
	}
}

// Subscribe registers handler for topic and returns a function that
// removes it again. Handlers fire in subscription order.
func (b *Bus) Subscribe(topic Topic, handler Handler) (unsubscribe func()) {
	sub := &subscription{handler: handler}

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[topic]
		for i, s := range list {
			if s == sub {
				b.subs[topic] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if len(b.subs[topic]) == 0 {
			delete(b.subs, topic)
		}
	}
}

// Unsubscribe removes the first subscription for topic whose handler
// is the same function value as handler. The closure returned by
// Subscribe is more precise when the same handler is registered twice;
// this form exists for callers that hold the handler rather than the
// closure.
func (b *Bus) Unsubscribe(topic Topic, handler Handler) {
	target := reflect.ValueOf(handler).Pointer()

	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[topic]
	for i, s := range list {
		if reflect.ValueOf(s.handler).Pointer() == target {
			b.subs[topic] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(b.subs[topic]) == 0 {
		delete(b.subs, topic)
	}
}

// Publish delivers e to every subscriber of its topic, synchronously and
// in subscription order. Publishing to a topic with no subscribers is a
// no-op. A handler that errors or panics is logged and skipped; delivery
// continues with the next handler.
//
// The subscriber list is snapshotted before delivery, so handlers may
// publish or subscribe reentrantly without deadlocking; a subscription
// added during delivery only sees later publishes.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.Lock()
	subs := make([]*subscription, len(b.subs[e.Topic()]))
	copy(subs, b.subs[e.Topic()])
	b.mu.Unlock()

	for _, sub := range subs {
		b.deliver(ctx, e, sub)
	}
}

func (b *Bus) deliver(ctx context.Context, e Event, sub *subscription) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"topic", string(e.Topic()),
				"panic", fmt.Sprint(r),
			)
		}
	}()

	if err := sub.handler(ctx, e); err != nil {
		b.logger.Error("event handler failed",
			"topic", string(e.Topic()),
			"error", err,
		)
	}
}
