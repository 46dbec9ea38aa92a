package mocks

import (
	"context"
	"sync"

	"hoteloncall/internal/events"
)

// Publisher records published events for assertions.
type Publisher struct {
	mu     sync.Mutex
	events []events.Event
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(_ context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
}

func (p *Publisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]events.Event, len(p.events))
	copy(out, p.events)

	return out
}
