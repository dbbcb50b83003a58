package graph

import (
	"context"
	"testing"
	"time"
)

func TestPublisherNilIsNoOp(t *testing.T) {
	var p *Publisher
	if err := p.Publish(context.Background(), Event{Kind: EventNamespaceLoaded}); err != nil {
		t.Errorf("nil publisher = %v, want nil", err)
	}

	// A publisher without a connection behaves the same.
	p = NewPublisher(nil)
	if err := p.Publish(context.Background(), Event{Kind: EventNamespaceRemoved}); err != nil {
		t.Errorf("connection-less publisher = %v, want nil", err)
	}
}

func TestPublisherHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cancelation is only observable with a live connection; the nil-safe
	// path must still return before touching the event.
	p := NewPublisher(nil)
	if err := p.Publish(ctx, Event{Kind: EventConceptsMerged, At: time.Now()}); err != nil {
		t.Errorf("Publish = %v, want nil on no-op path", err)
	}
}
