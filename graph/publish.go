package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// EventSubjectPrefix is the subject prefix for graph mutation events.
const EventSubjectPrefix = "semlink.graph"

// EventKind identifies a graph mutation event.
type EventKind string

const (
	// EventNamespaceLoaded is published after a bulk load completes.
	EventNamespaceLoaded EventKind = "namespace.loaded"

	// EventNamespaceRemoved is published after a namespace purge.
	EventNamespaceRemoved EventKind = "namespace.removed"

	// EventConceptsMerged is published after a concept merge.
	EventConceptsMerged EventKind = "concepts.merged"
)

// Event is the message format for graph mutation notifications.
type Event struct {
	Kind      EventKind `json:"kind"`
	Namespace string    `json:"namespace,omitempty"`
	BatchID   string    `json:"batch_id,omitempty"`
	Stats     Stats     `json:"stats"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher publishes graph mutation events over NATS. A nil publisher or
// one without a connection is a no-op, so eventing stays optional.
type Publisher struct {
	nc *nats.Conn
}

// NewPublisher creates a publisher over an established NATS connection.
func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

// Publish sends one event. The subject is the prefix plus the event kind,
// e.g. "semlink.graph.namespace.loaded".
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if p == nil || p.nc == nil {
		return nil // no NATS configured, skip publishing
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("graph.Publish: marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", EventSubjectPrefix, event.Kind)
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("graph.Publish: publish %s: %w", subject, err)
	}
	return nil
}
