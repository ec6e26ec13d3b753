package messaging

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/ports"
)

var _ ports.EventPublisher = NopPublisher{}

// NopPublisher descarta los eventos (sin brokers configurados).
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ports.InventoryEvent) error { return nil }

// Close no hace nada.
func (NopPublisher) Close() error { return nil }
