package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/ventas-api/internal/application/ports"
)

const publishTimeout = 5 * time.Second

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// messageWriter lo que usamos de *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica los eventos de inventario y ventas en un topic de Kafka.
// La clave del mensaje es el SKU, así los eventos de un producto quedan en la misma partición.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher crea el writer con los brokers y el topic configurados.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchSize:    100,
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
			Compression:  kafka.Snappy,
		},
	}
}

// Publish serializa el evento en JSON y lo escribe con un timeout propio.
func (p *KafkaPublisher) Publish(ctx context.Context, event ports.InventoryEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal evento %s: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ProductSKU),
		Value: payload,
		Time:  event.Timestamp,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.ID)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publicar evento %s en kafka: %w", event.Type, err)
	}
	return nil
}

// Close vacía el buffer del writer y cierra las conexiones.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
