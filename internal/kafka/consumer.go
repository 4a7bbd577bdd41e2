package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Arnobrizwan/intellinote-app/internal/events"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

type EventHandler func(event events.NoteEvent) error

type Consumer struct {
	consumer *kafka.Consumer
	handlers map[string][]EventHandler
	topic    string
}

// NewConsumer creates a new Kafka consumer subscribed to the given topic.
// SASL is used when a username is set, plaintext otherwise.
func NewConsumer(bootstrapServers, username, password, topic string) (*Consumer, error) {
	cfg := &kafka.ConfigMap{
		"bootstrap.servers": bootstrapServers,
		"group.id":          "note-audit",
		"auto.offset.reset": "earliest",
	}
	if username != "" {
		cfg.SetKey("sasl.username", username)
		cfg.SetKey("sasl.password", password)
		cfg.SetKey("security.protocol", "SASL_SSL")
		cfg.SetKey("sasl.mechanisms", "PLAIN")
	}

	c, err := kafka.NewConsumer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	if err := c.SubscribeTopics([]string{topic}, nil); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	return &Consumer{
		consumer: c,
		handlers: make(map[string][]EventHandler),
		topic:    topic,
	}, nil
}

// RegisterHandler registers a handler for a specific event type
func (c *Consumer) RegisterHandler(eventType string, handler EventHandler) {
	c.handlers[eventType] = append(c.handlers[eventType], handler)
}

// Start consumes messages until SIGINT/SIGTERM.
func (c *Consumer) Start() {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)

	run := true
	for run {
		select {
		case sig := <-sigchan:
			fmt.Printf("Caught signal %v: terminating\n", sig)
			run = false
		default:
			ev, err := c.consumer.ReadMessage(100 * time.Millisecond)
			if err != nil {
				// Timeouts and transient errors are handled by the consumer
				continue
			}

			var event events.NoteEvent
			if err := json.Unmarshal(ev.Value, &event); err != nil {
				log.Printf("Failed to unmarshal event: %v\n", err)
				continue
			}

			for _, handler := range c.handlers[event.EventType] {
				if err := handler(event); err != nil {
					log.Printf("Error handling event %s: %v\n", event.EventType, err)
				}
			}
		}
	}

	c.consumer.Close()
}

// Close the consumer
func (c *Consumer) Close() {
	c.consumer.Close()
}
