package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Arnobrizwan/intellinote-app/internal/events"
	"github.com/Arnobrizwan/intellinote-app/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// Producer publishes note activity events. A nil *Producer is valid and
// publishes nothing, so the rest of the service never checks whether Kafka
// is configured.
type Producer struct {
	noteWriter *kafka.Writer
}

// NewProducer creates a new Kafka producer for the note.activity topic.
func NewProducer(brokers []string) *Producer {
	if len(brokers) == 0 {
		return nil
	}

	noteWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        events.NoteActivityTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return &Producer{noteWriter: noteWriter}
}

// PublishNoteEvent publishes a note event to the note.activity topic.
// Publication is best effort: failures are logged and swallowed so event
// delivery can never fail a note operation.
func (p *Producer) PublishNoteEvent(ctx context.Context, event *events.NoteEvent) {
	if p == nil {
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to marshal note event")
		return
	}

	message := kafka.Message{
		Key:   []byte(event.NoteID),
		Value: value,
		Time:  event.Timestamp,
	}

	if err := p.noteWriter.WriteMessages(ctx, message); err != nil {
		logger.Log.Error().Err(err).Str("eventType", event.EventType).Msg("Failed to publish note event")
		return
	}

	logger.Log.Info().Str("eventType", event.EventType).Str("noteId", event.NoteID).Msg("Published note event")
}

// Close closes the underlying writer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.noteWriter.Close()
}
