package main

import (
	"log"
	"os"

	"github.com/Arnobrizwan/intellinote-app/internal/events"
	"github.com/Arnobrizwan/intellinote-app/internal/kafka"
	"github.com/Arnobrizwan/intellinote-app/pkg/logger"

	"github.com/joho/godotenv"
)

// Audit consumer: tails note.activity and writes a structured audit line per
// note lifecycle event.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.InitLogger()

	consumer, err := kafka.NewConsumer(
		os.Getenv("KAFKA_BROKERS"),
		os.Getenv("KAFKA_USERNAME"),
		os.Getenv("KAFKA_PASSWORD"),
		events.NoteActivityTopic,
	)
	if err != nil {
		log.Fatalf("Failed to create Kafka consumer: %v", err)
	}
	defer consumer.Close()

	for _, eventType := range []string{
		events.NoteCreated,
		events.NoteUpdated,
		events.NoteDeleted,
		events.NoteSummarized,
	} {
		consumer.RegisterHandler(eventType, auditEvent)
	}

	log.Println("Starting to consume note events...")
	consumer.Start()
}

func auditEvent(event events.NoteEvent) error {
	logger.Log.Info().
		Str("eventType", event.EventType).
		Str("noteId", event.NoteID).
		Str("ownerId", event.OwnerID).
		Time("at", event.Timestamp).
		Msg("Note activity")
	return nil
}
