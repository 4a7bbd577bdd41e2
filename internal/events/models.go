package events

import (
	"time"

	"github.com/google/uuid"
)

// NoteEvent represents note lifecycle activity published to note.activity.
type NoteEvent struct {
	EventType string    `json:"eventType"`
	NoteID    string    `json:"noteId"`
	OwnerID   string    `json:"ownerId"`
	Timestamp time.Time `json:"timestamp"`
}

// NewNoteEvent creates a new note event
func NewNoteEvent(eventType string, noteID, ownerID uuid.UUID) *NoteEvent {
	return &NoteEvent{
		EventType: eventType,
		NoteID:    noteID.String(),
		OwnerID:   ownerID.String(),
		Timestamp: time.Now(),
	}
}
