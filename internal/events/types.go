package events

// Note Event Types
const (
	NoteCreated    = "NOTE_CREATED"
	NoteUpdated    = "NOTE_UPDATED"
	NoteDeleted    = "NOTE_DELETED"
	NoteSummarized = "NOTE_SUMMARIZED"
)

// Kafka Topics
const (
	NoteActivityTopic = "note.activity"
)
