package handlers

import (
	"context"
	"net/http"

	"github.com/Arnobrizwan/intellinote-app/internal/ai"
	"github.com/Arnobrizwan/intellinote-app/internal/events"
	"github.com/Arnobrizwan/intellinote-app/internal/kafka"
	"github.com/Arnobrizwan/intellinote-app/internal/middleware"
	"github.com/Arnobrizwan/intellinote-app/internal/models"
	"github.com/Arnobrizwan/intellinote-app/internal/repositories"
	"github.com/Arnobrizwan/intellinote-app/pkg/logger"
	"github.com/Arnobrizwan/intellinote-app/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Summarizer produces a best-effort summary; the Result always carries
// persistable text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) ai.Result
}

type NoteHandler struct {
	notes      repositories.NoteRepository
	summarizer Summarizer
	producer   *kafka.Producer
}

func NewNoteHandler(notes repositories.NoteRepository, summarizer Summarizer, producer *kafka.Producer) *NoteHandler {
	return &NoteHandler{
		notes:      notes,
		summarizer: summarizer,
		producer:   producer,
	}
}

type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// principal returns the authenticated user set by the auth middleware.
func principal(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(middleware.PrincipalKey)
	if !exists {
		logger.Log.Error().Msg("Handler reached without authenticated principal")
		c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Authentication required"))
		return nil, false
	}
	return val.(*models.User), true
}

// noteID parses the path parameter. A malformed id behaves like a missing
// note so the response leaks nothing about what ids exist.
func noteID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		c.JSON(http.StatusNotFound, responses.NewErrorResponse("Note not found"))
		return uuid.Nil, false
	}
	return id, true
}

// CreateNote creates a note owned by the caller.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format"))
		return
	}

	note, err := h.notes.Create(user.ID, req.Title, req.Content)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to create note")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to create note"))
		return
	}

	h.producer.PublishNoteEvent(c.Request.Context(), events.NewNoteEvent(events.NoteCreated, note.ID, user.ID))

	c.JSON(http.StatusCreated, note)
}

// ListNotes returns only the caller's notes.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}

	notes, err := h.notes.ListByOwner(user.ID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to list notes")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to retrieve notes"))
		return
	}

	c.JSON(http.StatusOK, notes)
}

// GetNote retrieves one of the caller's notes. Someone else's note returns
// 404, never 403.
func (h *NoteHandler) GetNote(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	note, err := h.notes.Get(id, user.ID)
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, responses.NewErrorResponse("Note not found"))
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to retrieve note")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to retrieve note"))
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpdateNote replaces title and content of one of the caller's notes.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format"))
		return
	}

	note, err := h.notes.Update(id, user.ID, req.Title, req.Content)
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, responses.NewErrorResponse("Note not found"))
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to update note")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to update note"))
		return
	}

	h.producer.PublishNoteEvent(c.Request.Context(), events.NewNoteEvent(events.NoteUpdated, note.ID, user.ID))

	c.JSON(http.StatusOK, note)
}

// DeleteNote deletes one of the caller's notes and returns a confirmation.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	deleted, err := h.notes.Delete(id, user.ID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to delete note")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to delete note"))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, responses.NewErrorResponse("Note not found"))
		return
	}

	h.producer.PublishNoteEvent(c.Request.Context(), events.NewNoteEvent(events.NoteDeleted, id, user.ID))

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Note deleted", nil))
}

// SummarizeNote runs the note's content through the summarizer and persists
// whatever comes back, sentinel or real. A failed summarization never fails
// this endpoint.
func (h *NoteHandler) SummarizeNote(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	note, err := h.notes.Get(id, user.ID)
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, responses.NewErrorResponse("Note not found"))
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to retrieve note")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to retrieve note"))
		return
	}

	result := h.summarizer.Summarize(c.Request.Context(), note.Content)
	if result.Err != nil {
		logger.Log.Warn().Err(result.Err).Str("noteId", id.String()).Msg("Summarization degraded to sentinel")
	}

	updated, err := h.notes.SetSummary(id, user.ID, result.Text)
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, responses.NewErrorResponse("Note not found"))
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to persist summary")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to update note"))
		return
	}

	h.producer.PublishNoteEvent(c.Request.Context(), events.NewNoteEvent(events.NoteSummarized, id, user.ID))

	c.JSON(http.StatusOK, updated)
}
