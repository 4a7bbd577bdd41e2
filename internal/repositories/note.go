package repositories

import (
	"github.com/Arnobrizwan/intellinote-app/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteRepository defines data access for Note records. Every lookup is scoped
// by both note id and owner id: a note owned by someone else behaves exactly
// like a note that does not exist.
type NoteRepository interface {
	Create(ownerID uuid.UUID, title, content string) (*models.Note, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Note, error)
	Get(noteID, ownerID uuid.UUID) (*models.Note, error)
	Update(noteID, ownerID uuid.UUID, title, content string) (*models.Note, error)
	Delete(noteID, ownerID uuid.UUID) (bool, error)
	SetSummary(noteID, ownerID uuid.UUID, summary string) (*models.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ownerID uuid.UUID, title, content string) (*models.Note, error) {
	note := models.Note{
		ID:      uuid.New(),
		UserID:  ownerID,
		Title:   title,
		Content: content,
	}
	if err := r.db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByOwner returns the owner's notes ordered by creation time so repeated
// calls see the same order.
func (r *noteRepository) ListByOwner(ownerID uuid.UUID) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	err := r.db.Where("user_id = ?", ownerID).Order("created_at").Find(&notes).Error
	return notes, err
}

func (r *noteRepository) Get(noteID, ownerID uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := r.db.Where("note_id = ? AND user_id = ?", noteID, ownerID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Update(noteID, ownerID uuid.UUID, title, content string) (*models.Note, error) {
	var note models.Note
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ? AND user_id = ?", noteID, ownerID).First(&note).Error; err != nil {
			return err
		}
		note.Title = title
		note.Content = content
		return tx.Save(&note).Error
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Delete(noteID, ownerID uuid.UUID) (bool, error) {
	result := r.db.Where("note_id = ? AND user_id = ?", noteID, ownerID).Delete(&models.Note{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SetSummary overwrites only the summary field, bumping modified_at.
func (r *noteRepository) SetSummary(noteID, ownerID uuid.UUID, summary string) (*models.Note, error) {
	var note models.Note
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ? AND user_id = ?", noteID, ownerID).First(&note).Error; err != nil {
			return err
		}
		note.Summary = &summary
		return tx.Save(&note).Error
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}
