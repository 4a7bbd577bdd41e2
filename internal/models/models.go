package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;column:user_id" json:"user_id"`
	Username     string    `gorm:"size:255;not null;unique" json:"username"`
	Email        string    `gorm:"size:255;not null;unique" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

type Note struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;column:note_id" json:"note_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"-"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Content string    `gorm:"type:text;not null" json:"content"`
	Summary *string   `gorm:"type:text" json:"summary"`
	// Keywords and Sentiment are part of the schema and the JSON shape but no
	// endpoint writes them yet.
	Keywords  *string `gorm:"type:text" json:"keywords"`
	Sentiment *string `gorm:"size:50" json:"sentiment"`
	// Embedding is reserved for semantic search. Nothing reads it.
	Embedding  *float64  `gorm:"column:embedding" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	ModifiedAt time.Time `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`

	Owner User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tags  []Tag `gorm:"many2many:note_tags;" json:"-"`
}

func (Note) TableName() string {
	return "notes"
}

type Tag struct {
	ID      int    `gorm:"primary_key;auto_increment;column:tag_id" json:"tag_id"`
	TagName string `gorm:"size:255;not null;unique;column:tag_name" json:"tag_name"`
}

func (Tag) TableName() string {
	return "tags"
}
