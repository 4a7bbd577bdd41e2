package repositories

import (
	"fmt"
	"testing"

	"github.com/Arnobrizwan/intellinote-app/internal/database"
	"github.com/Arnobrizwan/intellinote-app/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func seedUser(t *testing.T, users UserRepository, name string) *models.User {
	t.Helper()
	user, err := users.Create(name, name+"@example.com", "hashed")
	require.NoError(t, err)
	return user
}

func TestCreateUserConflicts(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	first, err := users.Create("alice", "alice@example.com", "hash-a")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)

	_, err = users.Create("alice2", "alice@example.com", "hash-b")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = users.Create("alice", "other@example.com", "hash-c")
	assert.ErrorIs(t, err, ErrConflict)

	// The original record survives a rejected duplicate.
	found, err := users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "hash-a", found.PasswordHash)
}

func TestFindUser(t *testing.T) {
	users := NewUserRepository(newTestDB(t))
	user := seedUser(t, users, "bob")

	byID, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = users.FindByID(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = users.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteScoping(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	notes := NewNoteRepository(db)

	owner := seedUser(t, users, "owner")
	other := seedUser(t, users, "other")

	note, err := notes.Create(owner.ID, "T", "C")
	require.NoError(t, err)
	assert.Nil(t, note.Summary)

	// The owner sees the note; anyone else sees nothing.
	got, err := notes.Get(note.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)

	_, err = notes.Get(note.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = notes.Update(note.ID, other.ID, "X", "Y")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deleted, err := notes.Delete(note.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = notes.SetSummary(note.ID, other.ID, "stolen")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Nothing above touched the record.
	got, err = notes.Get(note.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Nil(t, got.Summary)
}

func TestNoteUpdateAndSummary(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	notes := NewNoteRepository(db)
	owner := seedUser(t, users, "carol")

	note, err := notes.Create(owner.ID, "T", "C")
	require.NoError(t, err)

	updated, err := notes.Update(note.ID, owner.ID, "T2", "C2")
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)
	assert.False(t, updated.ModifiedAt.Before(note.ModifiedAt))

	withSummary, err := notes.SetSummary(note.ID, owner.ID, "a summary")
	require.NoError(t, err)
	require.NotNil(t, withSummary.Summary)
	assert.Equal(t, "a summary", *withSummary.Summary)
	// SetSummary leaves title and content alone.
	assert.Equal(t, "T2", withSummary.Title)
}

func TestListByOwnerIsScopedAndStable(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	notes := NewNoteRepository(db)

	a := seedUser(t, users, "usera")
	b := seedUser(t, users, "userb")

	for i := 0; i < 3; i++ {
		_, err := notes.Create(a.ID, fmt.Sprintf("a%d", i), "c")
		require.NoError(t, err)
	}
	_, err := notes.Create(b.ID, "b0", "c")
	require.NoError(t, err)

	listA, err := notes.ListByOwner(a.ID)
	require.NoError(t, err)
	assert.Len(t, listA, 3)

	again, err := notes.ListByOwner(a.ID)
	require.NoError(t, err)
	for i := range listA {
		assert.Equal(t, listA[i].ID, again[i].ID)
	}

	listB, err := notes.ListByOwner(b.ID)
	require.NoError(t, err)
	assert.Len(t, listB, 1)
}

func TestDeleteNote(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	notes := NewNoteRepository(db)
	owner := seedUser(t, users, "dave")

	note, err := notes.Create(owner.ID, "T", "C")
	require.NoError(t, err)

	deleted, err := notes.Delete(note.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// A second delete reports not found.
	deleted, err = notes.Delete(note.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
