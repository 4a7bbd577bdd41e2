package repositories

import (
	"errors"

	"github.com/Arnobrizwan/intellinote-app/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrConflict is returned when a unique field (email, username) is taken.
var ErrConflict = errors.New("conflict: unique field already exists")

// UserRepository defines data access for User records.
type UserRepository interface {
	Create(username, email, passwordHash string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user, rejecting duplicate email or username with
// ErrConflict. The uniqueness check and insert run in one transaction so a
// concurrent registration cannot slip between them.
func (r *userRepository) Create(username, email, passwordHash string) (*models.User, error) {
	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ? OR username = ?", email, username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
