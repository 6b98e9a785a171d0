// Package users provides database operations for account management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByEmail("someone@example.com")
package users

import (
	"gorm.io/gorm"

	"github.com/cnlearn/cnlearn/internal/database"
	"github.com/cnlearn/cnlearn/internal/entities"
)

// Repository handles all user database operations. Primary-key CRUD comes
// from the embedded generic repository.
type Repository struct {
	*database.Repository[entities.User]

	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Repository: database.NewRepository[entities.User](db),
		db:         db,
	}
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *Repository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
