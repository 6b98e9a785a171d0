// Package vocabulary provides database operations for dictionary words and
// characters, including the batched lookups used by search.
//
// # Usage
//
//	repo := vocabulary.NewRepository(db)
//	words, err := repo.GetWordsBySimplified([]string{"广东", "中国"})
package vocabulary

import (
	"gorm.io/gorm"

	"github.com/cnlearn/cnlearn/internal/database"
	"github.com/cnlearn/cnlearn/internal/entities"
)

// Repository handles all vocabulary database operations.
type Repository struct {
	db *gorm.DB

	Words      *database.Repository[entities.Word]
	Characters *database.Repository[entities.Character]
}

// NewRepository creates a new vocabulary repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Words:      database.NewRepository[entities.Word](db),
		Characters: database.NewRepository[entities.Character](db),
	}
}

// GetWordsBySimplified returns every word whose simplified form appears in
// forms, each with its linked characters eagerly loaded. The lookup is a
// membership test, so duplicate inputs cost nothing and never produce
// duplicate rows. An empty input returns an empty slice without touching
// the database.
func (r *Repository) GetWordsBySimplified(forms []string) ([]entities.Word, error) {
	if len(forms) == 0 {
		return []entities.Word{}, nil
	}
	var words []entities.Word
	err := r.db.Preload("Characters").
		Where(map[string]any{"simplified": forms}).
		Find(&words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}

// GetCharacters returns every character row matching the given glyphs.
// The Words relation is loaded only when includeWords is set; callers that
// do not need it must not pay for the join.
func (r *Repository) GetCharacters(chars []string, includeWords bool) ([]entities.Character, error) {
	if len(chars) == 0 {
		return []entities.Character{}, nil
	}
	query := r.db
	if includeWords {
		query = query.Preload("Words")
	}
	var characters []entities.Character
	err := query.Where(map[string]any{"character": chars}).Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}
