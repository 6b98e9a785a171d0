package database

import (
	"errors"

	"gorm.io/gorm"
)

// Repository provides primary-key CRUD over a single entity type. Absence
// is reported as a nil result, never as an error; only engine failures
// (connection loss, constraint violations) come back as errors, unwrapped.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Get returns the entity with the given primary key, or nil when absent.
func (r *Repository[T]) Get(id uint) (*T, error) {
	var obj T
	err := r.db.First(&obj, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// GetMulti returns every row. The dictionary tables are small and static,
// which is the only reason an unpaginated listing is acceptable.
func (r *Repository[T]) GetMulti() ([]T, error) {
	var objs []T
	if err := r.db.Find(&objs).Error; err != nil {
		return nil, err
	}
	return objs, nil
}

// Create inserts obj and populates its generated primary key.
func (r *Repository[T]) Create(obj *T) error {
	return r.db.Create(obj).Error
}

// Update applies only the fields present in changes. Omitted fields are
// never touched. The keys are database column names.
func (r *Repository[T]) Update(obj *T, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.Model(obj).Updates(changes).Error
}

// Remove deletes by primary key and returns the deleted entity, or nil
// when no such row existed.
func (r *Repository[T]) Remove(id uint) (*T, error) {
	obj, err := r.Get(id)
	if err != nil || obj == nil {
		return nil, err
	}
	if err := r.db.Delete(obj).Error; err != nil {
		return nil, err
	}
	return obj, nil
}
