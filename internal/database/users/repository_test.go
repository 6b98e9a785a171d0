package users

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnlearn/cnlearn/internal/database"
	"github.com/cnlearn/cnlearn/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	dbPath := "./test_users_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewSilentDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), cleanup
}

func TestCreateAndGetByEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{
		Email:          "someone@example.com",
		HashedPassword: "not-a-real-hash",
		FullName:       "Someone",
		IsActive:       true,
	}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	found, err := repo.GetByEmail("someone@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.True(t, found.IsActive)
	assert.False(t, found.IsSuperuser)
}

func TestGetByEmail_Absent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	found, err := repo.GetByEmail("nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first := &entities.User{Email: "dup@example.com", HashedPassword: "x", IsActive: true}
	require.NoError(t, repo.Create(first))

	second := &entities.User{Email: "dup@example.com", HashedPassword: "y", IsActive: true}
	err := repo.Create(second)

	// The unique index is the backstop; the service checks first.
	assert.Error(t, err)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{
		Email:          "someone@example.com",
		HashedPassword: "hash",
		FullName:       "Before",
		IsActive:       true,
	}
	require.NoError(t, repo.Create(user))

	err := repo.Update(user, map[string]any{"full_name": "After"})
	require.NoError(t, err)

	updated, err := repo.Get(user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "After", updated.FullName)
	assert.Equal(t, "someone@example.com", updated.Email)
	assert.Equal(t, "hash", updated.HashedPassword)
}

func TestDeactivate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{Email: "a@example.com", HashedPassword: "x", IsActive: true}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.Update(user, map[string]any{"is_active": false}))

	updated, err := repo.Get(user.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestRemove(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{Email: "bye@example.com", HashedPassword: "x", IsActive: true}
	require.NoError(t, repo.Create(user))

	removed, err := repo.Remove(user.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "bye@example.com", removed.Email)

	gone, err := repo.GetByEmail("bye@example.com")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
