package repository

import (
	"path/filepath"
	"testing"

	"adminboard/internal/models"
	"adminboard/internal/storage"

	"github.com/stretchr/testify/require"
)

// newTestStore writes the given collections into a temp data directory and
// opens a store over them.
func newTestStore(t *testing.T, users []models.User, friends []models.FriendshipEntry, posts []models.Post) *storage.Store {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, storage.WriteCollection(filepath.Join(dir, storage.UsersFile), users))
	require.NoError(t, storage.WriteCollection(filepath.Join(dir, storage.FriendsFile), friends))
	require.NoError(t, storage.WriteCollection(filepath.Join(dir, storage.PostsFile), posts))

	return storage.Open(dir, nil)
}

func testUsers() []models.User {
	return []models.User{
		{ID: 1, Fullname: "Alice Anderson", Email: "alice@example.com", Status: models.UserStatusActive},
		{ID: 2, Fullname: "Bob Brown", Email: "bob@example.com", Status: models.UserStatusActive},
		{ID: 3, Fullname: "Carol Clark", Email: "carol@example.com", Status: models.UserStatusUnverified},
	}
}
