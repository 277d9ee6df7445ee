package storage

import (
	"log/slog"
	"path/filepath"

	"adminboard/internal/models"
)

// Collection file names under the data directory.
const (
	UsersFile   = "users.json"
	FriendsFile = "friends.json"
	PostsFile   = "news.json"
)

// Store owns the in-memory caches for the three collections. It is
// constructed once at startup and passed by handle to the repositories;
// collections load lazily and stay resident until invalidated or the
// process exits.
type Store struct {
	Users   *Collection[models.User]
	Friends *Collection[models.FriendshipEntry]
	Posts   *Collection[models.Post]
}

// Open creates a store over the JSON files in dataDir. The files are not
// touched until a collection is first accessed.
func Open(dataDir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		Users:   NewCollection[models.User]("users", filepath.Join(dataDir, UsersFile), log),
		Friends: NewCollection[models.FriendshipEntry]("friends", filepath.Join(dataDir, FriendsFile), log),
		Posts:   NewCollection[models.Post]("news", filepath.Join(dataDir, PostsFile), log),
	}
}

// InvalidateAll clears every cache slot, forcing the next access of each
// collection to re-read its file.
func (s *Store) InvalidateAll() {
	s.Users.Invalidate()
	s.Friends.Invalidate()
	s.Posts.Invalidate()
}
