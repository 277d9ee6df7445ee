package seed

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"adminboard/internal/models"
	"adminboard/internal/storage"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the data directory with generated users, friendships
// and posts. Existing collection files are overwritten when ShouldClean
// is set, otherwise generated records are appended to whatever is
// already on disk.
func Seed(dataDir string, opts Options) error {
	log.Printf("Seeding %s with %d users and %d posts...", dataDir, opts.NumUsers, opts.NumPosts)

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f := NewFactory()

	var (
		users   []models.User
		friends []models.FriendshipEntry
		posts   []models.Post
	)
	if !opts.ShouldClean {
		logger := slog.Default()
		users = storage.ReadCollection[models.User](filepath.Join(dataDir, storage.UsersFile), logger)
		friends = storage.ReadCollection[models.FriendshipEntry](filepath.Join(dataDir, storage.FriendsFile), logger)
		posts = storage.ReadCollection[models.Post](filepath.Join(dataDir, storage.PostsFile), logger)
		for _, u := range users {
			if u.ID >= f.nextUserID {
				f.nextUserID = u.ID + 1
			}
		}
	}

	newUsers := make([]models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		newUsers = append(newUsers, f.BuildUser())
	}
	users = append(users, newUsers...)
	log.Printf("generated %d users", len(newUsers))

	friends = append(friends, buildFriendshipMesh(f, newUsers)...)

	newPosts := buildEngagement(f, newUsers, opts.NumPosts)
	posts = append(posts, newPosts...)
	log.Printf("generated %d posts", len(newPosts))

	if err := storage.WriteCollection(filepath.Join(dataDir, storage.UsersFile), users); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	if err := storage.WriteCollection(filepath.Join(dataDir, storage.FriendsFile), friends); err != nil {
		return fmt.Errorf("failed to write friendships: %w", err)
	}
	if err := storage.WriteCollection(filepath.Join(dataDir, storage.PostsFile), posts); err != nil {
		return fmt.Errorf("failed to write posts: %w", err)
	}

	log.Printf("seeding complete: %d users, %d friendship entries, %d posts",
		len(users), len(friends), len(posts))
	return nil
}

// buildFriendshipMesh gives each user a handful of symmetric edges to
// other generated users. Both directions of an edge carry the same
// status so the mesh looks like real accepted/pending requests.
func buildFriendshipMesh(f *Factory, users []models.User) []models.FriendshipEntry {
	if len(users) < 2 {
		return []models.FriendshipEntry{}
	}

	entries := make(map[int]*models.FriendshipEntry, len(users))
	for _, u := range users {
		entries[u.ID] = &models.FriendshipEntry{UserID: u.ID, Friends: []models.FriendEdge{}}
	}

	for _, u := range users {
		wanted := f.rng.Intn(5) + 1
		for j := 0; j < wanted; j++ {
			other := users[f.rng.Intn(len(users))]
			if other.ID == u.ID || entries[u.ID].Edge(other.ID) != nil {
				continue
			}
			edge := f.BuildFriendEdge(other.ID)
			entries[u.ID].Friends = append(entries[u.ID].Friends, edge)

			back := edge
			back.FriendID = u.ID
			entries[other.ID].Friends = append(entries[other.ID].Friends, back)
		}
	}

	out := make([]models.FriendshipEntry, 0, len(users))
	for _, u := range users {
		out = append(out, *entries[u.ID])
	}
	return out
}

// buildEngagement spreads numPosts across the given users and decorates
// each post with random likes and comments from the same cohort.
func buildEngagement(f *Factory, users []models.User, numPosts int) []models.Post {
	if len(users) == 0 || numPosts <= 0 {
		return []models.Post{}
	}

	posts := make([]models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[f.rng.Intn(len(users))]
		post := f.BuildPost(author.ID, 90)

		numLikes := f.rng.Intn(len(users)/2 + 1)
		for j := 0; j < numLikes; j++ {
			liker := users[f.rng.Intn(len(users))].ID
			if !containsInt(post.Likes, liker) {
				post.Likes = append(post.Likes, liker)
			}
		}

		numComments := f.rng.Intn(4)
		for j := 0; j < numComments; j++ {
			commenter := users[f.rng.Intn(len(users))].ID
			post.Comments = append(post.Comments, f.BuildComment(commenter, post.Date))
		}

		posts = append(posts, post)
	}
	return posts
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
