package repository

import (
	"context"
	"time"

	"adminboard/internal/models"
	"adminboard/internal/observability"
	"adminboard/internal/storage"

	"github.com/google/uuid"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetByUser(ctx context.Context, userID int) ([]models.Post, error)
	Create(ctx context.Context, userID int, content string) (*models.Post, error)
	SetDeleted(ctx context.Context, id string, deleted bool) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
	ToggleLike(ctx context.Context, postID string, userID int) (*models.LikeResult, error)
	AddComment(ctx context.Context, postID string, userID int, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}

// postRepository implements PostRepository over the news collection.
type postRepository struct {
	store *storage.Store
	log   *observability.RepoLogger
}

// NewPostRepository creates a new post repository.
func NewPostRepository(store *storage.Store) PostRepository {
	return &postRepository{store: store, log: observability.NewRepoLogger("news")}
}

// Post and comment ids keep the legacy prefixes but use a UUID token instead
// of a millisecond timestamp, so same-instant creations cannot collide.
func newPostID() string {
	return "news-" + uuid.NewString()
}

func newCommentID() string {
	return "comment-" + uuid.NewString()
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	return r.store.Posts.All(ctx), nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	for _, p := range r.store.Posts.All(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, models.NewNotFoundError("Post", id)
}

func (r *postRepository) GetByUser(ctx context.Context, userID int) ([]models.Post, error) {
	posts := []models.Post{}
	for _, p := range r.store.Posts.All(ctx) {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, userID int, content string) (*models.Post, error) {
	post := models.Post{
		ID:       newPostID(),
		UserID:   userID,
		Content:  content,
		Date:     time.Now().UTC().Format(time.RFC3339),
		Likes:    []int{},
		Comments: []models.Comment{},
	}

	err := r.store.Posts.Update(ctx, func(posts []models.Post) ([]models.Post, error) {
		return append(posts, post), nil
	})
	if err != nil {
		r.log.LogError(ctx, err, "create")
		return nil, err
	}

	r.log.LogMutation(ctx, "create", map[string]interface{}{
		"post_id": post.ID,
		"user_id": userID,
	})
	return &post, nil
}

// SetDeleted flips only the isDeleted flag; repeating the call is a no-op.
func (r *postRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	return r.setFlag(ctx, id, "set_deleted", func(p *models.Post) {
		p.IsDeleted = deleted
	})
}

// SetBlocked flips only the isBlocked flag, independent of isDeleted: a post
// can carry both flags at once.
func (r *postRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	return r.setFlag(ctx, id, "set_blocked", func(p *models.Post) {
		p.IsBlocked = blocked
	})
}

func (r *postRepository) setFlag(ctx context.Context, id, operation string, flip func(*models.Post)) error {
	err := r.store.Posts.Update(ctx, func(posts []models.Post) ([]models.Post, error) {
		for i := range posts {
			if posts[i].ID == id {
				flip(&posts[i])
				return posts, nil
			}
		}
		return nil, models.NewNotFoundError("Post", id)
	})
	if err != nil {
		r.log.LogError(ctx, err, operation)
		return err
	}

	r.log.LogMutation(ctx, operation, map[string]interface{}{"post_id": id})
	return nil
}

// ToggleLike adds the user's like, or removes it when already present.
func (r *postRepository) ToggleLike(ctx context.Context, postID string, userID int) (*models.LikeResult, error) {
	var result models.LikeResult

	err := r.store.Posts.Update(ctx, func(posts []models.Post) ([]models.Post, error) {
		for i := range posts {
			if posts[i].ID != postID {
				continue
			}

			likes := posts[i].Likes
			for j, id := range likes {
				if id == userID {
					posts[i].Likes = append(likes[:j], likes[j+1:]...)
					result = models.LikeResult{Liked: false, LikesCount: len(posts[i].Likes)}
					return posts, nil
				}
			}
			posts[i].Likes = append(likes, userID)
			result = models.LikeResult{Liked: true, LikesCount: len(posts[i].Likes)}
			return posts, nil
		}
		return nil, models.NewNotFoundError("Post", postID)
	})
	if err != nil {
		r.log.LogError(ctx, err, "toggle_like")
		return nil, err
	}

	r.log.LogMutation(ctx, "toggle_like", map[string]interface{}{
		"post_id": postID,
		"user_id": userID,
		"liked":   result.Liked,
	})
	return &result, nil
}

func (r *postRepository) AddComment(ctx context.Context, postID string, userID int, content string) (*models.Comment, error) {
	comment := models.Comment{
		ID:      newCommentID(),
		UserID:  userID,
		Content: content,
		Date:    time.Now().UTC().Format(time.RFC3339),
	}

	err := r.store.Posts.Update(ctx, func(posts []models.Post) ([]models.Post, error) {
		for i := range posts {
			if posts[i].ID == postID {
				posts[i].Comments = append(posts[i].Comments, comment)
				return posts, nil
			}
		}
		return nil, models.NewNotFoundError("Post", postID)
	})
	if err != nil {
		r.log.LogError(ctx, err, "add_comment")
		return nil, err
	}

	r.log.LogMutation(ctx, "add_comment", map[string]interface{}{
		"post_id":    postID,
		"comment_id": comment.ID,
	})
	return &comment, nil
}

// DeleteComment removes one nested comment. Both the post and the comment
// must resolve or the operation fails without mutating anything.
func (r *postRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	err := r.store.Posts.Update(ctx, func(posts []models.Post) ([]models.Post, error) {
		for i := range posts {
			if posts[i].ID != postID {
				continue
			}
			for j := range posts[i].Comments {
				if posts[i].Comments[j].ID == commentID {
					posts[i].Comments = append(posts[i].Comments[:j], posts[i].Comments[j+1:]...)
					return posts, nil
				}
			}
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, models.NewNotFoundError("Post", postID)
	})
	if err != nil {
		r.log.LogError(ctx, err, "delete_comment")
		return err
	}

	r.log.LogMutation(ctx, "delete_comment", map[string]interface{}{
		"post_id":    postID,
		"comment_id": commentID,
	})
	return nil
}
