package server

import (
	"strings"

	"adminboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /admin/api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.feedService.PostsWithAuthor(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /admin/api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		UserID  int    `json:"userId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User ID is required"))
	}
	if strings.TrimSpace(req.Content) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return respondError(c, err)
	}

	post, err := s.postRepo.Create(ctx, req.UserID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// PostAction handles POST /admin/api/posts/:postId/:action where action is
// one of delete, restore, block, unblock.
func (s *Server) PostAction(c *fiber.Ctx) error {
	ctx := c.Context()
	postID := c.Params("postId")
	action := c.Params("action")

	var err error
	switch action {
	case "delete":
		err = s.postRepo.SetDeleted(ctx, postID, true)
	case "restore":
		err = s.postRepo.SetDeleted(ctx, postID, false)
	case "block":
		err = s.postRepo.SetBlocked(ctx, postID, true)
	case "unblock":
		err = s.postRepo.SetBlocked(ctx, postID, false)
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown post action: "+action))
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// LikePost handles POST /admin/posts/:postId/like and toggles the caller's
// like on the post.
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID := c.Params("postId")

	var req struct {
		UserID int `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User ID is required"))
	}

	result, err := s.postRepo.ToggleLike(ctx, postID, req.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// AddComment handles POST /admin/posts/:postId/comment
func (s *Server) AddComment(c *fiber.Ctx) error {
	ctx := c.Context()
	postID := c.Params("postId")

	var req struct {
		UserID  int    `json:"userId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User ID is required"))
	}
	if strings.TrimSpace(req.Content) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	comment, err := s.postRepo.AddComment(ctx, postID, req.UserID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment handles DELETE /admin/posts/:postId/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.Context()
	postID := c.Params("postId")
	commentID := c.Params("commentId")

	if err := s.postRepo.DeleteComment(ctx, postID, commentID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// GetUserFeed handles GET /admin/userslist/:id/feed
func (s *Server) GetUserFeed(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	feed, err := s.feedService.UserFeed(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}

// GetUserPosts handles GET /admin/userslist/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	posts, err := s.feedService.UserPosts(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}
