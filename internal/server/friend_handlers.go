package server

import (
	"adminboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserFriends handles GET /admin/userslist/:id/friends
func (s *Server) GetUserFriends(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	friends, err := s.feedService.FriendsWithProfiles(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(friends)
}

// AddFriend handles POST /admin/userslist/:userId/friends
func (s *Server) AddFriend(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		FriendID int `json:"friendId"`
	}
	if err := c.BodyParser(&req); err != nil || req.FriendID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid friend ID"))
	}
	if req.FriendID == userID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot add yourself as a friend"))
	}

	if _, err := s.userRepo.GetByID(ctx, req.FriendID); err != nil {
		return respondError(c, err)
	}

	if err := s.friendRepo.Add(ctx, userID, req.FriendID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// UpdateFriendStatus handles PUT /admin/userslist/:userId/friends
func (s *Server) UpdateFriendStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		FriendID int                     `json:"friendId"`
		Status   models.FriendshipStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil || req.FriendID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid friend ID"))
	}
	if req.Status == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status is required"))
	}

	if err := s.friendRepo.UpdateStatus(ctx, userID, req.FriendID, req.Status); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// RemoveFriend handles DELETE /admin/userslist/:userId/friends
// The friend id travels in the request body, matching the legacy client.
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		FriendID int `json:"friendId"`
	}
	if err := c.BodyParser(&req); err != nil || req.FriendID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid friend ID"))
	}

	if err := s.friendRepo.Remove(ctx, userID, req.FriendID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
