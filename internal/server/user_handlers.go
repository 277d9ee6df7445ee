package server

import (
	"adminboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /admin/userslist
func (s *Server) ListUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// UpdateUser handles PUT /admin/userslist/:id (and PUT /admin/users/:id under
// the legacy route flag). Only supplied fields overwrite the stored record.
// Fullname and email may not be blanked out; the check lives here, not in the
// repository.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var update models.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if update.Fullname != nil && *update.Fullname == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Fullname is required"))
	}
	if update.Email != nil && *update.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email is required"))
	}

	user, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}
