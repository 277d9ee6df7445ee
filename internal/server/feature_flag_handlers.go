package server

import "github.com/gofiber/fiber/v2"

// GetFeatureFlags returns the configured feature flags and their evaluated state.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	if s.featureFlags == nil {
		return c.JSON(fiber.Map{
			"raw":       map[string]bool{},
			"evaluated": map[string]bool{},
		})
	}

	return c.JSON(fiber.Map{
		"raw": s.featureFlags.Raw(),
		"evaluated": map[string]bool{
			FlagLegacyRoutes: s.featureFlags.Enabled(FlagLegacyRoutes),
		},
	})
}
