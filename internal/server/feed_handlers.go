package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowingFeed handles GET /api/viaje_compartido/siguiendo/
// @Summary Shared trips from followed users
// @Tags feed
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.FeedItem
// @Security BearerAuth
// @Router /viaje_compartido/siguiendo/ [get]
func (s *Server) FollowingFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	items, err := s.feedService.Following(c.UserContext(), userID, parsePagination(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(items)
}

// PopularFeed handles GET /api/viaje_compartido/populares/
// @Summary Most liked shared trips of the last 30 days
// @Tags feed
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.FeedItem
// @Security BearerAuth
// @Router /viaje_compartido/populares/ [get]
func (s *Server) PopularFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	items, err := s.feedService.Popular(c.UserContext(), userID, parsePagination(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(items)
}

// RecentFeed handles GET /api/viaje_compartido/recientes/
// @Summary Newest shared trips
// @Tags feed
// @Produce json
// @Param publicado_por query int false "Restrict to one publisher"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.FeedItem
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /viaje_compartido/recientes/ [get]
func (s *Server) RecentFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var publisher *uint
	publisherID, ok, err := publisherFilter(c)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	if ok {
		publisher = &publisherID
	}

	items, err := s.feedService.Recent(c.UserContext(), userID, publisher, parsePagination(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(items)
}
