package server

import (
	"travelshare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowRequest is the body of POST /api/relation/.
type FollowRequest struct {
	FolloweeID uint `json:"seguido"`
}

// Follow handles POST /api/relation/
// @Summary Follow a user
// @Description Create a directed follow edge from the caller to another user
// @Tags relation
// @Accept json
// @Produce json
// @Param request body FollowRequest true "User to follow"
// @Success 201 {object} models.Follow
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /relation/ [post]
func (s *Server) Follow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req FollowRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.FolloweeID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("seguido is required"))
	}

	follow, err := s.relationService.Follow(c.UserContext(), userID, req.FolloweeID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// Unfollow handles DELETE /api/relation/:id/
// @Summary Unfollow a user
// @Tags relation
// @Param id path int true "Followed user ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /relation/{id}/ [delete]
func (s *Server) Unfollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	followeeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Unfollow(c.UserContext(), userID, followeeID); err != nil {
		return s.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveFollower handles DELETE /api/relation/:id/eliminar_seguidor/
// @Summary Remove a follower
// @Description Drop the edge from another user to the caller
// @Tags relation
// @Param id path int true "Follower user ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /relation/{id}/eliminar_seguidor/ [delete]
func (s *Server) RemoveFollower(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	followerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.RemoveFollower(c.UserContext(), userID, followerID); err != nil {
		return s.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// IsFollowing handles GET /api/relation/:id/estado/
// @Summary Whether the caller follows a user
// @Tags relation
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{siguiendo=bool}
// @Security BearerAuth
// @Router /relation/{id}/estado/ [get]
func (s *Server) IsFollowing(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	otherID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.relationService.IsFollowing(c.UserContext(), userID, otherID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"siguiendo": following})
}

// MutualStatus handles GET /api/relation/estado_mutuo/:id/
// @Summary Both follow directions between the caller and a user
// @Tags relation
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.MutualStatus
// @Security BearerAuth
// @Router /relation/estado_mutuo/{id}/ [get]
func (s *Server) MutualStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	otherID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.relationService.MutualStatus(c.UserContext(), userID, otherID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(status)
}

// ListFollowing handles GET /api/relation/seguimientos/
// @Summary Users the caller follows
// @Tags relation
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.UserSummary
// @Security BearerAuth
// @Router /relation/seguimientos/ [get]
func (s *Server) ListFollowing(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	users, err := s.relationService.ListFollowing(c.UserContext(), userID, parsePagination(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(users)
}

// ListFollowers handles GET /api/relation/seguidores/
// @Summary Users following the caller
// @Tags relation
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.UserSummary
// @Security BearerAuth
// @Router /relation/seguidores/ [get]
func (s *Server) ListFollowers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	users, err := s.relationService.ListFollowers(c.UserContext(), userID, parsePagination(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(users)
}

// RelationCounts handles GET /api/relation/contador/
// @Summary Following and follower totals for the caller
// @Tags relation
// @Produce json
// @Success 200 {object} models.RelationCounts
// @Security BearerAuth
// @Router /relation/contador/ [get]
func (s *Server) RelationCounts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	counts, err := s.relationService.Counts(c.UserContext(), userID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// ProfileCard handles GET /api/relation/:id/info/
// @Summary Public profile card of a user
// @Tags relation
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.ProfileCard
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /relation/{id}/info/ [get]
func (s *Server) ProfileCard(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	card, err := s.relationService.ProfileCard(c.UserContext(), userID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(card)
}
