package server

import (
	"strconv"

	"travelshare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// PublishRequest is the body of POST /api/viaje_compartido/:tripId/publicar/.
type PublishRequest struct {
	Comment string `json:"comentario"`
}

// PublishTrip handles POST /api/viaje_compartido/:tripId/publicar/
// @Summary Share a trip
// @Description Publish one of the caller's trips to the social feeds
// @Tags viaje_compartido
// @Accept json
// @Produce json
// @Param tripId path int true "Trip ID"
// @Param request body PublishRequest false "Optional comment"
// @Success 201 {object} models.SharedTrip
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /viaje_compartido/{tripId}/publicar/ [post]
func (s *Server) PublishTrip(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	tripID, err := s.parseID(c, "tripId")
	if err != nil {
		return nil
	}

	var req PublishRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	st, err := s.sharingService.Publish(c.UserContext(), tripID, userID, req.Comment)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// UnpublishTrip handles POST /api/viaje_compartido/:tripId/despublicar/
// @Summary Stop sharing a trip
// @Description Delete the caller's shared trip and every like on it
// @Tags viaje_compartido
// @Param tripId path int true "Trip ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /viaje_compartido/{tripId}/despublicar/ [post]
func (s *Server) UnpublishTrip(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	tripID, err := s.parseID(c, "tripId")
	if err != nil {
		return nil
	}

	if err := s.sharingService.Unpublish(c.UserContext(), tripID, userID); err != nil {
		return s.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// IsTripPublished handles GET /api/viaje_compartido/:tripId/esta_publicado/
// @Summary Whether a trip is shared
// @Tags viaje_compartido
// @Produce json
// @Param tripId path int true "Trip ID"
// @Success 200 {object} object{publicado=bool}
// @Security BearerAuth
// @Router /viaje_compartido/{tripId}/esta_publicado/ [get]
func (s *Server) IsTripPublished(c *fiber.Ctx) error {
	tripID, err := s.parseID(c, "tripId")
	if err != nil {
		return nil
	}

	published, err := s.sharingService.IsPublished(c.UserContext(), tripID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"publicado": published})
}

// GetSharedTrip handles GET /api/viaje_compartido/:id/
// @Summary Shared trip detail
// @Tags viaje_compartido
// @Produce json
// @Param id path int true "Shared trip ID"
// @Success 200 {object} models.FeedItem
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /viaje_compartido/{id}/ [get]
func (s *Server) GetSharedTrip(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	item, err := s.sharingService.Get(c.UserContext(), id, userID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(item)
}

// ListSharedTrips handles GET /api/viaje_compartido/?publicado_por=
// @Summary Shared trips of one publisher
// @Tags viaje_compartido
// @Produce json
// @Param publicado_por query int true "Publisher user ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.FeedItem
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /viaje_compartido/ [get]
func (s *Server) ListSharedTrips(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	publisherID, ok, err := publisherFilter(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	page := parsePagination(c)

	var items []models.FeedItem
	if ok {
		items, err = s.sharingService.ListByPublisher(c.UserContext(), userID, publisherID, page)
	} else {
		items, err = s.feedService.Recent(c.UserContext(), userID, nil, page)
	}
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(items)
}

// LikeSharedTrip handles POST /api/viaje_compartido/:id/like/
// @Summary Like a shared trip
// @Description Idempotent; liking twice leaves a single like
// @Tags viaje_compartido
// @Produce json
// @Param id path int true "Shared trip ID"
// @Success 200 {object} models.LikeState
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /viaje_compartido/{id}/like/ [post]
func (s *Server) LikeSharedTrip(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	state, err := s.engagementService.Like(c.UserContext(), userID, id)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(state)
}

// UnlikeSharedTrip handles POST /api/viaje_compartido/:id/unlike/
// @Summary Remove a like from a shared trip
// @Description Idempotent; succeeds when no like exists
// @Tags viaje_compartido
// @Produce json
// @Param id path int true "Shared trip ID"
// @Success 200 {object} models.LikeState
// @Security BearerAuth
// @Router /viaje_compartido/{id}/unlike/ [post]
func (s *Server) UnlikeSharedTrip(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	state, err := s.engagementService.Unlike(c.UserContext(), userID, id)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(state)
}

// publisherFilter reads the optional publicado_por query parameter.
func publisherFilter(c *fiber.Ctx) (uint, bool, error) {
	raw := c.Query("publicado_por")
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false, models.NewValidationError("Invalid publicado_por")
	}
	return uint(id), true, nil
}
