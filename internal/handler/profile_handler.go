package handler

import (
	"mindspark/internal/dto"
	"mindspark/internal/middleware"
	"mindspark/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles user profile HTTP requests
type ProfileHandler struct {
	service service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Description Returns the profile, creating it with defaults on first access
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	profile, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Applies the provided fields; omitted fields are unchanged
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserProfileResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := h.service.UpdateProfile(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
