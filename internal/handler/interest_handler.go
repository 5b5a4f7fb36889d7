package handler

import (
	"mindspark/internal/dto"
	"mindspark/internal/middleware"
	"mindspark/internal/service"
	"mindspark/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// InterestHandler handles interest selection HTTP requests
type InterestHandler struct {
	service   service.InterestService
	validator *validation.Validator
}

// NewInterestHandler creates a new InterestHandler instance
func NewInterestHandler(service service.InterestService) *InterestHandler {
	return &InterestHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetInterests godoc
// @Summary Get the current user's interests
// @Description Returns every interest row with its selection flag
// @Tags interests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.InterestsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /interests [get]
func (h *InterestHandler) GetInterests(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	interests, err := h.service.GetInterests(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(interests)
}

// SetInterests godoc
// @Summary Replace the current user's interests
// @Description Replaces the entire selection with the given activity types
// @Tags interests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.SetInterestsRequest true "Interest types"
// @Success 200 {object} dto.SetInterestsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /interests [post]
func (h *InterestHandler) SetInterests(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	var req dto.SetInterestsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateSetInterestsRequest(req.Interests); len(errs) > 0 {
		return errs
	}

	interests, err := h.service.SetInterests(c.Context(), userID, req.Interests)
	if err != nil {
		return err
	}
	return c.JSON(dto.SetInterestsResponse{
		Success:   true,
		Interests: interests.Interests,
	})
}
