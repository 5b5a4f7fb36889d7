package handler

import (
	"mindspark/internal/dto"
	"mindspark/internal/middleware"
	"mindspark/internal/service"
	"mindspark/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler handles activity-related HTTP requests
type ActivityHandler struct {
	service   service.ActivityService
	validator *validation.Validator
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetRandomActivity godoc
// @Summary Get a random activity
// @Description Returns a random activity, restricted to the user's selected interests when any exist
// @Tags activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ActivityResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /activities/random [get]
func (h *ActivityHandler) GetRandomActivity(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	activity, err := h.service.GetRandomActivity(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(activity)
}

// SubmitAnswer godoc
// @Summary Submit an answer for an activity
// @Description Grades the answer against the activity's canonical answer and records the attempt
// @Tags activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Activity ID"
// @Param body body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /activities/{id}/submit [post]
func (h *ActivityHandler) SubmitAnswer(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)
	activityID := c.Params("id")

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateSubmitAnswerRequest(activityID, req.Answer); len(errs) > 0 {
		return errs
	}

	result, err := h.service.SubmitAnswer(c.Context(), userID, activityID, &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// CompleteActivity godoc
// @Summary Complete an activity
// @Description Records a completion and credits the activity's point reward
// @Tags activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Activity ID"
// @Param body body dto.CompleteActivityRequest false "Completion details"
// @Success 200 {object} dto.CompleteActivityResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /activities/{id}/complete [post]
func (h *ActivityHandler) CompleteActivity(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)
	activityID := c.Params("id")

	// The body is optional; an empty body means no self-reported details.
	var req dto.CompleteActivityRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	if errs := h.validator.ValidateCompleteActivityRequest(activityID, &req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.CompleteActivity(c.Context(), userID, activityID, &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetStats godoc
// @Summary Get user statistics
// @Description Returns the user's live aggregate: completions, points, level, badges
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /stats [get]
func (h *ActivityHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	stats, err := h.service.GetStats(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
