package handler

import (
	"mindspark/internal/dto"
	"mindspark/internal/middleware"
	"mindspark/internal/service"
	"mindspark/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler handles class schedule HTTP requests
type ScheduleHandler struct {
	service   service.ScheduleService
	validator *validation.Validator
}

// NewScheduleHandler creates a new ScheduleHandler instance
func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetSchedules godoc
// @Summary Get the current user's class schedules
// @Description Returns active schedule entries ordered by day and start time
// @Tags schedules
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SchedulesResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /schedules [get]
func (h *ScheduleHandler) GetSchedules(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	schedules, err := h.service.GetSchedules(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(schedules)
}

// CreateSchedule godoc
// @Summary Add a class schedule entry
// @Description Creates a recurring weekly class block
// @Tags schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.CreateScheduleRequest true "Schedule entry"
// @Success 201 {object} dto.ScheduleItem
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateCreateScheduleRequest(&req); len(errs) > 0 {
		return errs
	}

	schedule, err := h.service.CreateSchedule(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// DeleteSchedule godoc
// @Summary Delete a class schedule entry
// @Description Soft-deletes the entry; deleting a missing entry succeeds
// @Tags schedules
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)
	scheduleID := c.Params("id")

	if err := h.service.DeleteSchedule(c.Context(), userID, scheduleID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "schedule deleted"})
}
