package service

import (
	"context"

	"mindspark/internal/domain"
	"mindspark/internal/dto"
)

// ScheduleService defines the interface for class schedule operations
type ScheduleService interface {
	GetSchedules(ctx context.Context, userID string) (*dto.SchedulesResponse, error)
	CreateSchedule(ctx context.Context, userID string, req *dto.CreateScheduleRequest) (*dto.ScheduleItem, error)
	// DeleteSchedule soft-deletes the entry. Deleting an entry the user
	// does not own, or one already deleted, is a no-op.
	DeleteSchedule(ctx context.Context, userID, scheduleID string) error
}

// scheduleService implements ScheduleService
type scheduleService struct {
	scheduleRepo domain.ScheduleRepository
}

// NewScheduleService creates a new instance of scheduleService
func NewScheduleService(scheduleRepo domain.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

// GetSchedules implements ScheduleService
func (s *scheduleService) GetSchedules(ctx context.Context, userID string) (*dto.SchedulesResponse, error) {
	schedules, err := s.scheduleRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get schedules", err)
	}

	items := make([]dto.ScheduleItem, 0, len(schedules))
	for _, schedule := range schedules {
		items = append(items, toScheduleItem(&schedule))
	}
	return &dto.SchedulesResponse{Schedules: items}, nil
}

// CreateSchedule implements ScheduleService
func (s *scheduleService) CreateSchedule(ctx context.Context, userID string, req *dto.CreateScheduleRequest) (*dto.ScheduleItem, error) {
	schedule := &domain.ClassSchedule{
		UserID:    userID,
		ClassName: req.ClassName,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		IsActive:  true,
	}
	if err := s.scheduleRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, domain.NewInternalError("Failed to create schedule", err)
	}

	item := toScheduleItem(schedule)
	return &item, nil
}

// DeleteSchedule implements ScheduleService
func (s *scheduleService) DeleteSchedule(ctx context.Context, userID, scheduleID string) error {
	if err := s.scheduleRepo.DeactivateSchedule(ctx, scheduleID, userID); err != nil {
		return domain.NewInternalError("Failed to delete schedule", err)
	}
	return nil
}

func toScheduleItem(schedule *domain.ClassSchedule) dto.ScheduleItem {
	item := dto.ScheduleItem{
		ID:        schedule.ID,
		ClassName: schedule.ClassName,
		DayOfWeek: schedule.DayOfWeek,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		CreatedAt: schedule.CreatedAt,
	}
	if schedule.Location != nil {
		item.Location = *schedule.Location
	}
	return item
}
