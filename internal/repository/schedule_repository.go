package repository

import (
	"context"
	"fmt"
	"time"

	"mindspark/internal/domain"
	"mindspark/internal/repository/models"
	"mindspark/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxScheduleRepository implements domain.ScheduleRepository using sqlx.
type sqlxScheduleRepository struct {
	db *sqlx.DB
}

// NewSQLXScheduleRepository creates a new instance of sqlxScheduleRepository.
func NewSQLXScheduleRepository(db *sqlx.DB) domain.ScheduleRepository {
	return &sqlxScheduleRepository{db: db}
}

// GetActiveByUserID returns the user's active class blocks ordered by
// day of week, then start time.
func (r *sqlxScheduleRepository) GetActiveByUserID(ctx context.Context, userID string) ([]domain.ClassSchedule, error) {
	var modelSchedules []models.ClassSchedule
	query := `SELECT id, user_id, class_name, day_of_week, start_time,
		end_time, location, is_active, created_at, updated_at
	FROM class_schedules
	WHERE user_id = ? AND is_active = 1
	ORDER BY day_of_week, start_time`

	err := GetExecutor(ctx, r.db).SelectContext(ctx, &modelSchedules, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule for user %s: %w", userID, err)
	}

	schedules := make([]domain.ClassSchedule, 0, len(modelSchedules))
	for i := range modelSchedules {
		schedules = append(schedules, *toDomainSchedule(&modelSchedules[i]))
	}
	return schedules, nil
}

// CreateSchedule inserts a new class block.
func (r *sqlxScheduleRepository) CreateSchedule(ctx context.Context, schedule *domain.ClassSchedule) error {
	model := fromDomainSchedule(schedule)
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	model.IsActive = true
	now := time.Now()
	model.CreatedAt = now
	model.UpdatedAt = now

	query := `INSERT INTO class_schedules (
		id, user_id, class_name, day_of_week, start_time, end_time,
		location, is_active, created_at, updated_at
	) VALUES (
		:id, :user_id, :class_name, :day_of_week, :start_time, :end_time,
		:location, :is_active, :created_at, :updated_at
	)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	schedule.ID = model.ID
	schedule.IsActive = true
	schedule.CreatedAt = model.CreatedAt
	schedule.UpdatedAt = model.UpdatedAt
	return nil
}

// DeactivateSchedule soft-deletes a class block. The user scope keeps
// one user from touching another's rows; a miss is not an error, which
// matches the delete's idempotent contract.
func (r *sqlxScheduleRepository) DeactivateSchedule(ctx context.Context, id, userID string) error {
	query := `UPDATE class_schedules
		SET is_active = 0, updated_at = ?
		WHERE id = ? AND user_id = ?`

	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, time.Now(), id, userID); err != nil {
		return fmt.Errorf("failed to deactivate schedule %s: %w", id, err)
	}
	return nil
}

func toDomainSchedule(m *models.ClassSchedule) *domain.ClassSchedule {
	if m == nil {
		return nil
	}
	return &domain.ClassSchedule{
		ID:        m.ID,
		UserID:    m.UserID,
		ClassName: m.ClassName,
		DayOfWeek: m.DayOfWeek,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Location:  util.NullStringToPtr(m.Location),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainSchedule(d *domain.ClassSchedule) *models.ClassSchedule {
	if d == nil {
		return nil
	}
	return &models.ClassSchedule{
		ID:        d.ID,
		UserID:    d.UserID,
		ClassName: d.ClassName,
		DayOfWeek: d.DayOfWeek,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Location:  util.StringPtrToNullString(d.Location),
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
