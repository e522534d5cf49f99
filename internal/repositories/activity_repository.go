package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"haven/internal/models/db_models"
	"haven/pkg/utils"
)

type ActivityRepository interface {
	// UpsertForDay replaces the metrics for the user's log on the given
	// day, creating the row on first write. One row per user per day.
	UpsertForDay(ctx context.Context, log *db_models.DailyLog) error

	GetForDay(ctx context.Context, userId string, day time.Time) (*db_models.DailyLog, error)

	// ListHistory returns the user's saved logs before the given day,
	// oldest first.
	ListHistory(ctx context.Context, userId string, before time.Time) ([]db_models.DailyLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) UpsertForDay(ctx context.Context, log *db_models.DailyLog) error {
	log.LogDate = utils.StartOfDay(log.LogDate)

	var existing db_models.DailyLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", log.UserID, log.LogDate).
		First(&existing).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(log).Error
		}
		return err
	}

	log.ID = existing.ID
	log.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *activityRepository) GetForDay(ctx context.Context, userId string, day time.Time) (*db_models.DailyLog, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, err
	}

	var log db_models.DailyLog
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userUUID, utils.StartOfDay(day)).
		First(&log).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &log, nil
}

func (r *activityRepository) ListHistory(ctx context.Context, userId string, before time.Time) ([]db_models.DailyLog, error) {

	var logs []db_models.DailyLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date < ?", userId, utils.StartOfDay(before)).
		Order("log_date ASC").
		Find(&logs).Error

	if err != nil {
		return nil, err
	}

	return logs, nil
}
