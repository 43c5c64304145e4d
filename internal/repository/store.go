package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/storage/database"
)

// Hand-written query layer over gorm. Mirrors the Querier interfaces
// in gen.go; regenerate with cmd/gen when the schema changes.

type UserStore struct{}

func Users() UserStore { return UserStore{} }

func (UserStore) Create(ctx context.Context, user *model.User) error {
	return database.DB().WithContext(ctx).Create(user).Error
}

func (UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := database.DB().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (UserStore) GetByPublicID(ctx context.Context, publicID int64) (*model.User, error) {
	var user model.User
	err := database.DB().WithContext(ctx).Where("public_id = ?", publicID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type WorkLogStore struct{}

func WorkLogs() WorkLogStore { return WorkLogStore{} }

// Upsert overwrites the entry for (user_id, date) if one exists.
func (WorkLogStore) Upsert(ctx context.Context, log *model.WorkLog) error {
	return database.DB().WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"arrival_time",
			"departure_time",
			"work_hours",
			"unpaid_break_minutes",
			"unpaid_applied",
			"updated_at",
		}),
	}).Create(log).Error
}

func (WorkLogStore) GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*model.WorkLog, error) {
	var log model.WorkLog
	err := database.DB().WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ListByUser returns entries newest first, for the log table view.
func (WorkLogStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]model.WorkLog, error) {
	var logs []model.WorkLog
	err := database.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}

// ListByUserAndRange returns entries in [from, to], oldest first.
func (WorkLogStore) ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]model.WorkLog, error) {
	var logs []model.WorkLog
	err := database.DB().WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

// ListAllByUser returns every entry for the export, oldest first.
func (WorkLogStore) ListAllByUser(ctx context.Context, userID int64) ([]model.WorkLog, error) {
	var logs []model.WorkLog
	err := database.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

func (WorkLogStore) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := database.DB().WithContext(ctx).
		Model(&model.WorkLog{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

type HolidayStore struct{}

func Holidays() HolidayStore { return HolidayStore{} }

// ListByRange returns holidays in [from, to], oldest first.
func (HolidayStore) ListByRange(ctx context.Context, from, to time.Time) ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := database.DB().WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

// IsNotFound reports whether err is the gorm missing-row sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
