package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
)

// Hungarian public holidays. The movable feasts (Nagypéntek,
// Húsvéthétfő, Pünkösdhétfő) are listed explicitly per year.
var holidaySeed = []struct {
	date string
	name string
}{
	{"2025-01-01", "Újév"},
	{"2025-03-15", "Nemzeti ünnep"},
	{"2025-04-18", "Nagypéntek"},
	{"2025-04-21", "Húsvéthétfő"},
	{"2025-05-01", "A munka ünnepe"},
	{"2025-06-09", "Pünkösdhétfő"},
	{"2025-08-20", "Az államalapítás ünnepe"},
	{"2025-10-23", "Nemzeti ünnep"},
	{"2025-11-01", "Mindenszentek"},
	{"2025-12-25", "Karácsony"},
	{"2025-12-26", "Karácsony másnapja"},

	{"2026-01-01", "Újév"},
	{"2026-03-15", "Nemzeti ünnep"},
	{"2026-04-03", "Nagypéntek"},
	{"2026-04-06", "Húsvéthétfő"},
	{"2026-05-01", "A munka ünnepe"},
	{"2026-05-25", "Pünkösdhétfő"},
	{"2026-08-20", "Az államalapítás ünnepe"},
	{"2026-10-23", "Nemzeti ünnep"},
	{"2026-11-01", "Mindenszentek"},
	{"2026-12-25", "Karácsony"},
	{"2026-12-26", "Karácsony másnapja"},
}

// SeedHolidays inserts the holiday reference rows. Existing dates are
// left untouched, so re-running on startup is safe.
func SeedHolidays() error {
	db := DB()
	if db == nil {
		return gorm.ErrInvalidDB
	}

	rows := make([]model.Holiday, 0, len(holidaySeed))
	for _, h := range holidaySeed {
		date, err := time.Parse(model.DateOnly, h.date)
		if err != nil {
			return err
		}
		rows = append(rows, model.Holiday{Date: date, Name: h.name})
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(&rows).Error

	if err != nil {
		logger.Logger.Error("Holiday seeding failed", zap.Error(err))
		return err
	}

	logger.Logger.Info("Holiday reference data seeded", zap.Int("rows", len(rows)))
	return nil
}
