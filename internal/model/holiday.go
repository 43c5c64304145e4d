package model

import "time"

// Holiday is read-only reference data: a Hungarian public holiday.
// Dates present here are excluded from default-fill inference and
// flagged in summaries.
type Holiday struct {
	BaseModel
	Date time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	Name string    `gorm:"type:varchar(128);not null" json:"name"`
}

func (Holiday) TableName() string {
	return "hungarian_holidays"
}

// DateString returns the date in YYYY-MM-DD form.
func (h Holiday) DateString() string {
	return h.Date.Format(DateOnly)
}
