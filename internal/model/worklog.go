package model

import "time"

// WorkLog is one user's attendance entry for one calendar date.
// Upserts are keyed on (user_id, date); rows are overwritten, never
// deleted in-app.
type WorkLog struct {
	BaseModel
	UserID             int64     `gorm:"not null;uniqueIndex:idx_work_logs_user_date" json:"user_id"`
	Date               time.Time `gorm:"type:date;not null;uniqueIndex:idx_work_logs_user_date" json:"date"`
	ArrivalTime        string    `gorm:"type:varchar(5);not null" json:"arrival_time"`
	DepartureTime      string    `gorm:"type:varchar(5);not null" json:"departure_time"`
	WorkHours          float64   `gorm:"type:numeric(4,2);not null" json:"work_hours"`
	UnpaidBreakMinutes int       `gorm:"not null;default:0" json:"unpaid_break_minutes"`
	UnpaidApplied      bool      `gorm:"not null;default:true" json:"unpaid_applied"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}

// DateString returns the date in YYYY-MM-DD form.
func (w WorkLog) DateString() string {
	return w.Date.Format(DateOnly)
}

// MonthKey returns the YYYY-MM grouping prefix of the date.
func (w WorkLog) MonthKey() string {
	return w.Date.Format("2006-01")
}
