package dto

// UpsertWorkLogRequest creates or overwrites the entry for one date.
// DepartureTime is derived server-side from arrival + work hours; it is
// never accepted from the client.
type UpsertWorkLogRequest struct {
	Date               string  `json:"date"`       // YYYY-MM-DD
	ArrivalTime        string  `json:"arrival_time"` // HH:MM
	WorkHours          float64 `json:"work_hours"`   // quarter-hour resolution
	UnpaidBreakMinutes int     `json:"unpaid_break_minutes"`
	UnpaidApplied      bool    `json:"unpaid_applied"`
}

// WorkLogItem is one stored entry as shown in the log table.
type WorkLogItem struct {
	Date               string  `json:"date"`
	ArrivalTime        string  `json:"arrival_time"`
	DepartureTime      string  `json:"departure_time"`
	WorkHours          float64 `json:"work_hours"`
	UnpaidBreakMinutes int     `json:"unpaid_break_minutes"`
	UnpaidApplied      bool    `json:"unpaid_applied"`
}

// HolidayItem is one public holiday.
type HolidayItem struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
