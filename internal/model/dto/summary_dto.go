package dto

// DaySummary is the derived accounting result for one business day.
// PlusMinusHours carries the sign of the delta; PlusMinusMinutes is the
// non-negative remainder except in the synthetic-default case, where
// the original kept -20 on the minutes with hours at zero.
type DaySummary struct {
	Date             string `json:"date"`
	Arrival          string `json:"arrival"`
	Departure        string `json:"departure"`
	UnpaidBreak      int    `json:"unpaid_break"`
	WorkedHours      int    `json:"worked_hours"`
	WorkedMinutes    int    `json:"worked_minutes"`
	PlusMinusHours   int    `json:"plus_minus_hours"`
	PlusMinusMinutes int    `json:"plus_minus_minutes"`
	PlusMinusLabel   string `json:"plus_minus_label"`
	IsHoliday        bool   `json:"is_holiday"`
	HolidayName      string `json:"holiday_name,omitempty"`
}

// MonthTotal is the month-level over/under-time rollup.
type MonthTotal struct {
	Sign    string `json:"sign"` // "+" or "-"
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
}

// MonthlySummaryResponse is returned by GET /v1/summary/monthly.
type MonthlySummaryResponse struct {
	Month string       `json:"month"` // YYYY-MM
	Days  []DaySummary `json:"days"`
	Total MonthTotal   `json:"total"`
}
