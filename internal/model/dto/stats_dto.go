package dto

// MonthlyStats is one month's aggregate over the raw logs.
type MonthlyStats struct {
	Month        string  `json:"month"` // display label, e.g. "2025 Már"
	MonthKey     string  `json:"month_key"` // canonical YYYY-MM sort key
	TotalHours   float64 `json:"total_hours"`
	AverageHours float64 `json:"average_hours"`
	WorkDays     int     `json:"work_days"`
}

// StatsResponse is returned by GET /v1/statistics.
type StatsResponse struct {
	Months         []MonthlyStats `json:"months"`
	TotalWorkDays  int            `json:"total_work_days"`
	TotalHours     float64        `json:"total_hours"`
	OverallAverage float64        `json:"overall_average"`
}
