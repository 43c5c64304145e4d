package summary

import (
	"fmt"
	"math"
	"sort"

	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
)

// Hungarian month abbreviations, January first.
var monthAbbr = [12]string{
	"Jan", "Feb", "Már", "Ápr", "Máj", "Jún",
	"Júl", "Aug", "Szep", "Okt", "Nov", "Dec",
}

// BuildStats groups raw logs by month and aggregates declared work
// hours. Every logged day counts as a work day, holidays and weekends
// included. Months are ordered by their canonical YYYY-MM key.
func BuildStats(logs []model.WorkLog) dto.StatsResponse {
	type bucket struct {
		hours float64
		days  int
	}
	byMonth := make(map[string]*bucket)
	for _, log := range logs {
		key := log.MonthKey()
		b, ok := byMonth[key]
		if !ok {
			b = &bucket{}
			byMonth[key] = b
		}
		b.hours += log.WorkHours
		b.days++
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	resp := dto.StatsResponse{Months: make([]dto.MonthlyStats, 0, len(keys))}
	for _, key := range keys {
		b := byMonth[key]
		total := round1(b.hours)
		resp.Months = append(resp.Months, dto.MonthlyStats{
			Month:        MonthLabel(key),
			MonthKey:     key,
			TotalHours:   total,
			AverageHours: round1(b.hours / float64(b.days)),
			WorkDays:     b.days,
		})
		resp.TotalWorkDays += b.days
		resp.TotalHours += total
	}
	if resp.TotalWorkDays > 0 {
		resp.OverallAverage = round1(resp.TotalHours / float64(resp.TotalWorkDays))
	}

	return resp
}

// MonthLabel turns a YYYY-MM key into the display form "2025 Már".
// Malformed keys are returned unchanged.
func MonthLabel(key string) string {
	var year, month int
	if _, err := fmt.Sscanf(key, "%d-%d", &year, &month); err != nil || month < 1 || month > 12 {
		return key
	}
	return fmt.Sprintf("%d %s", year, monthAbbr[month-1])
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
