package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
)

// Semicolon-separated layout, matching what Hungarian Excel expects.
const csvHeader = "Dátum;Érkezés;Távozás;Munkaidő (óra);Nem fizetett szünet (perc);Alkalmazva?"

// utf8BOM makes Excel pick up the accented characters.
const utf8BOM = "\ufeff"

// BuildWorkLogCSV renders the user's logs as a semicolon CSV in
// ascending date order. An empty log set is refused, there is no
// header-only download.
func BuildWorkLogCSV(logs []model.WorkLog) ([]byte, error) {
	if len(logs) == 0 {
		return nil, errors.ExportEmpty
	}

	sorted := make([]model.WorkLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(csvHeader)
	for _, log := range sorted {
		applied := "Nem"
		if log.UnpaidApplied {
			applied = "Igen"
		}
		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			log.DateString(),
			log.ArrivalTime,
			log.DepartureTime,
			strconv.FormatFloat(log.WorkHours, 'f', -1, 64),
			strconv.Itoa(log.UnpaidBreakMinutes),
			applied,
		}, ";"))
	}

	return []byte(b.String()), nil
}

// Filename is the download name for an export generated at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("munkaido_%s.csv", t.Format(model.DateOnly))
}
