package export

import (
	"strings"
	"testing"
	"time"

	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateOnly, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestBuildWorkLogCSV(t *testing.T) {
	logs := []model.WorkLog{
		{
			Date:               date(t, "2025-06-04"),
			ArrivalTime:        "08:00",
			DepartureTime:      "16:15",
			WorkHours:          7.75,
			UnpaidBreakMinutes: 30,
			UnpaidApplied:      false,
		},
		{
			Date:               date(t, "2025-06-03"),
			ArrivalTime:        "07:00",
			DepartureTime:      "15:20",
			WorkHours:          8,
			UnpaidBreakMinutes: 20,
			UnpaidApplied:      true,
		},
	}

	body, err := BuildWorkLogCSV(logs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(body)

	if !strings.HasPrefix(got, "\ufeff") {
		t.Error("missing UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimPrefix(got, "\ufeff"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Dátum;Érkezés;Távozás;Munkaidő (óra);Nem fizetett szünet (perc);Alkalmazva?" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2025-06-03;07:00;15:20;8;20;Igen" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[2] != "2025-06-04;08:00;16:15;7.75;30;Nem" {
		t.Errorf("second row = %q", lines[2])
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("unexpected trailing newline")
	}
}

func TestBuildWorkLogCSVRefusesEmpty(t *testing.T) {
	body, err := BuildWorkLogCSV(nil)
	if err != errors.ExportEmpty {
		t.Fatalf("error = %v, want ExportEmpty", err)
	}
	if body != nil {
		t.Errorf("expected no body for an empty export, got %d bytes", len(body))
	}
}

func TestFilename(t *testing.T) {
	got := Filename(time.Date(2025, time.June, 4, 10, 30, 0, 0, time.UTC))
	if got != "munkaido_2025-06-04.csv" {
		t.Errorf("Filename = %q", got)
	}
}
