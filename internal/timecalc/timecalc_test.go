package timecalc

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:00", 420, false},
		{"15:20", 920, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"7:00", 0, true},
		{"07:60", 0, true},
		{"0700", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestElapsedMinutes(t *testing.T) {
	tests := []struct {
		name      string
		arrival   string
		departure string
		breakMin  int
		want      int
	}{
		{"default day", "07:00", "15:00", 20, 460},
		{"full eight hours", "07:00", "15:20", 20, 480},
		{"no break", "09:00", "17:30", 0, 510},
		{"departure before arrival stays negative", "22:00", "02:00", 0, -1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElapsedMinutes(tt.arrival, tt.departure, tt.breakMin)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ElapsedMinutes(%q, %q, %d) = %d, want %d",
					tt.arrival, tt.departure, tt.breakMin, got, tt.want)
			}
		})
	}

	if _, err := ElapsedMinutes("7:00", "15:00", 0); err == nil {
		t.Error("expected error for malformed arrival")
	}
}

func TestSignedDelta(t *testing.T) {
	tests := []struct {
		name        string
		elapsed     int
		wantHours   int
		wantMinutes int
		wantLabel   string
	}{
		{"twenty short carries sign on minutes", 460, 0, -20, "-0 óra 20 perc"},
		{"twenty over", 500, 0, 20, "0 óra 20 perc"},
		{"two hours over", 600, 2, 0, "2 óra 0 perc"},
		{"exact baseline", 480, 0, 0, "0 óra 0 perc"},
		{"ninety short carries sign on hours", 390, -1, 30, "-1 óra 30 perc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := SignedDelta(tt.elapsed, BaselineMinutes)
			if h != tt.wantHours || m != tt.wantMinutes {
				t.Errorf("SignedDelta(%d, %d) = (%d, %d), want (%d, %d)",
					tt.elapsed, BaselineMinutes, h, m, tt.wantHours, tt.wantMinutes)
			}
			if got := FormatSignedDelta(h, m); got != tt.wantLabel {
				t.Errorf("FormatSignedDelta(%d, %d) = %q, want %q", h, m, got, tt.wantLabel)
			}
		})
	}
}

func TestDeriveDeparture(t *testing.T) {
	tests := []struct {
		name     string
		arrival  string
		hours    float64
		breakMin int
		applied  bool
		want     string
	}{
		{"break applied", "07:00", 8, 20, true, "15:20"},
		{"break not applied", "07:00", 8, 20, false, "15:00"},
		{"quarter hours", "08:15", 7.75, 30, true, "16:30"},
		{"wraps past midnight", "23:00", 2, 0, true, "01:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveDeparture(tt.arrival, tt.hours, tt.breakMin, tt.applied)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DeriveDeparture(%q, %v, %d, %v) = %q, want %q",
					tt.arrival, tt.hours, tt.breakMin, tt.applied, got, tt.want)
			}
		})
	}

	if _, err := DeriveDeparture("25:00", 8, 0, false); err == nil {
		t.Error("expected error for invalid arrival")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month int
		want  int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, time.Month(tt.month)); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
