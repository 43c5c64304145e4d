package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"tamas.vereb@ceg.hu", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"@example.com", false},
		{"user@", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateEmail(tt.in); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateClock(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"07:00", true},
		{"23:59", true},
		{"24:00", false},
		{"7:00", false},
		{"07:60", false},
		{"0700", false},
	}
	for _, tt := range tests {
		if got := ValidateClock(tt.in); got != tt.want {
			t.Errorf("ValidateClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2025-06-03", true},
		{"2025-12-31", true},
		{"2025-13-01", false},
		{"2025-00-10", false},
		{"2025-06-32", false},
		{"2025-6-3", false},
		{"20250603", false},
	}
	for _, tt := range tests {
		if got := ValidateDate(tt.in); got != tt.want {
			t.Errorf("ValidateDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2025-06", true},
		{"2025-12", true},
		{"2025-13", false},
		{"2025-0", false},
		{"2025", false},
	}
	for _, tt := range tests {
		if got := ValidateMonth(tt.in); got != tt.want {
			t.Errorf("ValidateMonth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
