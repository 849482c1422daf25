package render

import (
	"strings"
	"testing"
	"time"
)

func TestPrettySize(t *testing.T) {
	tests := []struct {
		size uint64
		want string
	}{
		{0, "0 B"},
		{10, "10 B"},
		{9999, "9999 B"},
		{10000, "9 KiB"},
		{2048, "2 KiB"},
		{4 << 20, "4 MiB"},
		{9999 << 10, "9999 KiB"},
		{(9999 << 10) + 1, "9 MiB"},
		{3 << 30, "3 GiB"},
		{5 << 40, "5 TiB"},
	}
	for _, tt := range tests {
		got := strings.TrimSpace(PrettySize(tt.size))
		if got != tt.want {
			t.Errorf("PrettySize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestPrettySizeWidth(t *testing.T) {
	// right-aligned columns rely on the padded unit names
	for _, size := range []uint64{0, 500, 2048, 4 << 20, 3 << 30} {
		if got := PrettySize(size); len(got) < 5 {
			t.Errorf("PrettySize(%d) = %q, too short for aligned columns", size, got)
		}
	}
}

func TestPrettyTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{3 * time.Second, "just now"},
		{30 * time.Second, "30 seconds ago"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{10 * 24 * time.Hour, "10 days ago"},
		{20 * 7 * 24 * time.Hour, "20 weeks ago"},
		{30 * secsPerMonth * time.Second, "30 months ago"},
		{30 * secsPerYear * time.Second, "30 years ago"},
		{400 * secsPerYear * time.Second, "4 centuries ago"},
	}
	for _, tt := range tests {
		got := strings.TrimSpace(PrettyTime(now, now.Add(-tt.ago)))
		if got != tt.want {
			t.Errorf("PrettyTime(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{20 * time.Millisecond, "20ms"},
		{1500 * time.Millisecond, "1.50s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
