package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2 * time.Minute, "2m0s"},
	}
	for _, tc := range testCases {
		if got := FormatExecutionDuration(tc.d); got != tc.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		eta      time.Duration
		expected string
	}{
		{"Zero duration", 0, "calculating..."},
		{"Negative duration", -time.Second, "calculating..."},
		{"Less than a second", 500 * time.Millisecond, "< 1s"},
		{"Multiple seconds", 45 * time.Second, "45s"},
		{"One minute", time.Minute, "1m"},
		{"Minutes and seconds", 2*time.Minute + 30*time.Second, "2m30s"},
		{"Hours and minutes", time.Hour + 15*time.Minute, "1h15m"},
		{"Hours only (no minutes)", 2 * time.Hour, "2h"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatETA(tc.eta); got != tc.expected {
				t.Errorf("FormatETA(%v) = %q, want %q", tc.eta, got, tc.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{208_987_640, "199.3 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tc := range testCases {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1_000_000_000, "1,000,000,000"},
		{12345678901, "12,345,678,901"},
	}
	for _, tc := range testCases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestETA(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Unix(0, 0)}
	e := newETA(clock.now)

	if _, eta := e.Update(0); eta != 0 {
		t.Errorf("ETA without elapsed time = %v, want 0", eta)
	}

	clock.t = clock.t.Add(5 * time.Second)
	p, eta := e.Update(0.5) // 10% per second
	if p != 0.5 {
		t.Errorf("progress = %v, want 0.5", p)
	}
	if eta < 4*time.Second || eta > 6*time.Second {
		t.Errorf("ETA = %v, want about 5s", eta)
	}

	if p, eta := e.Update(1.5); p != 1 || eta != 0 {
		t.Errorf("Update(1.5) = %v, %v; want 1, 0", p, eta)
	}
	if p, _ := e.Update(-0.5); p != 0 {
		t.Errorf("Update(-0.5) progress = %v, want 0", p)
	}
}

func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		progress float64
		eta      time.Duration
		width    int
		want     string
	}{
		{"zero", 0, time.Minute, 4, "[----]   0.0% ETA: 1m"},
		{"half", 0.5, 30 * time.Second, 4, "[##--]  50.0% ETA: 30s"},
		{"complete", 1, 0, 4, "[####] 100.0% ETA: done"},
		{"clamped", 2, 0, 2, "[##] 100.0% ETA: done"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatProgressBarWithETA(tc.progress, tc.eta, tc.width)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if !strings.Contains(got, "%") {
				t.Error("bar should contain a percentage")
			}
		})
	}
}
