package countdown

import (
	"testing"

	"intervaltimer/internal/core/interval"

	"fyne.io/fyne/v2/test"
)

func TestPaletteIsDistinctPerStyle(t *testing.T) {
	styles := []interval.Style{
		interval.StyleIdle,
		interval.StyleRunning,
		interval.StyleAlerting,
		interval.StylePaused,
	}
	seen := map[Colors]interval.Style{}
	for _, style := range styles {
		colors := Palette(style)
		if colors.Caption == "" {
			t.Fatalf("Palette(%v) has no caption", style)
		}
		if previous, ok := seen[colors]; ok {
			t.Fatalf("Palette(%v) duplicates Palette(%v)", style, previous)
		}
		seen[colors] = style
	}
	if Palette("unknown") != Palette(interval.StyleIdle) {
		t.Fatalf("unknown styles should fall back to idle")
	}
}

func TestViewKeepsSingleActiveStyle(t *testing.T) {
	test.NewTempApp(t)

	view := New()
	if view.Style() != interval.StyleIdle || view.Text() != interval.Placeholder {
		t.Fatalf("new view = %v %q, want idle placeholder", view.Style(), view.Text())
	}

	view.SetPhaseStyle(interval.StyleRunning)
	view.SetText("12.3")
	view.SetPhaseStyle(interval.StyleAlerting)

	if got := view.Style(); got != interval.StyleAlerting {
		t.Fatalf("Style() = %v, want alerting", got)
	}
	if got := view.Text(); got != "12.3" {
		t.Fatalf("Text() = %q, want 12.3", got)
	}
	if view.Content() == nil {
		t.Fatalf("Content() returned nil")
	}
}
