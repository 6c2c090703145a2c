package tui

import (
	"sync"

	"intervaltimer/internal/core/interval"
)

// Display keeps the latest timer output for the next frame. The timer
// writes to it from its sampling goroutine; the bubbletea loop reads it.
type Display struct {
	mu    sync.Mutex
	style interval.Style
	text  string
}

// NewDisplay returns an idle display showing the placeholder.
func NewDisplay() *Display {
	return &Display{
		style: interval.StyleIdle,
		text:  interval.Placeholder,
	}
}

// SetPhaseStyle records the phase style.
func (display *Display) SetPhaseStyle(style interval.Style) {
	display.mu.Lock()
	display.style = style
	display.mu.Unlock()
}

// SetText records the display text.
func (display *Display) SetText(text string) {
	display.mu.Lock()
	display.text = text
	display.mu.Unlock()
}

// Snapshot returns the current style and text together.
func (display *Display) Snapshot() (interval.Style, string) {
	display.mu.Lock()
	defer display.mu.Unlock()
	return display.style, display.text
}
