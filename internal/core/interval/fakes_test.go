package interval

import (
	"sync"
	"time"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: epoch}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Set moves the clock to epoch+offset.
func (clock *fakeClock) Set(offset time.Duration) {
	clock.mu.Lock()
	clock.now = epoch.Add(offset)
	clock.mu.Unlock()
}

type registration struct {
	interval  time.Duration
	callback  func()
	cancelled bool
}

// manualScheduler records registrations and fires them on demand.
type manualScheduler struct {
	registrations []*registration
}

func (scheduler *manualScheduler) Every(interval time.Duration, callback func()) Cancel {
	reg := &registration{interval: interval, callback: callback}
	scheduler.registrations = append(scheduler.registrations, reg)
	return func() {
		reg.cancelled = true
	}
}

func (scheduler *manualScheduler) fire() {
	for _, reg := range scheduler.registrations {
		if !reg.cancelled {
			reg.callback()
		}
	}
}

func (scheduler *manualScheduler) active() int {
	count := 0
	for _, reg := range scheduler.registrations {
		if !reg.cancelled {
			count++
		}
	}
	return count
}

type displayCall struct {
	Kind  string
	Value string
}

type recordingDisplay struct {
	mu    sync.Mutex
	calls []displayCall
}

func (display *recordingDisplay) SetPhaseStyle(style Style) {
	display.mu.Lock()
	display.calls = append(display.calls, displayCall{Kind: "style", Value: string(style)})
	display.mu.Unlock()
}

func (display *recordingDisplay) SetText(text string) {
	display.mu.Lock()
	display.calls = append(display.calls, displayCall{Kind: "text", Value: text})
	display.mu.Unlock()
}

// take returns and clears recorded calls.
func (display *recordingDisplay) take() []displayCall {
	display.mu.Lock()
	defer display.mu.Unlock()
	calls := display.calls
	display.calls = nil
	return calls
}

func style(value Style) displayCall {
	return displayCall{Kind: "style", Value: string(value)}
}

func text(value string) displayCall {
	return displayCall{Kind: "text", Value: value}
}
