package interval

import (
	"fmt"
	"sync"
	"time"

	"intervaltimer/internal/core/model"
)

// Placeholder is shown while the timer is idle.
const Placeholder = "———"

// DefaultSampleInterval is the cadence at which the remaining time is sampled.
const DefaultSampleInterval = 10 * time.Millisecond

// Display receives state and remaining-time updates. Calls are made while
// the Timer holds its lock, so implementations must not block on the UI loop.
type Display interface {
	SetPhaseStyle(style Style)
	SetText(text string)
}

// Config contains runtime options for Timer.
type Config struct {
	SampleInterval time.Duration
	Clock          Clock
	Scheduler      Scheduler
}

// Timer is a state machine that counts down, alerts, pauses and repeats
// until stopped. Remaining time is derived from the phase epoch, not from
// the number of samples taken.
type Timer struct {
	mu           sync.Mutex
	durations    model.Durations
	pauseMessage string
	options      Config
	display      Display
	state        State
	startTime    time.Time
	cancel       Cancel
	generation   uint64
	repetition   int
	events       []chan Event
}

// New creates an idle Timer with the provided configuration.
func New(config model.TimerConfig, display Display, options Config) *Timer {
	if options.SampleInterval <= 0 {
		options.SampleInterval = DefaultSampleInterval
	}
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}
	if options.Scheduler == nil {
		options.Scheduler = TickerScheduler{}
	}

	return &Timer{
		durations:    config.Durations,
		pauseMessage: config.PauseMessage,
		options:      options,
		display:      display,
		state:        StateIdle,
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Start adopts the durations and begins counting down. It is a no-op unless
// the timer is idle.
func (timer *Timer) Start(durations model.Durations) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.state != StateIdle {
		return
	}

	now := timer.options.Clock.Now()
	timer.durations = durations
	timer.repetition = 1
	timer.generation++
	timer.setStateLocked(StateRunning, now)
	timer.startTime = now

	generation := timer.generation
	timer.cancel = timer.options.Scheduler.Every(timer.options.SampleInterval, func() {
		timer.tick(generation)
	})
}

// SetPauseMessage replaces the text shown while paused. It takes effect at
// the next pause; an empty message restores the default.
func (timer *Timer) SetPauseMessage(message string) {
	if message == "" {
		message = model.DefaultTimerConfig().PauseMessage
	}
	timer.mu.Lock()
	timer.pauseMessage = message
	timer.mu.Unlock()
}

// Stop cancels sampling and returns to idle. No tick changes state once Stop
// has returned. It is a no-op when already idle.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.stopLocked()
}

// Close stops the timer and closes observer channels.
func (timer *Timer) Close() {
	timer.mu.Lock()
	timer.stopLocked()
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// State returns the current phase.
func (timer *Timer) State() State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state
}

// Durations returns the durations of the current (or next) run.
func (timer *Timer) Durations() model.Durations {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.durations
}

// StartTime returns the epoch of the current phase. The second result is
// false while idle.
func (timer *Timer) StartTime() (time.Time, bool) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.startTime, timer.state != StateIdle
}

// Repetition returns the 1-based repetition number, or 0 while idle.
func (timer *Timer) Repetition() int {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.repetition
}

func (timer *Timer) stopLocked() {
	if timer.state == StateIdle {
		return
	}
	if timer.cancel != nil {
		timer.cancel()
		timer.cancel = nil
	}
	timer.startTime = time.Time{}
	timer.repetition = 0
	timer.setStateLocked(StateIdle, timer.options.Clock.Now())
	timer.display.SetText(Placeholder)
}

func (timer *Timer) tick(generation uint64) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.state == StateIdle || generation != timer.generation {
		return
	}

	now := timer.options.Clock.Now()
	elapsed := now.Sub(timer.startTime)

	switch timer.state {
	case StateRunning:
		remaining := timer.durations.Countdown - elapsed
		if remaining <= timer.durations.Alert {
			timer.setStateLocked(StateAlerting, now)
			return
		}
		timer.renderLocked(remaining, now)
	case StateAlerting:
		remaining := timer.durations.Countdown - elapsed
		if remaining <= 0 {
			timer.setStateLocked(StatePaused, now)
			timer.display.SetText(timer.pauseMessage)
			timer.startTime = now
			return
		}
		timer.renderLocked(remaining, now)
	case StatePaused:
		remaining := timer.durations.Pause - elapsed
		if remaining <= 0 {
			timer.repetition++
			timer.setStateLocked(StateRunning, now)
			timer.display.SetText(FormatRemaining(timer.durations.Countdown))
			timer.startTime = now
		}
	}
}

func (timer *Timer) setStateLocked(state State, now time.Time) {
	timer.state = state
	timer.display.SetPhaseStyle(state.Style())
	timer.emitLocked(Event{
		Type:       EventStateChange,
		State:      state,
		Repetition: timer.repetition,
		At:         now,
	})
}

func (timer *Timer) renderLocked(remaining time.Duration, now time.Time) {
	timer.display.SetText(FormatRemaining(remaining))
	timer.emitLocked(Event{
		Type:       EventProgress,
		State:      timer.state,
		Remaining:  remaining,
		Repetition: timer.repetition,
		At:         now,
	})
}

func (timer *Timer) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// FormatRemaining renders a remaining duration in seconds with one decimal.
func FormatRemaining(remaining time.Duration) string {
	return fmt.Sprintf("%.1f", remaining.Seconds())
}
