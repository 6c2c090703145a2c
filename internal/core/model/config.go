package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidDurations indicates durations that cannot drive a timer run.
var ErrInvalidDurations = errors.New("invalid durations")

// DefaultBeatsPerRepetition is the number of beats in one exercise repetition.
const DefaultBeatsPerRepetition = 8

// Durations are the parameters of a single timer run.
type Durations struct {
	Countdown time.Duration
	Alert     time.Duration
	Pause     time.Duration
}

// Validate reports whether the durations describe a reachable cycle.
func (durations Durations) Validate() error {
	switch {
	case durations.Countdown <= 0:
		return fmt.Errorf("%w: countdown must be positive", ErrInvalidDurations)
	case durations.Pause <= 0:
		return fmt.Errorf("%w: pause must be positive", ErrInvalidDurations)
	case durations.Alert < 0:
		return fmt.Errorf("%w: alert must not be negative", ErrInvalidDurations)
	case durations.Alert > durations.Countdown:
		return fmt.Errorf("%w: alert exceeds countdown", ErrInvalidDurations)
	}
	return nil
}

// TimerConfig contains construction options for the interval timer.
type TimerConfig struct {
	Durations
	PauseMessage string
}

// DefaultTimerConfig returns the durations used before the user picks any.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Durations: Durations{
			Countdown: 120 * time.Second,
			Alert:     10 * time.Second,
			Pause:     5 * time.Second,
		},
		PauseMessage: "next",
	}
}

// Seconds converts fractional seconds to a duration.
func Seconds(value float64) time.Duration {
	return time.Duration(math.Round(value * float64(time.Second)))
}

// FormatSeconds renders seconds the way a user typed them: 90, 7.5.
func FormatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// CountdownFromTempo derives a countdown length in whole seconds from a
// metronome tempo (beats per minute).
func CountdownFromTempo(tempo, beatsPerRepetition float64, repetitions int) float64 {
	if tempo <= 0 || beatsPerRepetition <= 0 || repetitions <= 0 {
		return 0
	}
	return math.Round(60 / tempo * beatsPerRepetition * float64(repetitions))
}
