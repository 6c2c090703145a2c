package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Form holds the raw text of the settings fields as a user edits them.
type Form struct {
	Countdown    string
	Alert        string
	Pause        string
	PauseMessage string
	Tempo        string
	Repetitions  string
}

// Form renders settings into editable field text.
func (settings Settings) Form() Form {
	return Form{
		Countdown:    FormatSeconds(settings.Countdown),
		Alert:        FormatSeconds(settings.Alert),
		Pause:        FormatSeconds(settings.Pause),
		PauseMessage: settings.PauseMessage,
		Tempo:        FormatSeconds(settings.Tempo),
		Repetitions:  strconv.Itoa(settings.Repetitions),
	}
}

// Parse reads each field independently on top of base and validates the
// durations. Base is returned unchanged alongside any error. Tempo and
// repetitions are advisory: unparsable values keep the base values.
func (form Form) Parse(base Settings) (Settings, error) {
	settings := base

	var errs []error
	var err error
	if settings.Countdown, err = ParseSeconds(form.Countdown); err != nil {
		errs = append(errs, fmt.Errorf("countdown: %w", err))
	}
	if settings.Alert, err = ParseSeconds(form.Alert); err != nil {
		errs = append(errs, fmt.Errorf("alert: %w", err))
	}
	if settings.Pause, err = ParseSeconds(form.Pause); err != nil {
		errs = append(errs, fmt.Errorf("pause: %w", err))
	}
	if len(errs) > 0 {
		return base, errors.Join(errs...)
	}
	if err := settings.Durations().Validate(); err != nil {
		return base, err
	}

	settings.PauseMessage = strings.TrimSpace(form.PauseMessage)
	if tempo, err := ParseSeconds(form.Tempo); err == nil && tempo > 0 {
		settings.Tempo = tempo
	}
	if repetitions, err := strconv.Atoi(strings.TrimSpace(form.Repetitions)); err == nil && repetitions > 0 {
		settings.Repetitions = repetitions
	}
	return settings, nil
}

// DeriveCountdown computes the countdown field text from the tempo helper
// fields.
func (form Form) DeriveCountdown() (string, error) {
	tempo, err := ParseSeconds(form.Tempo)
	if err != nil {
		return "", fmt.Errorf("tempo: %w", err)
	}
	repetitions, err := strconv.Atoi(strings.TrimSpace(form.Repetitions))
	if err != nil {
		return "", fmt.Errorf("repetitions: %q is not a whole number", form.Repetitions)
	}
	countdown := CountdownFromTempo(tempo, DefaultBeatsPerRepetition, repetitions)
	if countdown <= 0 {
		return "", errors.New("tempo and repetitions must be positive")
	}
	return FormatSeconds(countdown), nil
}

// ParseSeconds parses a finite number of seconds.
func ParseSeconds(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", value)
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("%q is not a finite number", value)
	}
	return parsed, nil
}
