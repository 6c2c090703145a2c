package main

import (
	"fmt"
	"io"
	"os"

	"intervaltimer/internal/core/model"

	"github.com/google/logger"
	"github.com/spf13/cobra"
)

type timerFlags struct {
	countdown   float64
	alert       float64
	pause       float64
	message     string
	presets     string
	tempo       float64
	repetitions int
	verbose     bool
	logFile     string
}

func (values *timerFlags) register(cmd *cobra.Command) {
	defaults := model.DefaultSettings()
	flags := cmd.PersistentFlags()
	flags.Float64Var(&values.countdown, "countdown", defaults.Countdown, "countdown length in seconds")
	flags.Float64Var(&values.alert, "alert", defaults.Alert, "remaining seconds at which the alert look starts")
	flags.Float64Var(&values.pause, "pause", defaults.Pause, "pause length in seconds")
	flags.StringVar(&values.message, "message", defaults.PauseMessage, "text shown during the pause")
	flags.StringVar(&values.presets, "presets", "", "presets document: a local YAML, JSON or TOML file or an http(s) URL")
	flags.Float64Var(&values.tempo, "tempo", defaults.Tempo, "metronome tempo in beats per minute, used to derive the countdown")
	flags.IntVar(&values.repetitions, "reps", defaults.Repetitions, "repetitions per set, used to derive the countdown")
	flags.BoolVarP(&values.verbose, "verbose", "v", false, "log to the console")
	flags.StringVar(&values.logFile, "log-file", "", "append logs to this file")
}

// apply layers explicitly set flags over base. Tempo or repetitions without
// an explicit countdown derive the countdown.
func (values *timerFlags) apply(cmd *cobra.Command, base model.Settings) (model.Settings, error) {
	flags := cmd.Flags()
	settings := base

	if flags.Changed("tempo") {
		settings.Tempo = values.tempo
	}
	if flags.Changed("reps") {
		settings.Repetitions = values.repetitions
	}
	switch {
	case flags.Changed("countdown"):
		settings.Countdown = values.countdown
	case flags.Changed("tempo") || flags.Changed("reps"):
		derived := model.CountdownFromTempo(settings.Tempo, model.DefaultBeatsPerRepetition, settings.Repetitions)
		if derived <= 0 {
			return base, fmt.Errorf("derive countdown: tempo %v and reps %d must be positive", settings.Tempo, settings.Repetitions)
		}
		settings.Countdown = derived
	}
	if flags.Changed("alert") {
		settings.Alert = values.alert
	}
	if flags.Changed("pause") {
		settings.Pause = values.pause
	}
	if flags.Changed("message") {
		settings.PauseMessage = values.message
	}
	if flags.Changed("presets") {
		settings.PresetsLocation = values.presets
	}

	if err := settings.Durations().Validate(); err != nil {
		return base, fmt.Errorf("check flags: %w", err)
	}
	return settings, nil
}

// initLogging sets up the default google/logger logger. Console output is
// only used when console is true and --verbose is set; the terminal UI owns
// the console so it passes false.
func (values *timerFlags) initLogging(console bool) (func(), error) {
	var (
		out  io.Writer = io.Discard
		file *os.File
	)
	if values.logFile != "" {
		var err error
		file, err = os.OpenFile(values.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
	}

	defaultLogger := logger.Init(appName, console && values.verbose, false, out)
	return func() {
		defaultLogger.Close()
		if file != nil {
			_ = file.Close()
		}
	}, nil
}
