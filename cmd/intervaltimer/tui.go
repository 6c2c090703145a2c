package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"intervaltimer/internal/core/interval"
	"intervaltimer/internal/core/model"
	"intervaltimer/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the terminal UI needs an interactive terminal")

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the timer in the terminal",
	Long: `Run the interval timer as a full screen terminal app.

Keys: tab/shift+tab move between fields, enter starts, esc stops,
ctrl+p cycles presets, ctrl+t derives the countdown from tempo and
repetitions, ctrl+c quits (q also quits while the timer runs).`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	closeLog, err := flagValues.initLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	display := tui.NewDisplay()
	timer := interval.New(settings.TimerConfig(), display, interval.Config{})
	defer timer.Close()

	program := tea.NewProgram(tui.New(timer, display, settings, saveSettings), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feedPresets(ctx, settings.PresetsLocation, func(presets []model.Preset, err error) {
		program.Send(tui.PresetsMsg{Presets: presets, Err: err})
	})

	logger.Info("terminal ui started")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
