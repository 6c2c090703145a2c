package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"intervaltimer/internal/core/model"

	"github.com/google/go-cmp/cmp"
	"github.com/google/logger"
	"github.com/spf13/cobra"
)

func parseFlags(t *testing.T, args ...string) (*cobra.Command, *timerFlags) {
	t.Helper()
	values := &timerFlags{}
	cmd := &cobra.Command{Use: "intervaltimer"}
	values.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd, values
}

func TestApplyKeepsBaseWithoutFlags(t *testing.T) {
	cmd, values := parseFlags(t)
	base := model.DefaultSettings()
	base.Countdown = 45
	base.PresetsLocation = "/tmp/presets.yaml"

	got, err := values.apply(cmd, base)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff(base, got); diff != "" {
		t.Fatalf("settings changed without flags (-want +got):\n%s", diff)
	}
}

func TestApplyOverridesExplicitFlags(t *testing.T) {
	cmd, values := parseFlags(t, "--countdown", "30", "--alert", "4", "--pause", "12.5", "--message", "swap", "--presets", "https://example.com/p.yaml")

	got, err := values.apply(cmd, model.DefaultSettings())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := model.DefaultSettings()
	want.Countdown = 30
	want.Alert = 4
	want.Pause = 12.5
	want.PauseMessage = "swap"
	want.PresetsLocation = "https://example.com/p.yaml"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyDerivesCountdownFromTempo(t *testing.T) {
	cmd, values := parseFlags(t, "--tempo", "120", "--reps", "10")
	got, err := values.apply(cmd, model.DefaultSettings())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Countdown != 40 || got.Tempo != 120 || got.Repetitions != 10 {
		t.Fatalf("got countdown %v tempo %v reps %d", got.Countdown, got.Tempo, got.Repetitions)
	}

	cmd, values = parseFlags(t, "--tempo", "120", "--countdown", "50")
	got, err = values.apply(cmd, model.DefaultSettings())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Countdown != 50 {
		t.Fatalf("explicit countdown should win, got %v", got.Countdown)
	}
}

func TestApplyRejectsInvalidDurations(t *testing.T) {
	tests := [][]string{
		{"--countdown", "5", "--alert", "6"},
		{"--pause", "0"},
		{"--tempo", "0"},
	}
	for _, args := range tests {
		cmd, values := parseFlags(t, args...)
		base := model.DefaultSettings()
		got, err := values.apply(cmd, base)
		if err == nil {
			t.Fatalf("apply(%v) accepted invalid flags", args)
		}
		if diff := cmp.Diff(base, got); diff != "" {
			t.Fatalf("apply(%v) changed base on error (-want +got):\n%s", args, diff)
		}
	}

	cmd, values := parseFlags(t, "--countdown", "5", "--alert", "6")
	if _, err := values.apply(cmd, model.DefaultSettings()); !errors.Is(err, model.ErrInvalidDurations) {
		t.Fatalf("err = %v, want ErrInvalidDurations", err)
	}
}

func TestInitLoggingWritesToLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "timer.log")
	_, values := parseFlags(t, "--log-file", logPath)

	closeLog, err := values.initLogging(false)
	if err != nil {
		t.Fatalf("initLogging: %v", err)
	}
	logger.Info("hello from the test")
	closeLog()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file is empty")
	}
}

func TestInitLoggingRejectsBadPath(t *testing.T) {
	_, values := parseFlags(t, "--log-file", filepath.Join(t.TempDir(), "missing", "timer.log"))
	if _, err := values.initLogging(false); err == nil {
		t.Fatalf("initLogging accepted an unwritable path")
	}
}

func TestTuiCommandRegistered(t *testing.T) {
	found, _, err := rootCmd.Find([]string{"tui"})
	if err != nil || found != tuiCmd {
		t.Fatalf("Find(tui) = %v, %v", found, err)
	}
	if rootCmd.PersistentFlags().Lookup("presets") == nil {
		t.Fatalf("presets flag not registered on the root command")
	}
}
