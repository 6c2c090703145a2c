package controls

import (
	"errors"
	"testing"

	"intervaltimer/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	started []model.Settings
	stopped int
	errs    []error
}

func newPanel(t *testing.T) (*Panel, *recorder) {
	t.Helper()
	test.NewTempApp(t)
	rec := &recorder{}
	panel := New(model.DefaultSettings(), Callbacks{
		OnStart: func(settings model.Settings) { rec.started = append(rec.started, settings) },
		OnStop:  func() { rec.stopped++ },
		OnError: func(err error) { rec.errs = append(rec.errs, err) },
	})
	return panel, rec
}

func TestApplyPresetWritesLiterals(t *testing.T) {
	panel, _ := newPanel(t)
	panel.SetPresets([]model.Preset{
		{Name: "Plank", Countdown: 90, Alert: 15, Pause: 10},
		{Name: "Sprint", Countdown: 20.5, Alert: 3, Pause: 40},
	})

	if !panel.ApplyPreset("Plank") {
		t.Fatalf("ApplyPreset(Plank) = false")
	}
	got := []string{panel.countdown.Text, panel.alert.Text, panel.pause.Text}
	if diff := cmp.Diff([]string{"90", "15", "10"}, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	panel.presetSelect.SetSelected("Sprint")
	if panel.countdown.Text != "20.5" {
		t.Fatalf("countdown = %q after selecting Sprint", panel.countdown.Text)
	}

	if panel.ApplyPreset("Missing") {
		t.Fatalf("ApplyPreset(Missing) = true")
	}
}

func TestSetPresetsEmptyDisablesPicker(t *testing.T) {
	panel, _ := newPanel(t)
	panel.SetPresets(nil)
	if !panel.presetSelect.Disabled() {
		t.Fatalf("picker enabled without presets")
	}
	panel.SetPresets([]model.Preset{{Name: "Plank", Countdown: 90, Alert: 15, Pause: 10}})
	if panel.presetSelect.Disabled() {
		t.Fatalf("picker disabled with presets")
	}
}

func TestStartReadsEachFieldIndependently(t *testing.T) {
	panel, rec := newPanel(t)
	panel.countdown.SetText("30")
	panel.alert.SetText("4")
	panel.pause.SetText("12.5")
	panel.message.SetText(" switch ")

	test.Tap(panel.startButton)

	if len(rec.errs) != 0 {
		t.Fatalf("unexpected errors: %v", rec.errs)
	}
	if len(rec.started) != 1 {
		t.Fatalf("OnStart called %d times, want 1", len(rec.started))
	}
	got := rec.started[0]
	if got.Countdown != 30 || got.Alert != 4 || got.Pause != 12.5 || got.PauseMessage != "switch" {
		t.Fatalf("started with %+v", got)
	}
}

func TestStartRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		countdown string
		alert     string
		pause     string
	}{
		{"not a number", "abc", "3", "5"},
		{"alert beyond countdown", "10", "11", "5"},
		{"zero pause", "10", "3", "0"},
		{"infinite", "Inf", "3", "5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			panel, rec := newPanel(t)
			panel.countdown.SetText(tc.countdown)
			panel.alert.SetText(tc.alert)
			panel.pause.SetText(tc.pause)

			test.Tap(panel.startButton)

			if len(rec.started) != 0 {
				t.Fatalf("OnStart called with invalid input")
			}
			if len(rec.errs) != 1 {
				t.Fatalf("OnError called %d times, want 1", len(rec.errs))
			}
		})
	}
}

func TestStartReportsValidationSentinel(t *testing.T) {
	panel, rec := newPanel(t)
	panel.countdown.SetText("10")
	panel.alert.SetText("11")
	test.Tap(panel.startButton)
	if len(rec.errs) != 1 || !errors.Is(rec.errs[0], model.ErrInvalidDurations) {
		t.Fatalf("errors = %v, want ErrInvalidDurations", rec.errs)
	}
}

func TestDeriveCountdownFromTempo(t *testing.T) {
	panel, rec := newPanel(t)
	panel.tempo.SetText("100")
	panel.repetitions.SetText("20")

	test.Tap(panel.deriveButton)

	if len(rec.errs) != 0 {
		t.Fatalf("unexpected errors: %v", rec.errs)
	}
	if panel.countdown.Text != "96" {
		t.Fatalf("countdown = %q, want 96", panel.countdown.Text)
	}

	panel.tempo.SetText("0")
	test.Tap(panel.deriveButton)
	if len(rec.errs) != 1 {
		t.Fatalf("expected an error for zero tempo")
	}
}

func TestSetRunningLocksDurations(t *testing.T) {
	panel, rec := newPanel(t)
	panel.SetRunning(true)
	if !panel.countdown.Disabled() || !panel.startButton.Disabled() || panel.stopButton.Disabled() {
		t.Fatalf("running state did not lock the form")
	}

	test.Tap(panel.stopButton)
	if rec.stopped != 1 {
		t.Fatalf("OnStop called %d times, want 1", rec.stopped)
	}

	panel.SetRunning(false)
	if panel.countdown.Disabled() || panel.startButton.Disabled() || !panel.stopButton.Disabled() {
		t.Fatalf("idle state did not unlock the form")
	}
}
