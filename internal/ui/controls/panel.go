package controls

import (
	"intervaltimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const noPresetsPlaceholder = "No presets"

// Callbacks defines control action handlers.
type Callbacks struct {
	OnStart func(model.Settings)
	OnStop  func()
	OnError func(error)
}

// Panel is the settings form that drives the timer.
type Panel struct {
	settings     model.Settings
	callbacks    Callbacks
	presets      []model.Preset
	countdown    *widget.Entry
	alert        *widget.Entry
	pause        *widget.Entry
	message      *widget.Entry
	tempo        *widget.Entry
	repetitions  *widget.Entry
	presetSelect *widget.Select
	startButton  *widget.Button
	stopButton   *widget.Button
	deriveButton *widget.Button
	content      fyne.CanvasObject
}

// New creates the controls panel populated from settings.
func New(settings model.Settings, callbacks Callbacks) *Panel {
	panel := &Panel{
		settings:    settings,
		callbacks:   callbacks,
		countdown:   widget.NewEntry(),
		alert:       widget.NewEntry(),
		pause:       widget.NewEntry(),
		message:     widget.NewEntry(),
		tempo:       widget.NewEntry(),
		repetitions: widget.NewEntry(),
	}
	panel.UpdateSettings(settings)

	panel.presetSelect = widget.NewSelect(nil, func(name string) {
		panel.ApplyPreset(name)
	})
	panel.presetSelect.PlaceHolder = noPresetsPlaceholder
	panel.presetSelect.Disable()

	panel.startButton = widget.NewButton("Start", panel.Start)
	panel.startButton.Importance = widget.HighImportance
	panel.stopButton = widget.NewButton("Stop", panel.Stop)
	panel.stopButton.Disable()
	panel.deriveButton = widget.NewButton("Derive countdown", panel.handleDerive)

	form := widget.NewForm(
		widget.NewFormItem("Preset", panel.presetSelect),
		widget.NewFormItem("Countdown (sec)", panel.countdown),
		widget.NewFormItem("Alert (sec)", panel.alert),
		widget.NewFormItem("Pause (sec)", panel.pause),
		widget.NewFormItem("Pause message", panel.message),
	)
	tempoForm := widget.NewForm(
		widget.NewFormItem("Tempo (bpm)", panel.tempo),
		widget.NewFormItem("Repetitions", panel.repetitions),
	)

	buttons := container.NewHBox(panel.startButton, layout.NewSpacer(), panel.stopButton)
	panel.content = container.NewVBox(
		form,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Tempo helper", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		tempoForm,
		panel.deriveButton,
		widget.NewSeparator(),
		buttons,
	)
	return panel
}

// Content returns the canvas object to place in a window.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// UpdateSettings replaces field values.
func (panel *Panel) UpdateSettings(settings model.Settings) {
	panel.settings = settings
	form := settings.Form()
	panel.countdown.SetText(form.Countdown)
	panel.alert.SetText(form.Alert)
	panel.pause.SetText(form.Pause)
	panel.message.SetText(form.PauseMessage)
	panel.tempo.SetText(form.Tempo)
	panel.repetitions.SetText(form.Repetitions)
}

// SetPresets replaces the preset list. An empty list disables the picker.
func (panel *Panel) SetPresets(presets []model.Preset) {
	panel.presets = append([]model.Preset(nil), presets...)
	names := make([]string, 0, len(presets))
	for _, preset := range presets {
		names = append(names, preset.Name)
	}
	panel.presetSelect.Options = names
	panel.presetSelect.ClearSelected()
	if len(names) == 0 {
		panel.presetSelect.PlaceHolder = noPresetsPlaceholder
		panel.presetSelect.Disable()
	} else {
		panel.presetSelect.PlaceHolder = "Choose a preset"
		panel.presetSelect.Enable()
	}
	panel.presetSelect.Refresh()
}

// ApplyPreset writes the named preset's values into the duration fields.
func (panel *Panel) ApplyPreset(name string) bool {
	for _, preset := range panel.presets {
		if preset.Name != name {
			continue
		}
		countdown, alert, pause := preset.FieldValues()
		panel.countdown.SetText(countdown)
		panel.alert.SetText(alert)
		panel.pause.SetText(pause)
		return true
	}
	return false
}

// SetRunning toggles which controls are usable. Durations may only change
// while the timer is idle.
func (panel *Panel) SetRunning(running bool) {
	for _, entry := range []*widget.Entry{panel.countdown, panel.alert, panel.pause, panel.message, panel.tempo, panel.repetitions} {
		if running {
			entry.Disable()
		} else {
			entry.Enable()
		}
	}
	if running {
		panel.startButton.Disable()
		panel.deriveButton.Disable()
		panel.presetSelect.Disable()
		panel.stopButton.Enable()
		return
	}
	panel.startButton.Enable()
	panel.deriveButton.Enable()
	panel.stopButton.Disable()
	if len(panel.presets) > 0 {
		panel.presetSelect.Enable()
	}
}

// Settings parses the form into settings, validating the durations.
func (panel *Panel) Settings() (model.Settings, error) {
	return panel.form().Parse(panel.settings)
}

func (panel *Panel) form() model.Form {
	return model.Form{
		Countdown:    panel.countdown.Text,
		Alert:        panel.alert.Text,
		Pause:        panel.pause.Text,
		PauseMessage: panel.message.Text,
		Tempo:        panel.tempo.Text,
		Repetitions:  panel.repetitions.Text,
	}
}

// Start validates the form and requests a run.
func (panel *Panel) Start() {
	settings, err := panel.Settings()
	if err != nil {
		panel.reportError(err)
		return
	}
	panel.settings = settings
	if panel.callbacks.OnStart != nil {
		panel.callbacks.OnStart(settings)
	}
}

// Stop requests the timer to stop.
func (panel *Panel) Stop() {
	if panel.callbacks.OnStop != nil {
		panel.callbacks.OnStop()
	}
}

func (panel *Panel) handleDerive() {
	countdown, err := panel.form().DeriveCountdown()
	if err != nil {
		panel.reportError(err)
		return
	}
	panel.countdown.SetText(countdown)
}

func (panel *Panel) reportError(err error) {
	if panel.callbacks.OnError != nil {
		panel.callbacks.OnError(err)
	}
}
