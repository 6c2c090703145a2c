package model

// Preset is a named set of durations offered as a one-click shortcut.
// Values are seconds exactly as written in the presets document.
type Preset struct {
	Name      string
	Countdown float64
	Alert     float64
	Pause     float64
}

// Durations converts the preset to timer durations.
func (preset Preset) Durations() Durations {
	return Durations{
		Countdown: Seconds(preset.Countdown),
		Alert:     Seconds(preset.Alert),
		Pause:     Seconds(preset.Pause),
	}
}

// FieldValues returns the text the settings form should show for the
// countdown, alert and pause fields.
func (preset Preset) FieldValues() (countdown, alert, pause string) {
	return FormatSeconds(preset.Countdown), FormatSeconds(preset.Alert), FormatSeconds(preset.Pause)
}

// Valid reports whether the preset can be offered to the user.
func (preset Preset) Valid() bool {
	return preset.Name != "" && preset.Countdown > 0 && preset.Pause > 0 && preset.Alert >= 0
}
