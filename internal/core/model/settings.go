package model

// Settings defines the values behind the settings form.
type Settings struct {
	Countdown       float64
	Alert           float64
	Pause           float64
	PauseMessage    string
	PresetsLocation string
	Tempo           float64
	Repetitions     int
}

// DefaultSettings returns the form values shown on first launch.
func DefaultSettings() Settings {
	config := DefaultTimerConfig()
	return Settings{
		Countdown:    config.Countdown.Seconds(),
		Alert:        config.Alert.Seconds(),
		Pause:        config.Pause.Seconds(),
		PauseMessage: config.PauseMessage,
		Tempo:        100,
		Repetitions:  20,
	}
}

// Durations converts the form values to timer durations.
func (settings Settings) Durations() Durations {
	return Durations{
		Countdown: Seconds(settings.Countdown),
		Alert:     Seconds(settings.Alert),
		Pause:     Seconds(settings.Pause),
	}
}

// TimerConfig converts settings to a TimerConfig.
func (settings Settings) TimerConfig() TimerConfig {
	message := settings.PauseMessage
	if message == "" {
		message = DefaultTimerConfig().PauseMessage
	}
	return TimerConfig{
		Durations:    settings.Durations(),
		PauseMessage: message,
	}
}
