package tui

import (
	"fmt"
	"strings"
	"time"

	"intervaltimer/internal/core/interval"
	"intervaltimer/internal/core/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = 50 * time.Millisecond

// Controller is the part of the interval timer the terminal app drives.
type Controller interface {
	Start(durations model.Durations)
	Stop()
	State() interval.State
	SetPauseMessage(message string)
}

// --- Messages ---

// PresetsMsg delivers a loaded or reloaded preset list.
type PresetsMsg struct {
	Presets []model.Preset
	Err     error
}

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

const (
	fieldCountdown = iota
	fieldAlert
	fieldPause
	fieldMessage
	fieldTempo
	fieldRepetitions
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Countdown (sec)",
	"Alert (sec)",
	"Pause (sec)",
	"Pause message",
	"Tempo (bpm)",
	"Repetitions",
}

// --- Model ---
type Model struct {
	timer     Controller
	display   *Display
	theme     Theme
	settings  model.Settings
	inputs    []textinput.Model
	focus     int
	presets   []model.Preset
	preset    int
	status    string
	statusErr bool
	onStart   func(model.Settings)
}

// New builds the terminal model. onStart, if set, is called with the
// validated settings each time a run starts.
func New(timer Controller, display *Display, settings model.Settings, onStart func(model.Settings)) Model {
	form := settings.Form()
	values := [fieldCount]string{form.Countdown, form.Alert, form.Pause, form.PauseMessage, form.Tempo, form.Repetitions}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 32
		input.Width = 24
		input.SetValue(values[i])
		inputs[i] = input
	}
	inputs[fieldMessage].Placeholder = "next"
	inputs[fieldCountdown].Focus()

	return Model{
		timer:    timer,
		display:  display,
		theme:    DefaultTheme,
		settings: settings,
		inputs:   inputs,
		preset:   -1,
		onStart:  onStart,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, frameCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m, frameCmd()
	case PresetsMsg:
		m.setPresets(msg.Presets, msg.Err)
		return m, nil
	case tea.KeyMsg:
		running := m.running()
		switch msg.String() {
		case "ctrl+c":
			m.timer.Stop()
			return m, tea.Quit
		case "q":
			if running {
				m.timer.Stop()
				return m, tea.Quit
			}
		case "esc":
			if running {
				m.timer.Stop()
				m.setStatus("Stopped.")
				return m, m.focusInput(m.focus)
			}
			return m, nil
		case "enter":
			if !running {
				m.start()
			}
			return m, nil
		case "tab", "down":
			if !running {
				return m, m.focusInput((m.focus + 1) % fieldCount)
			}
			return m, nil
		case "shift+tab", "up":
			if !running {
				return m, m.focusInput((m.focus + fieldCount - 1) % fieldCount)
			}
			return m, nil
		case "ctrl+p":
			if !running {
				m.nextPreset()
			}
			return m, nil
		case "ctrl+t":
			if !running {
				m.derive()
			}
			return m, nil
		}
		if running {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Header.Render("Interval Timer"))
	b.WriteString("\n\n")

	style, text := m.display.Snapshot()
	block, caption := m.theme.Phase(style)
	b.WriteString(m.theme.Dim.Render(caption))
	b.WriteString("\n")
	b.WriteString(block.Render(text))
	b.WriteString("\n\n")

	b.WriteString(m.presetLine())
	b.WriteString("\n")
	running := m.running()
	for i, input := range m.inputs {
		label := m.theme.Label.Render(fieldLabels[i])
		if i == m.focus && !running {
			label = m.theme.Focused.Render(fieldLabels[i])
		}
		value := input.View()
		if running {
			value = m.theme.Dim.Render(input.Value())
		}
		b.WriteString(label + value + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(m.theme.Error.Render(m.status))
		} else {
			b.WriteString(m.theme.Status.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Dim.Render(m.helpLine(running)))

	return m.theme.Base.Render(b.String())
}

// Settings returns the last settings a run was started with.
func (m Model) Settings() model.Settings {
	return m.settings
}

func (m Model) running() bool {
	return m.timer.State() != interval.StateIdle
}

func (m *Model) start() {
	settings, err := m.form().Parse(m.settings)
	if err != nil {
		m.setError(err)
		return
	}
	m.settings = settings
	m.timer.SetPauseMessage(settings.PauseMessage)
	m.timer.Start(settings.Durations())
	m.inputs[m.focus].Blur()
	m.setStatus("")
	if m.onStart != nil {
		m.onStart(settings)
	}
}

func (m *Model) derive() {
	countdown, err := m.form().DeriveCountdown()
	if err != nil {
		m.setError(err)
		return
	}
	m.inputs[fieldCountdown].SetValue(countdown)
	m.setStatus(fmt.Sprintf("Countdown set to %s seconds.", countdown))
}

func (m *Model) nextPreset() {
	if len(m.presets) == 0 {
		m.setStatus("No presets.")
		return
	}
	m.preset = (m.preset + 1) % len(m.presets)
	m.applyPreset(m.presets[m.preset])
}

func (m *Model) applyPreset(preset model.Preset) {
	countdown, alert, pause := preset.FieldValues()
	m.inputs[fieldCountdown].SetValue(countdown)
	m.inputs[fieldAlert].SetValue(alert)
	m.inputs[fieldPause].SetValue(pause)
	m.setStatus("")
}

func (m *Model) setPresets(presets []model.Preset, err error) {
	m.presets = nil
	m.preset = -1
	if err != nil {
		m.setError(fmt.Errorf("presets unavailable: %w", err))
		return
	}
	m.presets = append(m.presets, presets...)
}

func (m *Model) focusInput(index int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = index
	return m.inputs[m.focus].Focus()
}

func (m Model) form() model.Form {
	return model.Form{
		Countdown:    m.inputs[fieldCountdown].Value(),
		Alert:        m.inputs[fieldAlert].Value(),
		Pause:        m.inputs[fieldPause].Value(),
		PauseMessage: m.inputs[fieldMessage].Value(),
		Tempo:        m.inputs[fieldTempo].Value(),
		Repetitions:  m.inputs[fieldRepetitions].Value(),
	}
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) presetLine() string {
	label := m.theme.Label.Render("Preset")
	switch {
	case len(m.presets) == 0:
		return label + m.theme.Dim.Render("No presets")
	case m.preset < 0:
		return label + m.theme.Dim.Render(fmt.Sprintf("%d available", len(m.presets)))
	default:
		return label + m.presets[m.preset].Name
	}
}

func (m Model) helpLine(running bool) string {
	if running {
		return "esc stop • q quit"
	}
	return "tab/shift+tab move • enter start • ctrl+p preset • ctrl+t derive • ctrl+c quit"
}
