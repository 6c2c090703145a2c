package tray

import (
	"fmt"
	"time"

	"intervaltimer/internal/core/interval"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Interval Timer"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnStop  func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	stopItem   *fyne.MenuItem
	callbacks  Callbacks
	running    bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem(StatusLabel(interval.Event{State: interval.StateIdle}), nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})
	manager.stopItem = fyne.NewMenuItem("Stop", func() {
		if manager.callbacks.OnStop != nil {
			manager.callbacks.OnStop()
		}
	})
	manager.stopItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// Update reflects a timer event in the tray menu.
func (manager *Manager) Update(event interval.Event) {
	manager.statusItem.Label = StatusLabel(event)
	manager.running = event.State != interval.StateIdle
	manager.startItem.Disabled = manager.running
	manager.stopItem.Disabled = !manager.running
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show window", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.startItem,
		manager.stopItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

// Running reports whether the last update came from an active timer.
func (manager *Manager) Running() bool {
	return manager.running
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// StatusLabel describes a timer event for the tray status line.
func StatusLabel(event interval.Event) string {
	switch event.State {
	case interval.StateRunning, interval.StateAlerting:
		if event.Type == interval.EventProgress {
			return fmt.Sprintf("Status: set %d, %s left", event.Repetition, formatRemaining(event.Remaining))
		}
		return fmt.Sprintf("Status: set %d, %s", event.Repetition, event.State)
	case interval.StatePaused:
		return fmt.Sprintf("Status: resting after set %d", event.Repetition)
	default:
		return "Status: idle"
	}
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
