package main

import (
	"context"
	"errors"
	"fmt"

	"intervaltimer/internal/core/interval"
	"intervaltimer/internal/core/model"
	"intervaltimer/internal/platform"
	"intervaltimer/internal/ui/controls"
	"intervaltimer/internal/ui/countdown"
	"intervaltimer/internal/ui/tray"
	"intervaltimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/google/logger"
	"github.com/spf13/cobra"
)

func runGUI(cmd *cobra.Command, args []string) error {
	closeLog, err := flagValues.initLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warningf("single instance: %v", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID(appID)
	icon := resources.MustIcon()
	fyneApp.SetIcon(icon)
	window := fyneApp.NewWindow(appTitle)

	view := countdown.New()
	timer := interval.New(settings.TimerConfig(), view, interval.Config{})
	defer timer.Close()

	panel := controls.New(settings, controls.Callbacks{
		OnStart: func(updated model.Settings) {
			timer.SetPauseMessage(updated.PauseMessage)
			timer.Start(updated.Durations())
			logger.Infof("started: countdown %vs, alert %vs, pause %vs", updated.Countdown, updated.Alert, updated.Pause)
			saveSettings(updated)
		},
		OnStop: func() {
			timer.Stop()
			logger.Info("stopped")
		},
		OnError: func(err error) {
			dialog.ShowError(err, window)
		},
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnStart: panel.Start,
			OnStop:  panel.Stop,
			OnQuit: func() {
				timer.Stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(icon)
		window.SetCloseIntercept(func() {
			window.Hide()
		})
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	events := timer.Subscribe(32)
	go forwardEvents(events, panel, trayManager)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feedPresets(ctx, settings.PresetsLocation, func(presets []model.Preset, err error) {
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(fmt.Errorf("presets unavailable: %w", err), window)
			}
			panel.SetPresets(presets)
		})
	})

	window.SetContent(container.NewBorder(nil, panel.Content(), nil, nil, view.Content()))
	window.Resize(fyne.NewSize(420, 640))
	window.ShowAndRun()
	return nil
}

// forwardEvents mirrors timer events into the controls and tray on the fyne
// goroutine. Progress events only reach the tray when its label changes.
func forwardEvents(events <-chan interval.Event, panel *controls.Panel, trayManager *tray.Manager) {
	lastStatus := ""
	for event := range events {
		status := tray.StatusLabel(event)
		if event.Type == interval.EventProgress && status == lastStatus {
			continue
		}
		lastStatus = status
		fyne.Do(func() {
			if event.Type == interval.EventStateChange {
				panel.SetRunning(event.State != interval.StateIdle)
			}
			if trayManager != nil {
				trayManager.Update(event)
			}
		})
	}
}
