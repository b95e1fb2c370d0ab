// Package gui wires the session controller to the fyne window, tray and notifications.
package gui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"neonfocus/internal/core/session"
	"neonfocus/internal/notify"
	"neonfocus/internal/platform"
	"neonfocus/internal/storage"
	"neonfocus/internal/tasks"
	"neonfocus/internal/ui/animation"
	"neonfocus/internal/ui/preferences"
	"neonfocus/internal/ui/timerwindow"
	"neonfocus/internal/ui/tray"
	"neonfocus/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// Options configures the desktop app.
type Options struct {
	AppName    string
	AppID      string
	ConfigPath string
	Settings   preferences.Settings
}

// Run opens the timer window and blocks until the app quits.
func Run(options Options) error {
	guard, err := platform.AcquireSingleInstance(options.AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(options.AppID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	settings := options.Settings
	controller := session.New(settings.TimerConfig(), session.NewIntervalTicker(0))
	defer controller.Close()

	gate := notify.NewGate(notify.NewDesktop(fyneApp), settings.Notifications)
	list := tasks.NewList(settings.Tasks...)

	var prefsWindow *preferences.Window
	timerWindow := timerwindow.New(fyneApp, list, preferences.FocusPresets, preferences.BreakPresets, timerwindow.Callbacks{
		OnStart:        controller.Start,
		OnPause:        controller.Pause,
		OnReset:        controller.Reset,
		OnFocusMinutes: controller.SetFocusMinutes,
		OnBreakMinutes: controller.SetBreakMinutes,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})

	controller.SetNotifier(notify.Multi{
		gate,
		notify.Func(func(_, body string) {
			timerWindow.ShowBanner(body)
		}),
	})

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		updated.Tasks = settings.Tasks
		settings = updated
		gate.SetAllowed(settings.Notifications)
		path, err := storage.SaveSettings(options.AppName, options.ConfigPath, settings)
		if err != nil {
			log.Printf("save settings: %v", err)
			return
		}
		log.Printf("settings saved to %s", path)
	})

	glow := animation.New(animation.DefaultConfig(), timerWindow.SetGlow)
	timerWindow.SetGlow(glow.Rest())

	activeIcon := resources.MustIcon(resources.IconActive)
	pausedIcon := resources.MustIcon(resources.IconPaused)

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        timerWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnToggleRun: func() {
				if controller.Snapshot().Running {
					controller.Pause()
				} else {
					controller.Start()
				}
			},
			OnReset: controller.Reset,
			OnQuit:  fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(pausedIcon)
		// Closing the window keeps the timer alive in the tray.
		timerWindow.Window().SetCloseIntercept(timerWindow.Window().Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
		timerWindow.Window().SetMaster()
	}

	events := controller.Subscribe(16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		wasRunning := false
		for event := range events {
			snapshot := event.Snapshot
			timerWindow.Update(snapshot)

			if snapshot.Running != wasRunning {
				wasRunning = snapshot.Running
				if snapshot.Running {
					glow.StartPulse(ctx)
				} else {
					glow.Stop()
					timerWindow.SetGlow(glow.Rest())
				}
				if hasTray {
					icon := pausedIcon
					if snapshot.Running {
						icon = activeIcon
					}
					fyne.Do(func() {
						desktopApp.SetSystemTrayIcon(icon)
						trayManager.SetRunning(snapshot.Running)
					})
				}
			}
			if hasTray && event.Type != session.EventConfig {
				status := snapshot.Phase.Title() + " " + snapshot.Clock()
				fyne.Do(func() {
					trayManager.SetStatus(status)
				})
			}
			if event.Type == session.EventPhaseChange {
				log.Printf("%s finished; next: %s (%d completed)", event.Completed.Title(), snapshot.Phase.Title(), snapshot.CompletedFocus)
			}
		}
	}()

	guard.Serve(func() {
		fyne.Do(timerWindow.Show)
	})

	timerWindow.Update(controller.Snapshot())
	timerWindow.Show()
	fyneApp.Run()
	glow.Stop()
	return nil
}
