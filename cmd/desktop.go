package main

import (
	"errors"
	"log/slog"
	"time"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"progresscountdown/internal/core/countdown"
	"progresscountdown/internal/core/model"
	"progresscountdown/internal/platform"
	"progresscountdown/internal/storage"
	"progresscountdown/internal/ui/animation"
	"progresscountdown/internal/ui/preferences"
	"progresscountdown/internal/ui/tray"
	"progresscountdown/internal/ui/window"
)

func runDesktop(rt runtime) error {
	logger := rt.logger
	lock, err := platform.AcquireInstanceLock(appID)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warn("another instance is already running")
			return nil
		}
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	settings := rt.settings
	timer := countdown.New(settings.DurationSeconds, countdown.Options{Clock: countdown.SystemClock{}})
	mainWindow := window.New(fyneApp, window.Config{Title: appName, Style: settings.Style()}, timer)

	var trayManager *tray.Manager
	syncTray := func(frame countdown.Frame) {
		if trayManager == nil {
			return
		}
		switch frame.State {
		case countdown.StateRunning, countdown.StatePaused:
			trayManager.SetRemaining(frame.Remaining)
		case countdown.StateFinished:
			trayManager.SetStatus("finished")
		default:
			trayManager.SetStatus("idle")
		}
		trayManager.SetActive(
			frame.State == countdown.StateRunning || frame.State == countdown.StatePaused,
			frame.State == countdown.StatePaused,
		)
	}

	loop := animation.New(animation.DefaultConfig(), nil, func() {
		frame := timer.Tick()
		mainWindow.RenderFrame(frame)
		syncTray(frame)
	})
	defer loop.Stop()
	timer.SetRedrawer(loop)

	logState := func(event string) func() {
		return func() {
			logger.Info("countdown "+event, "remaining", timer.Remaining(), "duration", timer.Duration())
		}
	}
	timer.SetListener(countdown.ListenerFuncs{
		Started:  logState("started"),
		Stopped:  logState("stopped"),
		Paused:   logState("paused"),
		Resumed:  logState("resumed"),
		Finished: logState("finished"),
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.DurationSeconds != settings.DurationSeconds {
			timer.SetDuration(updated.DurationSeconds)
		}
		mainWindow.SetStyle(updated.Style())
		settings = updated

		if err := rt.store.SaveSettings(updated); err != nil {
			logger.Error("save settings", "error", err)
			return
		}
		logger.Info("settings saved", "path", rt.store.SettingsPath())
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnStart:       timer.Start,
			OnTogglePause: func() {
				if timer.IsPaused() {
					timer.Resume()
					return
				}
				timer.Pause()
			},
			OnStop: timer.Stop,
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
	} else {
		logger.Debug("system tray unsupported on this platform")
	}

	fyneApp.Lifecycle().SetOnStopped(func() {
		saveSession(rt.store, timer, logger)
	})

	restored := settings.RestoreSession && restoreSession(rt.store, timer, logger)
	if !restored && settings.StartOnLaunch {
		timer.Start()
	}

	mainWindow.Show()
	fyneApp.Run()
	return nil
}

// restoreSession applies the snapshot saved on the previous exit and removes
// it. It reports whether a countdown was resumed.
func restoreSession(store *storage.Store, timer *countdown.Timer, logger *slog.Logger) bool {
	session, err := store.LoadSession()
	if err != nil {
		if !errors.Is(err, storage.ErrNoSession) {
			logger.Warn("load session", "error", err)
		}
		return false
	}
	if err := store.ClearSession(); err != nil {
		logger.Warn("clear session", "error", err)
	}

	restored := session.Apply(timer, time.Now())
	logger.Debug("session restored", "state", session.State, "resumed", restored, "remaining", timer.Remaining())
	return restored
}

func saveSession(store *storage.Store, timer *countdown.Timer, logger *slog.Logger) {
	session := storage.CaptureSession(timer, time.Now())
	if session.State != countdown.StateRunning && session.State != countdown.StatePaused {
		if err := store.ClearSession(); err != nil {
			logger.Warn("clear session", "error", err)
		}
		return
	}
	if err := store.SaveSession(session); err != nil {
		logger.Error("save session", "error", err)
		return
	}
	logger.Debug("session saved", "state", session.State, "remaining", session.RemainingSeconds)
}

func runPreviewWindow(style model.Style) {
	fyneApp := app.NewWithID(appID + ".preview")
	timer := countdown.New(style.DurationSeconds, countdown.Options{})
	previewWindow := window.New(fyneApp, window.Config{Title: appName + " preview", Style: style, Preview: true}, timer)
	previewWindow.SetOnClose(fyneApp.Quit)
	previewWindow.Show()
	fyneApp.Run()
}
