package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	duration    *widget.Entry
	textColor   *widget.Entry
	foreground  *widget.Entry
	background  *widget.Entry
	textSize    *widget.Entry
	strokeWidth *widget.Entry
	startCheck  *widget.Check
	restore     *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Countdown Settings")

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		duration:    widget.NewEntry(),
		textColor:   widget.NewEntry(),
		foreground:  widget.NewEntry(),
		background:  widget.NewEntry(),
		textSize:    widget.NewEntry(),
		strokeWidth: widget.NewEntry(),
		startCheck:  widget.NewCheck("Start countdown on launch", nil),
		restore:     widget.NewCheck("Restore countdown from last session", nil),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Countdown", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Duration"), prefs.duration, widget.NewLabel("sec")),
		prefs.startCheck,
		prefs.restore,
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Text color"), prefs.textColor),
		container.NewHBox(widget.NewLabel("Progress color"), prefs.foreground),
		container.NewHBox(widget.NewLabel("Track color"), prefs.background),
		container.NewHBox(widget.NewLabel("Text size"), prefs.textSize),
		container.NewHBox(widget.NewLabel("Stroke width"), prefs.strokeWidth),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 420))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.duration.SetText(strconv.Itoa(settings.DurationSeconds))
	prefs.textColor.SetText(settings.TextColor)
	prefs.foreground.SetText(settings.ForegroundColor)
	prefs.background.SetText(settings.BackgroundColor)
	prefs.textSize.SetText(formatFloat(settings.TextSize))
	prefs.strokeWidth.SetText(formatFloat(settings.StrokeWidth))
	prefs.startCheck.SetChecked(settings.StartOnLaunch)
	prefs.restore.SetChecked(settings.RestoreSession)
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect reads the form. Unparsable fields keep their previous value.
func (prefs *Window) collect() Settings {
	settings := prefs.settings

	if seconds, err := strconv.Atoi(strings.TrimSpace(prefs.duration.Text)); err == nil && seconds >= 0 {
		settings.DurationSeconds = seconds
	}
	if _, ok := ParseColor(prefs.textColor.Text); ok {
		settings.TextColor = strings.TrimSpace(prefs.textColor.Text)
	}
	if _, ok := ParseColor(prefs.foreground.Text); ok {
		settings.ForegroundColor = strings.TrimSpace(prefs.foreground.Text)
	}
	if _, ok := ParseColor(prefs.background.Text); ok {
		settings.BackgroundColor = strings.TrimSpace(prefs.background.Text)
	}
	if size, ok := parsePositiveFloat(prefs.textSize.Text); ok {
		settings.TextSize = size
	}
	if width, ok := parsePositiveFloat(prefs.strokeWidth.Text); ok {
		settings.StrokeWidth = width
	}
	settings.StartOnLaunch = prefs.startCheck.Checked
	settings.RestoreSession = prefs.restore.Checked
	return settings
}

func parsePositiveFloat(value string) (float32, bool) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return float32(parsed), true
}

func formatFloat(value float32) string {
	return fmt.Sprintf("%g", value)
}
