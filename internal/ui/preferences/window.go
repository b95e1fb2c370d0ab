package preferences

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	focusEntry    *widget.Entry
	breakEntry    *widget.Entry
	notifications *widget.Check
	sound         *widget.RadioGroup
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("NeonFocus Settings")

	focusEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()

	notifications := widget.NewCheck("Show desktop notifications", nil)
	sound := widget.NewRadioGroup([]string{SoundNone, SoundBell}, nil)
	sound.Horizontal = true

	form := container.NewVBox(
		widget.NewLabelWithStyle("Defaults", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus length"), focusEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break length"), breakEntry, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Signals", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		notifications,
		container.NewHBox(widget.NewLabel("Sound"), sound),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 280))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		focusEntry:    focusEntry,
		breakEntry:    breakEntry,
		notifications: notifications,
		sound:         sound,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.focusEntry.SetText(strconv.Itoa(settings.FocusMinutes))
	prefs.breakEntry.SetText(strconv.Itoa(settings.BreakMinutes))
	prefs.notifications.SetChecked(settings.Notifications)
	prefs.sound.SetSelected(settings.Sound)
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect reads the form; invalid entries keep their previous value.
func (prefs *Window) collect() Settings {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.focusEntry.Text); ok {
		settings.FocusMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.breakEntry.Text); ok {
		settings.BreakMinutes = minutes
	}
	settings.Notifications = prefs.notifications.Checked
	if ValidSound(prefs.sound.Selected) {
		settings.Sound = prefs.sound.Selected
	}
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
