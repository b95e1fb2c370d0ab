package timerwindow

import (
	"fmt"
	"image/color"
	"strconv"

	"neonfocus/internal/core/session"
	"neonfocus/internal/tasks"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	neonCyan   = color.NRGBA{R: 0, G: 245, B: 212, A: 255}
	neonPink   = color.NRGBA{R: 241, G: 91, B: 181, A: 255}
	dimDot     = color.NRGBA{R: 74, G: 78, B: 105, A: 255}
	background = color.NRGBA{R: 16, G: 17, B: 32, A: 255}
)

const dotSize = 14

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnStart        func()
	OnPause        func()
	OnReset        func()
	OnFocusMinutes func(minutes int)
	OnBreakMinutes func(minutes int)
	OnPreferences  func()
}

// Window is the main timer window.
type Window struct {
	window     fyne.Window
	callbacks  Callbacks
	tasks      *tasks.List
	glow       *canvas.Rectangle
	phaseLabel *canvas.Text
	clockLabel *canvas.Text
	progress   *widget.ProgressBar
	dots       []*canvas.Circle
	completed  *widget.Label
	banner     *widget.Label
	startBtn   *widget.Button
	pauseBtn   *widget.Button
	resetBtn   *widget.Button
	focusGroup *widget.RadioGroup
	breakGroup *widget.RadioGroup
	taskEntry  *widget.Entry
	taskBox    *fyne.Container
	syncing    bool
}

// New creates the timer window. focusPresets and breakPresets are offered as quick choices.
func New(app fyne.App, list *tasks.List, focusPresets, breakPresets []int, callbacks Callbacks) *Window {
	window := app.NewWindow("NeonFocus")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timer := &Window{
		window:    window,
		callbacks: callbacks,
		tasks:     list,
	}

	timer.glow = canvas.NewRectangle(color.Transparent)
	timer.glow.StrokeColor = neonCyan
	timer.glow.StrokeWidth = 3
	timer.glow.CornerRadius = 12

	timer.phaseLabel = canvas.NewText("Focus Session", neonPink)
	timer.phaseLabel.Alignment = fyne.TextAlignCenter
	timer.phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	timer.phaseLabel.TextSize = 18

	timer.clockLabel = canvas.NewText("--:--", neonCyan)
	timer.clockLabel.Alignment = fyne.TextAlignCenter
	timer.clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timer.clockLabel.TextSize = 56

	timer.progress = widget.NewProgressBar()

	dotObjects := make([]fyne.CanvasObject, 0, 4)
	for i := 0; i < 4; i++ {
		dot := canvas.NewCircle(dimDot)
		timer.dots = append(timer.dots, dot)
		dotObjects = append(dotObjects, dot)
	}
	dotRow := container.NewCenter(container.NewGridWrap(fyne.NewSize(dotSize, dotSize), dotObjects...))

	timer.completed = widget.NewLabel("Completed sessions: 0")
	timer.completed.Alignment = fyne.TextAlignCenter
	timer.banner = widget.NewLabel("")
	timer.banner.Alignment = fyne.TextAlignCenter

	timer.startBtn = widget.NewButtonWithIcon("Start Focus", theme.MediaPlayIcon(), timer.handleStart)
	timer.startBtn.Importance = widget.HighImportance
	timer.pauseBtn = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), timer.handlePause)
	timer.pauseBtn.Hide()
	timer.resetBtn = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), timer.handleReset)

	timer.focusGroup = widget.NewRadioGroup(presetLabels(focusPresets), timer.handleFocusPreset)
	timer.focusGroup.Horizontal = true
	timer.breakGroup = widget.NewRadioGroup(presetLabels(breakPresets), timer.handleBreakPreset)
	timer.breakGroup.Horizontal = true

	timer.taskEntry = widget.NewEntry()
	timer.taskEntry.SetPlaceHolder("Add a task...")
	timer.taskEntry.OnSubmitted = func(string) { timer.addTask() }
	addButton := widget.NewButtonWithIcon("", theme.ContentAddIcon(), timer.addTask)
	timer.taskBox = container.NewVBox()

	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if timer.callbacks.OnPreferences != nil {
			timer.callbacks.OnPreferences()
		}
	})

	controls := container.NewHBox(layout.NewSpacer(), timer.startBtn, timer.pauseBtn, timer.resetBtn, layout.NewSpacer())
	durations := container.NewVBox(
		container.NewHBox(widget.NewLabel("Focus"), timer.focusGroup),
		container.NewHBox(widget.NewLabel("Break"), timer.breakGroup),
	)
	taskSection := container.NewBorder(
		widget.NewLabelWithStyle("Tasks", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVBox(container.NewBorder(nil, nil, nil, addButton, timer.taskEntry), timer.taskBox),
	)

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsButton, timer.phaseLabel),
		timer.clockLabel,
		timer.progress,
		dotRow,
		timer.completed,
		controls,
		timer.banner,
		widget.NewSeparator(),
		durations,
		widget.NewSeparator(),
		taskSection,
	)

	root := container.NewStack(
		canvas.NewRectangle(background),
		timer.glow,
		container.NewPadded(container.NewVScroll(content)),
	)
	window.SetContent(root)
	window.Resize(fyne.NewSize(420, 640))

	timer.renderTasks()
	return timer
}

// Window returns the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// Update renders a controller snapshot from any goroutine.
func (timer *Window) Update(snapshot session.Snapshot) {
	fyne.Do(func() {
		timer.render(snapshot)
	})
}

// ShowBanner displays a completion message under the controls.
func (timer *Window) ShowBanner(message string) {
	fyne.Do(func() {
		timer.banner.SetText(message)
	})
}

// SetGlow sets the border glow intensity in [0,1] from any goroutine.
func (timer *Window) SetGlow(intensity float64) {
	fyne.Do(func() {
		timer.setGlow(intensity)
	})
}

func (timer *Window) render(snapshot session.Snapshot) {
	timer.phaseLabel.Text = snapshot.Phase.Title()
	timer.phaseLabel.Refresh()
	timer.clockLabel.Text = snapshot.Clock()
	timer.clockLabel.Refresh()
	timer.progress.SetValue(snapshot.Progress())

	for i, lit := range snapshot.Dots() {
		if i >= len(timer.dots) {
			break
		}
		fill := dimDot
		if lit {
			fill = neonCyan
		}
		timer.dots[i].FillColor = fill
		timer.dots[i].Refresh()
	}

	timer.completed.SetText(fmt.Sprintf("Completed sessions: %d", snapshot.CompletedFocus))

	if snapshot.Running {
		timer.startBtn.Hide()
		timer.pauseBtn.Show()
	} else {
		timer.startBtn.SetText(snapshot.StartLabel())
		timer.startBtn.Show()
		timer.pauseBtn.Hide()
	}

	timer.syncing = true
	timer.focusGroup.SetSelected(presetSelection(timer.focusGroup, snapshot.Config.FocusMinutes))
	timer.breakGroup.SetSelected(presetSelection(timer.breakGroup, snapshot.Config.BreakMinutes))
	timer.syncing = false
}

func (timer *Window) setGlow(intensity float64) {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	glow := neonCyan
	glow.A = uint8(intensity * 255)
	timer.glow.StrokeColor = glow
	timer.glow.Refresh()
}

func (timer *Window) handleStart() {
	timer.banner.SetText("")
	if timer.callbacks.OnStart != nil {
		timer.callbacks.OnStart()
	}
}

func (timer *Window) handlePause() {
	if timer.callbacks.OnPause != nil {
		timer.callbacks.OnPause()
	}
}

func (timer *Window) handleReset() {
	if timer.callbacks.OnReset != nil {
		timer.callbacks.OnReset()
	}
}

func (timer *Window) handleFocusPreset(selected string) {
	if timer.syncing || timer.callbacks.OnFocusMinutes == nil {
		return
	}
	if minutes, err := strconv.Atoi(selected); err == nil {
		timer.callbacks.OnFocusMinutes(minutes)
	}
}

func (timer *Window) handleBreakPreset(selected string) {
	if timer.syncing || timer.callbacks.OnBreakMinutes == nil {
		return
	}
	if minutes, err := strconv.Atoi(selected); err == nil {
		timer.callbacks.OnBreakMinutes(minutes)
	}
}

func (timer *Window) addTask() {
	if timer.tasks == nil {
		return
	}
	if _, err := timer.tasks.Add(timer.taskEntry.Text); err != nil {
		return
	}
	timer.taskEntry.SetText("")
	timer.renderTasks()
}

func (timer *Window) renderTasks() {
	timer.taskBox.RemoveAll()
	if timer.tasks == nil {
		return
	}
	for _, task := range timer.tasks.Items() {
		id := task.ID
		check := widget.NewCheck(task.Text, nil)
		check.SetChecked(task.Done)
		check.OnChanged = func(bool) {
			if _, err := timer.tasks.Toggle(id); err == nil {
				timer.renderTasks()
			}
		}
		remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			if err := timer.tasks.Remove(id); err == nil {
				timer.renderTasks()
			}
		})
		remove.Importance = widget.LowImportance
		timer.taskBox.Add(container.NewBorder(nil, nil, nil, remove, check))
	}
	timer.taskBox.Refresh()
}

func presetLabels(presets []int) []string {
	labels := make([]string, 0, len(presets))
	for _, minutes := range presets {
		labels = append(labels, strconv.Itoa(minutes))
	}
	return labels
}

// presetSelection returns the option matching minutes, or "" when it is not a preset.
func presetSelection(group *widget.RadioGroup, minutes int) string {
	label := strconv.Itoa(minutes)
	for _, option := range group.Options {
		if option == label {
			return label
		}
	}
	return ""
}
