package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(PhaseStyle.Render(m.snapshot.Phase.Title()))
	b.WriteString("\n\n")
	b.WriteString(ClockStyle.Render(m.snapshot.Clock()))
	b.WriteString("  ")
	b.WriteString(StatusStyle.Render(string(m.snapshot.Status())))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.snapshot.Progress()))
	b.WriteString("\n\n")
	b.WriteString(m.renderDots())
	b.WriteString("  ")
	b.WriteString(StatusStyle.Render(fmt.Sprintf("completed %d", m.snapshot.CompletedFocus)))
	b.WriteString("\n")
	b.WriteString(StatusStyle.Render(fmt.Sprintf("focus %dm · break %dm · next: %s",
		m.snapshot.Config.FocusMinutes, m.snapshot.Config.BreakMinutes, m.snapshot.StartLabel())))

	if m.banner != "" {
		b.WriteString("\n\n")
		b.WriteString(BannerStyle.Render(m.banner))
	}

	b.WriteString("\n")
	b.WriteString(SectionStyle.Render(fmt.Sprintf("Tasks (%d open)", m.tasks.Pending())))
	b.WriteString("\n")
	b.WriteString(m.renderTasks())

	if m.adding {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(BannerStyle.Render(m.errText))
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.renderHelp()))

	frame := FrameStyle
	if m.snapshot.Running {
		frame = ActiveFrameStyle
	}
	return frame.Render(b.String()) + "\n"
}

func (m Model) renderDots() string {
	dots := make([]string, 0, len(m.snapshot.Dots()))
	for _, lit := range m.snapshot.Dots() {
		if lit {
			dots = append(dots, DotOnStyle.Render("●"))
		} else {
			dots = append(dots, DotOffStyle.Render("○"))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(dots, " "))
}

func (m Model) renderTasks() string {
	items := m.tasks.Items()
	if len(items) == 0 {
		return StatusStyle.Render("  no tasks yet, press a to add one")
	}

	lines := make([]string, 0, len(items))
	for i, task := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = CursorStyle.Render("> ")
		}
		box := "[ ]"
		style := TaskStyle
		if task.Done {
			box = "[✓]"
			style = TaskDoneStyle
		}
		lines = append(lines, cursor+box+" "+style.Render(task.Text))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.HelpBindings()))
	for _, binding := range m.keys.HelpBindings() {
		help := binding.Help()
		if help.Key == "" {
			continue
		}
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " · ")
}
