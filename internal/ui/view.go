package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"todoline/internal/list"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Width(screenColumns).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(screenColumns - 2).
			Padding(0, 0, 0, 1).
			Bold(true)

	activeBoxStyle = boxStyle.Foreground(lipgloss.Color("3"))

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	helpStyle = lipgloss.NewStyle().Faint(true)
)

// View lays out the header line, the input box, one box per task in list
// order, and the help line in the filler region.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.cfg.UI.Title))
	b.WriteString("\n")
	b.WriteString(m.renderInputBox())
	b.WriteString("\n")
	for _, t := range m.list.Tasks() {
		b.WriteString(m.renderTaskBox(t))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderInputBox() string {
	style := boxStyle
	if m.list.Mode() == list.ModeInput {
		style = activeBoxStyle
	}
	return style.Render(m.inputLine())
}

// inputLine shows the buffer, with a reverse-video cell at the cursor
// offset while the input box has focus.
func (m Model) inputLine() string {
	runes := []rune(m.list.Input())
	if m.list.Mode() != list.ModeInput {
		return string(runes)
	}
	cur := m.list.Cursor()
	if cur >= len(runes) {
		return string(runes) + cursorStyle.Render(" ")
	}
	return string(runes[:cur]) + cursorStyle.Render(string(runes[cur])) + string(runes[cur+1:])
}

// renderTaskBox draws one 3-row task box: checkbox glyph, the text padded
// to the fixed field width, and the trailing delete glyph. The task under
// edit is highlighted and carries the cell cursor at the end of its text.
func (m Model) renderTaskBox(t list.Task) string {
	checkbox := "[  ]"
	if t.Done {
		checkbox = "[./]"
	}

	text := runewidth.Truncate(t.Text, textWidth, "…")
	pad := textWidth - runewidth.StringWidth(text)

	var field string
	if t.Editing && pad > 0 {
		field = text + cursorStyle.Render(" ") + strings.Repeat(" ", pad-1)
	} else {
		field = text + strings.Repeat(" ", pad)
	}

	line := checkbox + " " + field + "[x]"
	style := boxStyle
	if t.Editing {
		style = activeBoxStyle
	}
	return style.Render(line)
}

func (m Model) renderHelp() string {
	parts := []string{
		m.keys.Submit.Help().Key + " " + m.keys.Submit.Help().Desc,
		m.keys.Cancel.Help().Key + " " + m.keys.Cancel.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
		"click text to edit",
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
