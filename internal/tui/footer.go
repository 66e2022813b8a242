package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the bottom bar: run status and key hints.
type FooterModel struct {
	width   int
	paused  bool
	done    bool
	errored bool
}

// NewFooterModel creates a new footer.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
}

// SetPaused toggles the paused indicator.
func (f *FooterModel) SetPaused(paused bool) {
	f.paused = paused
}

// SetDone toggles the done indicator.
func (f *FooterModel) SetDone(done bool) {
	f.done = done
}

// SetError toggles the error indicator.
func (f *FooterModel) SetError(errored bool) {
	f.errored = errored
}

// Status returns the textual run status shown in the footer.
func (f FooterModel) Status() string {
	switch {
	case f.errored:
		return "ERROR"
	case f.done:
		return "DONE"
	case f.paused:
		return "PAUSED"
	default:
		return "RUNNING"
	}
}

func (f FooterModel) statusStyle() lipgloss.Style {
	switch {
	case f.errored:
		return statusErrorStyle
	case f.done:
		return statusDoneStyle
	case f.paused:
		return statusPausedStyle
	default:
		return statusRunningStyle
	}
}

// View renders the footer.
func (f FooterModel) View() string {
	status := f.statusStyle().Render(" " + f.Status() + " ")

	hints := []struct{ key, desc string }{
		{"q", "quit"},
		{"p", "pause"},
		{"r", "restart"},
		{"↑/↓", "scroll"},
	}

	help := ""
	for i, h := range hints {
		if i > 0 {
			help += footerDescStyle.Render(" • ")
		}
		help += footerKeyStyle.Render(h.key) + footerDescStyle.Render(" "+h.desc)
	}

	row := status + footerDescStyle.Render(" | ") + help
	if pad := f.width - lipgloss.Width(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return row
}
