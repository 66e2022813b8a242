package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numcalc/internal/format"
)

// HeaderModel is the dashboard's top bar: application title, release
// version, and a running elapsed-time readout.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	width     int
}

// NewHeaderModel builds a header whose elapsed timer starts now.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetDone freezes the elapsed readout at the current instant.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer from now.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth sets the rendering width in terminal cells.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

func (h HeaderModel) elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header row, padded out to the configured width.
func (h HeaderModel) View() string {
	titleText := "NumCalc Monitor"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}

	left := titleStyle.Render(titleText) +
		versionStyle.Render(" | ") +
		elapsedStyle.Render("Elapsed: "+format.FormatExecutionDuration(h.elapsed()))

	gap := h.width - 2 - lipgloss.Width(left)
	if gap < 0 {
		gap = 0
	}

	return headerStyle.Width(h.width).Render(left + strings.Repeat(" ", gap))
}
