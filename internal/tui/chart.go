package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/numcalc/internal/format"
)

const (
	// sparklineWidth is the horizontal space reserved for labels and
	// borders around each sparkline row.
	sparklineWidth = 17
	// minBarWidth is the narrowest progress bar worth drawing.
	minBarWidth = 5
	// historyCap is the default sample capacity before the first resize.
	historyCap = 64
)

// ChartModel renders the progress history and system load sparklines.
type ChartModel struct {
	history         *RingBuffer
	cpuHistory      *RingBuffer
	memHistory      *RingBuffer
	averageProgress float64
	eta             time.Duration
	done            bool
	total           time.Duration
	width           int
	height          int
}

// NewChartModel creates a new chart panel.
func NewChartModel() ChartModel {
	return ChartModel{
		history:    NewRingBuffer(historyCap),
		cpuHistory: NewRingBuffer(historyCap),
		memHistory: NewRingBuffer(historyCap),
	}
}

// SetSize updates dimensions and resizes the sample buffers to the drawable
// width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h

	samples := w - sparklineWidth
	if samples < 1 {
		samples = 1
	}
	c.history.Resize(samples)
	c.cpuHistory.Resize(samples)
	c.memHistory.Resize(samples)
}

// AddDataPoint records a progress sample.
func (c *ChartModel) AddDataPoint(value, average float64, eta time.Duration) {
	c.history.Push(average * 100)
	c.averageProgress = average
	c.eta = eta
}

// UpdateSysStats records a system load sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.Push(cpuPercent)
	c.memHistory.Push(memPercent)
}

// SetDone freezes the chart with the total run duration.
func (c *ChartModel) SetDone(total time.Duration) {
	c.done = true
	c.total = total
	c.averageProgress = 1.0
	c.eta = 0
}

// Reset clears all samples.
func (c *ChartModel) Reset() {
	c.history.Reset()
	c.cpuHistory.Reset()
	c.memHistory.Reset()
	c.averageProgress = 0
	c.eta = 0
	c.done = false
	c.total = 0
}

// renderProgressBar draws the average progress as a block bar, or returns
// an empty string when the panel is too narrow.
func (c ChartModel) renderProgressBar() string {
	barWidth := c.width - sparklineWidth
	if barWidth < minBarWidth {
		return ""
	}

	filled := int(c.averageProgress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf(" %s %5.1f%%", bar, c.averageProgress*100)
}

// renderStatusLine shows the ETA while running, the total once done.
func (c ChartModel) renderStatusLine() string {
	if c.done {
		return fmt.Sprintf(" %s %s",
			metricLabelStyle.Render("ETA:"),
			statusDoneStyle.Render("done in "+format.FormatExecutionDuration(c.total)))
	}
	return fmt.Sprintf(" %s %s",
		metricLabelStyle.Render("ETA:"),
		metricValueStyle.Render(format.FormatETA(c.eta)))
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var rows []string
	rows = append(rows, titleStyle.Render(" Progress Chart"))
	rows = append(rows, c.renderStatusLine())
	if bar := c.renderProgressBar(); bar != "" {
		rows = append(rows, bar)
	}

	innerHeight := c.height - 2
	chartRows := innerHeight - len(rows)
	if c.height >= 10 {
		chartRows -= 2 // room for the sparklines
	}
	if chartRows > 0 {
		width := c.width - sparklineWidth
		if width < 1 {
			width = 1
		}
		for _, line := range RenderBrailleChart(c.history.Slice(), width, chartRows) {
			rows = append(rows, " "+chartBarStyle.Render(line))
		}
	}

	if c.height >= 10 {
		rows = append(rows,
			fmt.Sprintf(" %s %s %5.1f%%",
				metricLabelStyle.Render("CPU"),
				cpuSparklineStyle.Render(RenderSparkline(c.cpuHistory.Slice())),
				c.cpuHistory.Last()),
			fmt.Sprintf(" %s %s %5.1f%%",
				metricLabelStyle.Render("MEM"),
				memSparklineStyle.Render(RenderSparkline(c.memHistory.Slice())),
				c.memHistory.Last()))
	}

	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(strings.Join(rows, "\n"))
}
