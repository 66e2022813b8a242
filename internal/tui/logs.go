package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/numcalc/internal/config"
	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/orchestration"
)

// progressLogStep is the minimum progress delta between two logged updates
// for the same calculator. Updates arrive far faster than a human can read.
const progressLogStep = 0.10

// logEntry is a single timestamped line in the logs panel.
type logEntry struct {
	at   time.Time
	text string
}

// LogsModel renders the scrolling execution log.
type LogsModel struct {
	entries    []logEntry
	algoNames  []string
	lastLogged map[int]float64
	keymap     KeyMap
	offset     int // scroll offset from the bottom; 0 follows the tail
	width      int
	height     int
}

// NewLogsModel creates a log panel for the given calculators.
func NewLogsModel(algoNames []string) LogsModel {
	return LogsModel{
		algoNames:  algoNames,
		lastLogged: make(map[int]float64, len(algoNames)),
		keymap:     DefaultKeyMap(),
	}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// Reset clears the log and scroll position.
func (l *LogsModel) Reset() {
	l.entries = nil
	l.lastLogged = make(map[int]float64, len(l.algoNames))
	l.offset = 0
}

func (l *LogsModel) add(text string) {
	l.entries = append(l.entries, logEntry{at: time.Now(), text: text})
}

// AddExecutionConfig logs the run parameters at startup.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.add(fmt.Sprintf("Calculating term %s with %s",
		metricValueStyle.Render(format.FormatNumberString(fmt.Sprintf("%d", cfg.N))),
		logAlgoStyle.Render(strings.Join(l.algoNames, ", "))))
	l.add(fmt.Sprintf("Timeout: %s", cfg.Timeout))
}

// AddProgressEntry logs a progress update, throttled per calculator.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	last := l.lastLogged[msg.CalculatorIndex]
	if msg.Value < 1.0 && msg.Value-last < progressLogStep {
		return
	}
	l.lastLogged[msg.CalculatorIndex] = msg.Value

	name := fmt.Sprintf("#%d", msg.CalculatorIndex)
	if msg.CalculatorIndex >= 0 && msg.CalculatorIndex < len(l.algoNames) {
		name = l.algoNames[msg.CalculatorIndex]
	}
	l.add(fmt.Sprintf("%s %s (avg %.1f%%, ETA %s)",
		logAlgoStyle.Render(name),
		fmt.Sprintf("%.0f%%", msg.Value*100),
		msg.AverageProgress*100,
		format.FormatETA(msg.ETA)))
}

// AddResults logs the per-calculator comparison outcome.
func (l *LogsModel) AddResults(results []orchestration.CalculationResult) {
	for _, r := range results {
		if r.Err != nil {
			l.add(fmt.Sprintf("%s %s: %v",
				logErrorStyle.Render("✗"), logAlgoStyle.Render(r.Name), r.Err))
			continue
		}
		l.add(fmt.Sprintf("%s %s in %s",
			logSuccessStyle.Render("✓"), logAlgoStyle.Render(r.Name),
			format.FormatExecutionDuration(r.Duration)))
	}
}

// AddFinalResult logs the winning result summary.
func (l *LogsModel) AddFinalResult(msg FinalResultMsg) {
	if msg.Result.Result == nil {
		return
	}
	digits := len(msg.Result.Result.String())
	l.add(fmt.Sprintf("%s term %s has %s digits (%s, computed in %s)",
		logSuccessStyle.Render("Result:"),
		format.FormatNumberString(fmt.Sprintf("%d", msg.Opts.N)),
		format.FormatNumberString(fmt.Sprintf("%d", digits)),
		logAlgoStyle.Render(msg.Result.Name),
		format.FormatExecutionDuration(msg.Result.Duration)))
}

// AddError logs a failed run.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.add(fmt.Sprintf("%s %v (after %s)",
		logErrorStyle.Render("Error:"), msg.Err,
		format.FormatExecutionDuration(msg.Duration)))
}

// Update handles scroll keys.
func (l *LogsModel) Update(msg tea.KeyMsg) {
	page := l.height - 2
	if page < 1 {
		page = 1
	}
	switch {
	case key.Matches(msg, l.keymap.Up):
		l.scrollBy(1)
	case key.Matches(msg, l.keymap.Down):
		l.scrollBy(-1)
	case key.Matches(msg, l.keymap.PageUp):
		l.scrollBy(page)
	case key.Matches(msg, l.keymap.PageDown):
		l.scrollBy(-page)
	}
}

func (l *LogsModel) scrollBy(delta int) {
	l.offset += delta
	maxOffset := len(l.entries) - 1
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the panel at the configured height.
func (l LogsModel) View() string {
	return l.renderToHeight(l.height)
}

// renderToHeight renders the panel with the given outer height, showing the
// most recent entries minus the scroll offset.
func (l LogsModel) renderToHeight(height int) string {
	innerHeight := height - 2
	if innerHeight < 1 {
		innerHeight = 1
	}

	end := len(l.entries) - l.offset
	if end < 0 {
		end = 0
	}
	start := end - innerHeight
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, innerHeight)
	for _, e := range l.entries[start:end] {
		lines = append(lines, fmt.Sprintf(" %s %s",
			logTimeStyle.Render(e.at.Format("15:04:05")), e.text))
	}

	return panelStyle.
		Width(l.width - 2).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}
