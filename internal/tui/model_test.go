package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/sequence"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	factory := sequence.NewDefaultFactory()
	calcs := factory.GetAll()
	cfg := config.AppConfig{N: 100, Algo: "all", Timeout: time.Minute}
	m := NewModel(context.Background(), calcs, cfg, "dev")
	t.Cleanup(m.cancel)
	return m
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := updated.(Model)

	if got.width != 120 || got.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", got.width, got.height)
	}
	if got.logsWidth() != 72 {
		t.Errorf("logsWidth = %d, want 72", got.logsWidth())
	}
	if got.rightWidth() != 48 {
		t.Errorf("rightWidth = %d, want 48", got.rightWidth())
	}
}

func TestModel_View_BeforeFirstWindowSize(t *testing.T) {
	m := newTestModel(t)

	if view := m.View(); view != "Initializing..." {
		t.Errorf("view = %q, want the initializing placeholder", view)
	}
}

func TestModel_View_RendersPanels(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"NumCalc Monitor", "Metrics", "Progress Chart", "RUNNING"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestModel_CalculationComplete(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(CalculationCompleteMsg{ExitCode: apperrors.ExitErrorMismatch, Generation: 0})
	got := updated.(Model)

	if !got.done {
		t.Error("model should be done after completion")
	}
	if got.exitCode != apperrors.ExitErrorMismatch {
		t.Errorf("exitCode = %d, want %d", got.exitCode, apperrors.ExitErrorMismatch)
	}
}

func TestModel_CalculationComplete_StaleGeneration(t *testing.T) {
	m := newTestModel(t)
	m.generation = 2

	updated, _ := m.Update(CalculationCompleteMsg{ExitCode: apperrors.ExitErrorGeneric, Generation: 1})
	got := updated.(Model)

	if got.done {
		t.Error("stale completion message should be ignored")
	}
	if got.exitCode != apperrors.ExitSuccess {
		t.Errorf("exitCode = %d, want %d", got.exitCode, apperrors.ExitSuccess)
	}
}

func TestModel_ErrorMsg(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(ErrorMsg{Err: errors.New("boom"), Duration: time.Second})
	got := updated.(Model)

	if !got.done {
		t.Error("model should be done after an error")
	}
	if got.footer.Status() != "ERROR" {
		t.Errorf("footer status = %q, want ERROR", got.footer.Status())
	}
}

func TestModel_PauseSuspendsProgress(t *testing.T) {
	m := newTestModel(t)
	m.paused = true

	updated, _ := m.Update(ProgressMsg{CalculatorIndex: 0, Value: 0.5, AverageProgress: 0.5})
	got := updated.(Model)

	if got.chart.averageProgress != 0 {
		t.Error("paused model should ignore progress updates")
	}
}

func TestModel_QuitKeyCancelsContext(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd == nil {
		t.Fatal("quit key should produce a command")
	}
	select {
	case <-m.ctx.Done():
	default:
		t.Error("quit key should cancel the execution context")
	}
}

func TestModel_ResetBumpsGeneration(t *testing.T) {
	m := newTestModel(t)
	m.done = true

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	got := updated.(Model)

	if got.generation != 1 {
		t.Errorf("generation = %d, want 1", got.generation)
	}
	if got.done {
		t.Error("reset should clear the done flag")
	}
	if cmd == nil {
		t.Error("reset should restart the calculation commands")
	}
}
