package tui

import (
	"strings"
	"testing"
)

func TestFooterModel_Status(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*FooterModel)
		want  string
	}{
		{"Default", func(f *FooterModel) {}, "RUNNING"},
		{"Paused", func(f *FooterModel) { f.SetPaused(true) }, "PAUSED"},
		{"Done", func(f *FooterModel) { f.SetDone(true) }, "DONE"},
		{"Error beats done", func(f *FooterModel) { f.SetDone(true); f.SetError(true) }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFooterModel()
			tt.setup(&f)
			if got := f.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFooterModel_View(t *testing.T) {
	f := NewFooterModel()
	f.SetWidth(80)

	view := f.View()
	for _, want := range []string{"RUNNING", "quit", "pause", "restart"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
