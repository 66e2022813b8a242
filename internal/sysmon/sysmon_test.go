package sysmon

import "testing"

func TestSample(t *testing.T) {
	s := Sample()

	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent = %v, want 0..100", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent = %v, want 0..100", s.MemPercent)
	}
	// Any live host has memory in use.
	if s.MemPercent == 0 {
		t.Error("MemPercent = 0, want a non-zero reading")
	}
}
