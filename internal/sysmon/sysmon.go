// Package sysmon samples system-wide CPU and memory usage for display in
// the monitoring dashboard.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of host resource usage, both in percent (0..100).
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Sample takes a non-blocking snapshot of host CPU and memory usage.
// The CPU figure is the delta since the previous Sample call (gopsutil
// interval 0), so the first call of a process reports 0. Probe failures
// leave the corresponding field at zero rather than returning an error;
// the dashboard treats a missing sample as an empty data point.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
	}
	return s
}
