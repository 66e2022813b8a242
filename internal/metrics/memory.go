// Package metrics reads Go runtime memory statistics for display after a
// calculation and for live refresh in the TUI dashboard.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta returns the allocation growth between two snapshots. GC counters
// are monotonic so the subtraction is safe; heap figures can shrink, in
// which case the delta is reported as zero.
func Delta(before, after MemorySnapshot) MemorySnapshot {
	sub := func(a, b uint64) uint64 {
		if a < b {
			return 0
		}
		return a - b
	}
	return MemorySnapshot{
		HeapAlloc:    sub(after.HeapAlloc, before.HeapAlloc),
		HeapSys:      sub(after.HeapSys, before.HeapSys),
		Sys:          sub(after.Sys, before.Sys),
		NumGC:        after.NumGC - before.NumGC,
		PauseTotalNs: sub(after.PauseTotalNs, before.PauseTotalNs),
		HeapObjects:  sub(after.HeapObjects, before.HeapObjects),
	}
}
