// Package metrics collects Go runtime statistics for the explorer and
// for end-of-run reporting.
package metrics

import (
	"fmt"
	"runtime"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryDelta is the change between two snapshots. HeapAllocDelta can
// be negative when a collection ran in between.
type MemoryDelta struct {
	HeapAllocDelta int64
	GCCycles       uint32
	PauseNs        uint64
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

// Delta returns the change from an earlier snapshot to this one.
func (s MemorySnapshot) Delta(earlier MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		HeapAllocDelta: int64(s.HeapAlloc) - int64(earlier.HeapAlloc),
		GCCycles:       s.NumGC - earlier.NumGC,
		PauseNs:        s.PauseTotalNs - earlier.PauseTotalNs,
	}
}

// String renders the snapshot for log output and the explorer header.
func (s MemorySnapshot) String() string {
	return fmt.Sprintf("heap=%s sys=%s objects=%d gc=%d",
		FormatBytes(s.HeapAlloc), FormatBytes(s.Sys), s.HeapObjects, s.NumGC)
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
