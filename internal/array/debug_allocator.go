package array

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// DebugAllocator is an AllocationHook that logs every allocation and
// release. It is a diagnostic aid and should not be installed in
// production.
//
// Example:
//
//	dbg := array.NewDebugAllocator(slog.Default())
//	prev := array.SetAllocationHook(dbg)
//	defer array.SetAllocationHook(prev)
type DebugAllocator struct {
	logger *slog.Logger

	allocs atomic.Int64
	frees  atomic.Int64
	live   atomic.Int64 // Bytes currently allocated
}

// NewDebugAllocator creates a DebugAllocator that writes to logger. A nil
// logger falls back to slog.Default().
func NewDebugAllocator(logger *slog.Logger) *DebugAllocator {
	if logger == nil {
		logger = slog.Default()
	}
	return &DebugAllocator{logger: logger}
}

// Observe implements AllocationHook.
func (d *DebugAllocator) Observe(ev AllocationEvent) {
	switch ev.Op {
	case OpAlloc:
		d.allocs.Add(1)
		d.live.Add(int64(ev.Bytes))
		d.logger.Log(context.Background(), slog.LevelDebug, fmt.Sprintf("%-15s %s", ev.Op, describe(ev)),
			slog.Int("bytes", ev.Bytes))
	case OpFree:
		d.frees.Add(1)
		d.live.Add(-int64(ev.Bytes))
		d.logger.Log(context.Background(), slog.LevelDebug, fmt.Sprintf("%-15s %s", ev.Op, describe(ev)),
			slog.Int("bytes", ev.Bytes))
	case OpFailed:
		d.logger.Warn(fmt.Sprintf("%-15s %s", ev.Op, describe(ev)), slog.Int("bytes", ev.Bytes))
	}
}

// Allocs returns the number of successful allocations observed.
func (d *DebugAllocator) Allocs() int64 { return d.allocs.Load() }

// Frees returns the number of releases observed.
func (d *DebugAllocator) Frees() int64 { return d.frees.Load() }

// LiveBytes returns the bytes allocated and not yet freed.
func (d *DebugAllocator) LiveBytes() int64 { return d.live.Load() }

func describe(ev AllocationEvent) string {
	return fmt.Sprintf("[address=%#x, size=%#04x, align=%#04x]", ev.Address, ev.Bytes, ev.Align)
}
