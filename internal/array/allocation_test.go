package array

import (
	"bytes"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder keeps every event it observes. Cleanups of arrays from other
// tests may run at any time, so assertions filter by address.
type recorder struct {
	mu     sync.Mutex
	events []AllocationEvent
}

func (r *recorder) Observe(ev AllocationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) count(op Op, addr uintptr) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Op == op && ev.Address == addr {
			n++
		}
	}
	return n
}

// install sets h for the duration of the test.
func install(t *testing.T, h AllocationHook) {
	t.Helper()
	prev := SetAllocationHook(h)
	t.Cleanup(func() { SetAllocationHook(prev) })
}

func (r *recorder) total(op Op) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Op == op {
			n++
		}
	}
	return n
}

func TestFreedExactlyOnce(t *testing.T) {
	rec := &recorder{}
	install(t, rec)

	a, err := Fill(int64(0), Ix2{4, 4})
	require.NoError(t, err)
	addr := a.h.buf.address()
	require.NotZero(t, addr)
	assert.Equal(t, 1, rec.count(OpAlloc, addr))

	v1, err := a.Borrow(Ix2{0, 0}, Ix2{2, 2})
	require.NoError(t, err)
	v2, err := a.Borrow(Ix2{1, 1}, Ix2{4, 4})
	require.NoError(t, err)

	a.Release()
	a.Release()
	assert.Equal(t, 0, rec.count(OpFree, addr), "freed while views are alive")

	v1.Release()
	assert.Equal(t, 0, rec.count(OpFree, addr))

	v2.Release()
	v2.Release()
	assert.Equal(t, 1, rec.count(OpFree, addr))
}

func TestReshapeFreesOnce(t *testing.T) {
	rec := &recorder{}
	install(t, rec)

	a, err := Fill(1.0, Ix1{8})
	require.NoError(t, err)
	addr := a.h.buf.address()

	b, err := Reshape(a, Ix3{2, 2, 2})
	require.NoError(t, err)
	a.Release()
	assert.Equal(t, 0, rec.count(OpFree, addr))

	b.Release()
	assert.Equal(t, 1, rec.count(OpFree, addr))
}

func TestFailedAllocationEvent(t *testing.T) {
	rec := &recorder{}
	install(t, rec)
	prev := SetAllocationLimit(16)
	defer SetAllocationLimit(prev)

	_, err := Allocate[float64](Ix1{3}, Packed)
	require.Error(t, err)
	assert.Equal(t, 1, rec.count(OpFailed, 0))
}

// allocatingHook allocates from inside Observe when it sees a 32-byte
// allocation. The nested events must arrive after Observe returns, never
// as a nested call.
type allocatingHook struct {
	recorder
	depth    atomic.Int32
	maxDepth atomic.Int32
}

func (h *allocatingHook) Observe(ev AllocationEvent) {
	d := h.depth.Add(1)
	defer h.depth.Add(-1)
	for {
		m := h.maxDepth.Load()
		if d <= m || h.maxDepth.CompareAndSwap(m, d) {
			break
		}
	}

	h.recorder.Observe(ev)
	if ev.Op == OpAlloc && ev.Bytes == 32 {
		if a, err := Fill(int64(0), Ix1{2}); err == nil {
			a.Release()
		}
	}
}

func TestHookIsNotReentered(t *testing.T) {
	h := &allocatingHook{}
	install(t, h)

	a, err := Fill(int64(0), Ix1{4})
	require.NoError(t, err)
	addr := a.h.buf.address()

	assert.Equal(t, int32(1), h.maxDepth.Load())
	assert.Equal(t, 1, h.count(OpAlloc, addr))
	assert.Equal(t, 2, h.total(OpAlloc), "allocation made by the hook is reported afterwards")
	assert.GreaterOrEqual(t, h.total(OpFree), 1)

	a.Release()
	assert.Equal(t, 1, h.count(OpFree, addr))
}

// gateHook blocks inside Observe on the release of one address until the
// test opens the gate.
type gateHook struct {
	recorder
	target  atomic.Uintptr
	entered chan struct{}
	gate    chan struct{}
}

func (h *gateHook) Observe(ev AllocationEvent) {
	h.recorder.Observe(ev)
	if ev.Op == OpFree && ev.Address != 0 && ev.Address == h.target.Load() {
		close(h.entered)
		<-h.gate
	}
}

func TestConcurrentEventsAreDelivered(t *testing.T) {
	h := &gateHook{entered: make(chan struct{}), gate: make(chan struct{})}
	install(t, h)

	a, err := Fill(0.0, Ix1{16})
	require.NoError(t, err)
	h.target.Store(a.h.buf.address())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.Release()
	}()
	<-h.entered

	// The hook is busy on the other goroutine; these must not be lost.
	var held []*Array1[int32]
	for range 3 {
		b, err := Fill(int32(7), Ix1{5})
		require.NoError(t, err)
		held = append(held, b)
	}

	close(h.gate)
	wg.Wait()

	assert.Equal(t, 4, h.total(OpAlloc))
	for _, b := range held {
		addr := b.h.buf.address()
		assert.Equal(t, 1, h.count(OpAlloc, addr))
		b.Release()
		assert.Equal(t, 1, h.count(OpFree, addr))
	}
}

func TestDebugAllocator(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dbg := NewDebugAllocator(logger)
	install(t, dbg)

	a, err := Fill(uint32(0), Ix1{4})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, dbg.Allocs(), int64(1))

	a.Release()
	assert.GreaterOrEqual(t, dbg.Frees(), int64(1))

	out := buf.String()
	assert.Contains(t, out, "alloc")
	assert.Contains(t, out, "dealloc")
	assert.Contains(t, out, "size=0x10")
	assert.Contains(t, out, "align=0x04")
}

func TestDebugAllocatorCounters(t *testing.T) {
	var buf bytes.Buffer
	dbg := NewDebugAllocator(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	dbg.Observe(AllocationEvent{Op: OpAlloc, Address: 0x1000, Bytes: 64, Align: 8})
	dbg.Observe(AllocationEvent{Op: OpAlloc, Address: 0x2000, Bytes: 16, Align: 4})
	dbg.Observe(AllocationEvent{Op: OpFree, Address: 0x1000, Bytes: 64, Align: 8})
	dbg.Observe(AllocationEvent{Op: OpFailed, Bytes: 1 << 40, Align: 8})

	assert.Equal(t, int64(2), dbg.Allocs())
	assert.Equal(t, int64(1), dbg.Frees())
	assert.Equal(t, int64(16), dbg.LiveBytes())
	assert.Contains(t, buf.String(), "failed alloc")
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "alloc", OpAlloc.String())
	assert.Equal(t, "dealloc", OpFree.String())
	assert.Equal(t, "failed alloc", OpFailed.String())
}
