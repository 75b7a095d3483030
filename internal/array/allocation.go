package array

import (
	"math"
	"math/bits"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Op identifies an allocation event.
type Op int

// Allocation events.
const (
	OpAlloc Op = iota
	OpFree
	OpFailed
)

// String returns the event name used in allocation logs.
func (o Op) String() string {
	switch o {
	case OpAlloc:
		return "alloc"
	case OpFree:
		return "dealloc"
	case OpFailed:
		return "failed alloc"
	default:
		return "unknown"
	}
}

// AllocationEvent describes one storage allocation or release.
type AllocationEvent struct {
	Op      Op
	Address uintptr // Address of the first element (0 for failed or empty allocations)
	Bytes   int     // Size of the block in bytes
	Align   int     // Alignment of the element type
}

// AllocationHook observes every storage allocation and release performed by
// the array core. Observe is never called concurrently or recursively; it
// may run on any goroutine, including the one that releases collected arrays.
type AllocationHook interface {
	Observe(ev AllocationEvent)
}

var (
	hook       atomic.Pointer[AllocationHook]
	allocLimit atomic.Int64
)

// delivery serialises hook calls. While one goroutine is inside Observe,
// events raised anywhere else (another goroutine, a GC cleanup, or the hook
// itself) are queued and handed to the hook by that goroutine once Observe
// returns.
var delivery struct {
	mu      sync.Mutex
	active  bool
	pending []AllocationEvent
}

// SetAllocationHook installs h as the process-wide allocation observer and
// returns the previous one. Passing nil removes the hook.
func SetAllocationHook(h AllocationHook) AllocationHook {
	var prev *AllocationHook
	if h == nil {
		prev = hook.Swap(nil)
	} else {
		prev = hook.Swap(&h)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

// SetAllocationLimit caps the size of a single allocation in bytes and
// returns the previous cap. Zero or a negative value removes the cap.
func SetAllocationLimit(bytes int64) int64 {
	return allocLimit.Swap(bytes)
}

// notify forwards ev to the installed hook. Observe is never entered twice
// at the same time: an event raised while a call is in flight is queued and
// delivered, in order, by the goroutine making that call.
func notify(ev AllocationEvent) {
	if hook.Load() == nil {
		return
	}
	delivery.mu.Lock()
	if delivery.active {
		delivery.pending = append(delivery.pending, ev)
		delivery.mu.Unlock()
		return
	}
	delivery.active = true
	delivery.mu.Unlock()

	drained := false
	defer func() {
		if !drained {
			// Observe panicked; drop what was queued behind it.
			delivery.mu.Lock()
			delivery.active = false
			delivery.pending = nil
			delivery.mu.Unlock()
		}
	}()

	for {
		if h := hook.Load(); h != nil {
			(*h).Observe(ev)
		}
		delivery.mu.Lock()
		if len(delivery.pending) == 0 {
			delivery.active = false
			delivery.pending = nil
			delivery.mu.Unlock()
			drained = true
			return
		}
		ev = delivery.pending[0]
		delivery.pending = delivery.pending[1:]
		delivery.mu.Unlock()
	}
}

// buffer is the reference-counted storage shared by an owning array and
// its views. The storage is freed when the last reference is dropped.
type buffer[T any] struct {
	data  []T
	refs  atomic.Int32
	bytes int
	align int
}

func (b *buffer[T]) addRef() {
	b.refs.Add(1)
}

func (b *buffer[T]) release() {
	if b.refs.Add(-1) == 0 {
		notify(AllocationEvent{Op: OpFree, Address: b.address(), Bytes: b.bytes, Align: b.align})
		b.data = nil
	}
}

func (b *buffer[T]) address() uintptr {
	if len(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
}

// handle is one reference to a buffer. Each Array value owns exactly one
// handle; dropping the handle twice is a no-op.
type handle[T any] struct {
	buf      *buffer[T]
	released atomic.Bool
}

func newHandle[T any](buf *buffer[T]) *handle[T] {
	return &handle[T]{buf: buf}
}

// drop releases the handle's reference and reports whether it was live.
func (h *handle[T]) drop() bool {
	if !h.released.CompareAndSwap(false, true) {
		return false
	}
	h.buf.release()
	return true
}

// detach marks the handle released without touching the reference count.
// Used when the reference is moved to another handle.
func (h *handle[T]) detach() bool {
	return h.released.CompareAndSwap(false, true)
}

// elemSize returns the in-memory size and alignment of T.
func elemSize[T any]() (size, align int) {
	var zero T
	return int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero))
}

// checkedElements returns the element count of shape, or false when the
// product does not fit in an int.
func checkedElements[I Dim](shape I) (int, bool) {
	n := uint64(1)
	for k := 0; k < len(shape); k++ {
		hi, lo := bits.Mul64(n, uint64(shape[k]))
		if hi != 0 || lo > math.MaxInt {
			return 0, false
		}
		n = lo
	}
	return int(n), true
}

// allocate obtains storage for n elements spaced slot bytes apart. A
// negative n signals an element count that already overflowed.
func allocate[T any](n, slot int) (*buffer[T], error) {
	_, align := elemSize[T]()

	hi, bytes := bits.Mul64(uint64(max(n, 0)), uint64(slot))
	if n < 0 || hi != 0 || bytes > math.MaxInt {
		notify(AllocationEvent{Op: OpFailed, Bytes: -1, Align: align})
		return nil, &AllocationFailedError{Bytes: -1, Reason: "size overflows the address space"}
	}
	if limit := allocLimit.Load(); limit > 0 && int64(bytes) > limit {
		notify(AllocationEvent{Op: OpFailed, Bytes: int(bytes), Align: align})
		return nil, &AllocationFailedError{Bytes: int(bytes), Reason: "exceeds allocation limit"}
	}

	buf := &buffer[T]{
		data:  make([]T, n),
		bytes: int(bytes),
		align: align,
	}
	buf.refs.Store(1)
	notify(AllocationEvent{Op: OpAlloc, Address: buf.address(), Bytes: buf.bytes, Align: align})
	return buf, nil
}

// track attaches a GC cleanup to a so that an array that is never released
// explicitly still drops its reference.
func track[T any, I Dim](a *Array[T, I]) *Array[T, I] {
	runtime.AddCleanup(a, func(h *handle[T]) { h.drop() }, a.h)
	return a
}
