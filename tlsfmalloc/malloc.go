// Package tlsfmalloc exposes a process-wide malloc/calloc/realloc/free
// facade over a single lazily-initialized tlsf.Allocator, serialized by a
// mutex since the allocator core is single-threaded and non-reentrant.
package tlsfmalloc

import (
	"sync"
	"unsafe"

	"github.com/tlsfgo/tlsf/tlsf"
	"github.com/tlsfgo/tlsf/tlsfdebug"
)

// Option configures the process-wide pool. Unset fields take the values
// from DefaultOption.
type Option struct {
	// PoolPower sizes the pool to 1<<PoolPower bytes.
	PoolPower uint

	// Debug, if non-nil, receives a trace of every operation on the pool.
	Debug *tlsfdebug.Logger
}

// DefaultOption returns the default values of Option: a 64 MiB pool with
// tracing disabled.
func DefaultOption() *Option {
	return &Option{PoolPower: 26}
}

var (
	once sync.Once
	mu   sync.Mutex
	pool *tlsf.Allocator
	opt  *Option
)

// Configure sets the options used by the pool created on first use. It
// must be called before the first Malloc/Calloc/Memalign call; calling it
// afterward has no effect, matching the original library's init-once
// semantics.
func Configure(o *Option) {
	mu.Lock()
	defer mu.Unlock()
	opt = o
}

func ensureInit() *tlsf.Allocator {
	once.Do(func() {
		o := opt
		if o == nil {
			o = DefaultOption()
		}
		power := o.PoolPower
		if power == 0 {
			power = DefaultOption().PoolPower
		}
		a, err := tlsf.New(power)
		if err != nil {
			panic(err)
		}
		if o.Debug != nil {
			a.SetDebugLogger(o.Debug)
		}
		pool = a
	})
	return pool
}

// Malloc reserves at least size bytes and returns a pointer to the
// payload, or nil if the pool cannot satisfy the request.
func Malloc(size int) unsafe.Pointer {
	a := ensureInit()
	mu.Lock()
	defer mu.Unlock()
	p, err := a.Allocate(size)
	if err != nil {
		return nil
	}
	return p
}

// Calloc reserves space for n elements of elemSize bytes each, zeroed.
func Calloc(n, elemSize int) unsafe.Pointer {
	total := n * elemSize
	a := ensureInit()
	mu.Lock()
	p, err := a.Allocate(total)
	mu.Unlock()
	if err != nil {
		return nil
	}
	buf := unsafe.Slice((*byte)(p), total)
	for i := range buf {
		buf[i] = 0
	}
	return p
}

// Realloc resizes the block backing p to newSize bytes, preserving its
// content up to the smaller of the two sizes. p may be nil, in which case
// Realloc behaves like Malloc. newSize == 0 frees p and returns nil,
// matching the standard realloc(3) convention (the core's own Reallocate
// has no such case: it always needs a positive size, so the facade
// special-cases the zero here rather than pushing it down).
func Realloc(p unsafe.Pointer, newSize int) unsafe.Pointer {
	a := ensureInit()
	if p == nil {
		return Malloc(newSize)
	}
	if newSize == 0 {
		mu.Lock()
		a.Free(p)
		mu.Unlock()
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	np, err := a.Reallocate(p, newSize)
	if err != nil {
		return nil
	}
	return np
}

// Memalign reserves at least size bytes aligned to align, which must be a
// power of two.
func Memalign(size, align int) unsafe.Pointer {
	a := ensureInit()
	mu.Lock()
	defer mu.Unlock()
	p, err := a.AlignedAllocate(size, align)
	if err != nil {
		return nil
	}
	return p
}

// Free returns the block backing p to the pool. Freeing nil is a no-op.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	a := ensureInit()
	mu.Lock()
	defer mu.Unlock()
	a.Free(p)
}
