package profiler

import "runtime"

// Runtime counters for the debug overlay. Available with or without the
// profile build tag.

// MemoryUsage returns the bytes of allocated heap objects.
func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func NumGoroutine() int { return runtime.NumGoroutine() }
