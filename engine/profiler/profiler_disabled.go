//go:build !profile

package profiler

// Stubbed no-op versions when the "profile" build tag is not set.

func Init(capacity int) {}

func Start(name string) func() { return noop }

func Dump() (string, error) { return "", nil }

func noop() {}
