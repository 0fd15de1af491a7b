package tinyjson

import (
	"sync"
	"sync/atomic"
)

var (
	defaultCodecPtr atomic.Pointer[Codec]
	defaultCodecMu  sync.Mutex
)

// defaultCodec returns the codec behind the package level functions,
// creating it with DefaultConfig on first use.
func defaultCodec() *Codec {
	if c := defaultCodecPtr.Load(); c != nil {
		return c
	}

	defaultCodecMu.Lock()
	defer defaultCodecMu.Unlock()

	if c := defaultCodecPtr.Load(); c != nil {
		return c
	}
	c := New()
	defaultCodecPtr.Store(c)
	return c
}

// SetDefaultCodec replaces the codec used by the package level functions.
// Nil is ignored.
func SetDefaultCodec(c *Codec) {
	if c == nil {
		return
	}
	defaultCodecPtr.Store(c)
}
