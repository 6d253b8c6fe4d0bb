package status

import (
	"math"
	"sync/atomic"
)

// MaxStringLen caps string metrics so the debug footer stays on one row
const MaxStringLen = 20

// AtomicFloat is a float64 stored as its IEEE bits; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Add applies delta with a CAS loop and returns the result
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		cur := f.bits.Load()
		next := math.Float64frombits(cur) + delta
		if f.bits.CompareAndSwap(cur, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicString holds a short label such as the current mode
type AtomicString struct {
	val atomic.Value
}

// Store truncates to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.val.Store(val)
}

func (s *AtomicString) Load() string {
	v, _ := s.val.Load().(string)
	return v
}
