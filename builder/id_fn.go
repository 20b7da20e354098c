// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import "fmt"

// IDFn generates a node identifier from its zero-based index.
// It must be a pure, injective function: given the same idx, it always returns
// the same ID, and distinct indices yield distinct IDs.
type IDFn func(idx int) uint64

// DefaultIDFn returns idx itself, e.g. 0→0, 42→42.
// Never panics.
func DefaultIDFn(idx int) uint64 {
	return uint64(idx)
}

// OffsetIDFn returns base + idx, e.g. OffsetIDFn(1000)(3) = 1003.
func OffsetIDFn(base uint64) IDFn {
	return StrideIDFn(base, 1)
}

// StrideIDFn returns base + idx·stride. Panics if stride is 0.
// Complexity: O(1).
func StrideIDFn(base, stride uint64) IDFn {
	if stride == 0 {
		panic("builder: StrideIDFn(stride=0)")
	}
	return func(idx int) uint64 {
		if idx < 0 {
			panic(fmt.Sprintf("StrideIDFn: idx must be ≥ 0, got %d", idx))
		}
		return base + uint64(idx)*stride
	}
}

// ScatterIDFn maps idx through a bijective 64-bit finalizer keyed by seed, so
// consecutive indices land far apart in the uint64 range.
// Complexity: O(1).
func ScatterIDFn(seed uint64) IDFn {
	return func(idx int) uint64 {
		if idx < 0 {
			panic(fmt.Sprintf("ScatterIDFn: idx must be ≥ 0, got %d", idx))
		}
		// Xor with seed, xor-shifts and odd multiplies are each invertible mod 2^64.
		z := uint64(idx) ^ seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}
}

// WithOffsetIDs sets the ID scheme to OffsetIDFn(base).
func WithOffsetIDs(base uint64) BuilderOption {
	return WithIDScheme(OffsetIDFn(base))
}

// WithScatteredIDs sets the ID scheme to ScatterIDFn(seed).
func WithScatteredIDs(seed uint64) BuilderOption {
	return WithIDScheme(ScatterIDFn(seed))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}
