// SPDX-License-Identifier: MIT
// Package: graphlib/idspace
//
// space.go - external ID <-> dense internal index translation.
//
// Contract:
//   - External IDs are arbitrary uint64 values; gaps cost nothing (hash map forward direction).
//   - Internal indices are dense uint32 slots in [0, Cap()).
//   - A released slot is recycled before a fresh slot is appended; the lowest
//     free slot is always reused first, so allocation order is deterministic.
//   - Release removes the external mapping: Lookup reports NotFound afterwards.
//
// Complexity:
//   - ResolveOrCreate/Lookup/External: O(1) average.
//   - Release: O(1) amortized (roaring container update).
//
// Concurrency:
//   - Space is NOT safe for concurrent mutation; core.Graph guards it with its own lock.

package idspace

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Index is a dense, engine-private slot number.
type Index = uint32

// Sentinel errors for identifier space operations.
var (
	// ErrSlotNotLive indicates Release on a slot that is free or was never allocated.
	ErrSlotNotLive = errors.New("idspace: slot is not live")

	// ErrExhausted indicates that every uint32 slot is in use.
	ErrExhausted = errors.New("idspace: index space exhausted")
)

// maxSlots bounds the reverse table; index math.MaxUint32 stays unused so that
// Cap() always fits an Index.
const maxSlots = math.MaxUint32

// Space maps sparse external IDs onto dense internal indices and back.
type Space struct {
	forward map[uint64]Index // external -> internal
	reverse []uint64         // internal -> external (stale for free slots)
	free    *roaring.Bitmap  // released slots awaiting reuse
}

// New returns an empty Space with room for capacityHint IDs before growing.
// Complexity: O(capacityHint) for the initial allocation.
func New(capacityHint int) *Space {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Space{
		forward: make(map[uint64]Index, capacityHint),
		reverse: make([]uint64, 0, capacityHint),
		free:    roaring.New(),
	}
}

// ResolveOrCreate returns the index bound to ext, allocating one if needed.
// created reports whether a new binding was made. Calling it again with the
// same ext returns the same index and created == false.
//
// Errors:
//   - ErrExhausted when no slot is free and the reverse table is full.
//
// Complexity: O(1) average.
func (s *Space) ResolveOrCreate(ext uint64) (idx Index, created bool, err error) {
	if idx, ok := s.forward[ext]; ok {
		return idx, false, nil
	}

	if !s.free.IsEmpty() {
		// Lowest free slot first keeps allocation order independent of release order.
		idx = s.free.Minimum()
		s.free.Remove(idx)
		s.reverse[idx] = ext
	} else {
		if uint64(len(s.reverse)) >= maxSlots {
			return 0, false, fmt.Errorf("resolve %d: %w", ext, ErrExhausted)
		}
		idx = Index(len(s.reverse))
		s.reverse = append(s.reverse, ext)
	}
	s.forward[ext] = idx

	return idx, true, nil
}

// Lookup returns the index bound to ext. ok == false is the NotFound outcome.
// Complexity: O(1) average.
func (s *Space) Lookup(ext uint64) (idx Index, ok bool) {
	idx, ok = s.forward[ext]
	return idx, ok
}

// External returns the external ID bound to idx, or ok == false when idx is
// out of range or currently free.
// Complexity: O(1).
func (s *Space) External(idx Index) (ext uint64, ok bool) {
	if !s.Live(idx) {
		return 0, false
	}

	return s.reverse[idx], true
}

// Live reports whether idx is allocated and bound to an external ID.
func (s *Space) Live(idx Index) bool {
	return int(idx) < len(s.reverse) && !s.free.Contains(idx)
}

// Release unbinds idx and marks the slot free for reuse.
//
// Errors:
//   - ErrSlotNotLive if idx is free or beyond Cap().
func (s *Space) Release(idx Index) error {
	if !s.Live(idx) {
		return fmt.Errorf("release %d: %w", idx, ErrSlotNotLive)
	}
	delete(s.forward, s.reverse[idx])
	s.reverse[idx] = 0
	s.free.Add(idx)

	return nil
}

// Len returns the number of live external IDs.
func (s *Space) Len() int { return len(s.forward) }

// Cap returns the number of allocated slots, live or free.
func (s *Space) Cap() int { return len(s.reverse) }

// Free returns the number of released slots awaiting reuse.
func (s *Space) Free() int { return int(s.free.GetCardinality()) }

// Clone returns an independent deep copy.
// Complexity: O(Cap()).
func (s *Space) Clone() *Space {
	c := &Space{
		forward: make(map[uint64]Index, len(s.forward)),
		reverse: make([]uint64, len(s.reverse), cap(s.reverse)),
		free:    s.free.Clone(),
	}
	for ext, idx := range s.forward {
		c.forward[ext] = idx
	}
	copy(c.reverse, s.reverse)

	return c
}

// Reset drops every binding and every slot.
func (s *Space) Reset() {
	s.forward = make(map[uint64]Index)
	s.reverse = s.reverse[:0]
	s.free.Clear()
}
