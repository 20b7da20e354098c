// Package idspace translates sparse external node identifiers into dense
// internal slot indices and back.
//
// The forward direction (external -> internal) is a hash map, so external IDs
// may span the full uint64 range with arbitrary gaps without allocating memory
// proportional to the largest ID. The reverse direction is a flat slice indexed
// by slot, which lets adjacency storage use slice-of-slices instead of maps.
//
// Released slots are tracked in a roaring bitmap and recycled lowest-first:
//
//	s := idspace.New(0)
//	a, _, _ := s.ResolveOrCreate(1_000_000_007) // slot 0
//	b, _, _ := s.ResolveOrCreate(42)            // slot 1
//	_ = s.Release(a)                            // slot 0 free, 1_000_000_007 unbound
//	c, _, _ := s.ResolveOrCreate(7)             // slot 0 again
//
// Space itself is not synchronized; core.Graph owns one and guards it.
package idspace
