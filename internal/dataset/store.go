package dataset

import "sync/atomic"

// Store holds the current snapshot behind a single atomic reference. Readers
// always see either the old or the new snapshot in full, never a partial mix;
// individual computations need no locking because snapshots are immutable.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

func NewStore() *Store {
	s := &Store{}
	s.snap.Store(EmptySnapshot())
	return s
}

// Current returns the active snapshot. Never nil.
func (s *Store) Current() *Snapshot {
	return s.snap.Load()
}

// Replace swaps in a freshly loaded snapshot. A nil argument resets the store
// to an empty snapshot so readers keep their no-nil guarantee.
func (s *Store) Replace(snap *Snapshot) {
	if snap == nil {
		snap = EmptySnapshot()
	}
	if snap.Sales == nil {
		snap.Sales = make(map[string]*SalesTable)
	}
	s.snap.Store(snap)
}
