package grid

import "sync/atomic"

// Slot is the handoff point between the content producer and the
// renderer: the producer publishes finished snapshots, the renderer loads
// whichever one is current at frame start. Publication is an atomic
// pointer swap, so neither side ever blocks the other and the renderer
// always sees a complete snapshot, never a half-written one.
type Slot struct {
	current atomic.Pointer[Snapshot]
}

// Publish makes s the current snapshot.
func (sl *Slot) Publish(s *Snapshot) {
	sl.current.Store(s)
}

// Load returns the current snapshot, or nil if none has been published.
func (sl *Slot) Load() *Snapshot {
	return sl.current.Load()
}
