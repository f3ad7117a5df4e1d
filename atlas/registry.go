package atlas

import (
	"sync"
	"sync/atomic"
)

// registryShardCount is a power of 2 so shard selection is a bitwise AND.
const registryShardCount = 16

// Registry maps runes to dense glyph slot identifiers, assigning a fresh
// slot on first sight. Lookups are sharded for concurrent readers; slot
// assignment funnels through one SlotAllocator so identifiers stay dense
// across shards.
//
// The renderer resolves the returned identifiers arithmetically, so a
// rune's slot never changes once assigned.
type Registry struct {
	shards [registryShardCount]registryShard

	allocMu sync.Mutex
	alloc   *SlotAllocator

	hits   atomic.Uint64
	misses atomic.Uint64
}

type registryShard struct {
	mu  sync.RWMutex
	ids map[rune]uint32
}

// NewRegistry creates a registry backed by the given slot allocator.
func NewRegistry(alloc *SlotAllocator) *Registry {
	r := &Registry{alloc: alloc}
	for i := range r.shards {
		r.shards[i].ids = make(map[rune]uint32)
	}
	return r
}

func (r *Registry) shard(ch rune) *registryShard {
	return &r.shards[uint32(ch)&(registryShardCount-1)]
}

// Lookup returns the slot identifier assigned to ch, if any.
func (r *Registry) Lookup(ch rune) (uint32, bool) {
	s := r.shard(ch)
	s.mu.RLock()
	id, ok := s.ids[ch]
	s.mu.RUnlock()
	if ok {
		r.hits.Add(1)
	} else {
		r.misses.Add(1)
	}
	return id, ok
}

// Ensure returns the slot identifier for ch, assigning the next dense
// slot on first sight. created reports whether this call assigned it;
// the caller rasterizes and stages the glyph bitmap exactly then.
// Returns ErrSlotsExhausted when the atlas is full.
func (r *Registry) Ensure(ch rune) (id uint32, created bool, err error) {
	s := r.shard(ch)
	s.mu.RLock()
	id, ok := s.ids[ch]
	s.mu.RUnlock()
	if ok {
		r.hits.Add(1)
		return id, false, nil
	}
	r.misses.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.ids[ch]; ok {
		return id, false, nil
	}

	r.allocMu.Lock()
	id, err = r.alloc.Alloc()
	r.allocMu.Unlock()
	if err != nil {
		return 0, false, err
	}
	s.ids[ch] = id
	return id, true, nil
}

// Len returns the number of assigned slots.
func (r *Registry) Len() int {
	n := 0
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.RLock()
		n += len(s.ids)
		s.mu.RUnlock()
	}
	return n
}

// Stats returns cumulative hit and miss counts.
func (r *Registry) Stats() (hits, misses uint64) {
	return r.hits.Load(), r.misses.Load()
}

// LayersInUse reports the layer count the assigned slots occupy, the
// value fed into Index.SetLayerCount between frames.
func (r *Registry) LayersInUse() uint32 {
	r.allocMu.Lock()
	defer r.allocMu.Unlock()
	return r.alloc.LayersInUse()
}
