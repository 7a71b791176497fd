package hashing

import "sync"

type entry struct {
	key   uint64
	depth int
}

// Table caches node counts by position key and remaining depth. It is safe
// for concurrent use by the perft workers.
type Table struct {
	mu          sync.RWMutex
	counts      map[entry]uint64
	maxCapacity int
	hits        uint64
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		counts:      make(map[entry]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the count stored for key at depth.
func (t *Table) Lookup(key uint64, depth int) (uint64, bool) {
	t.mu.RLock()
	n, ok := t.counts[entry{key, depth}]
	t.mu.RUnlock()
	if ok {
		t.mu.Lock()
		t.hits++
		t.mu.Unlock()
	}
	return n, ok
}

// Store records a count. Once the table is full new entries are dropped.
func (t *Table) Store(key uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.isFull() {
		return
	}
	t.counts[entry{key, depth}] = nodes
}

// Len returns the number of stored counts.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.counts)
}

// Hits returns how many lookups found a count.
func (t *Table) Hits() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isFull()
}

func (t *Table) isFull() bool {
	return t.maxCapacity > 0 && len(t.counts) >= t.maxCapacity
}

// Reset clears the table.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts = make(map[entry]uint64)
	t.hits = 0
}
