package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// ProcessBlockFn processes buf in-place with one section. state holds the
// section's delay registers in the layout of the structure the kernel
// implements and is updated in place.
type ProcessBlockFn func(c Coefficients, state []float64, buf []float64)

// OpEntry is one registered set of block kernels, one per recursion
// structure.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// DirectFormI registers: x[n-1], x[n-2], y[n-1], y[n-2].
	DirectFormI ProcessBlockFn
	// DirectFormII registers: w[n-1], w[n-2].
	DirectFormII ProcessBlockFn
	// TransposedDirectFormII registers: d0, d1.
	TransposedDirectFormII ProcessBlockFn
}

// Complete reports whether every structure has a kernel.
func (e *OpEntry) Complete() bool {
	return e.DirectFormI != nil && e.DirectFormII != nil && e.TransposedDirectFormII != nil
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default biquad kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority complete implementation supported by
// features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Complete() && cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
