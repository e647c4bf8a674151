package errstatus

import (
	"context"
	"sync"
)

// Holder is a mutable, versioned container for the current error value.
// It is the reactive input of the classifier: a [Computed] bound to the
// holder recomputes its status string only after the holder changed.
//
// Holder is safe for concurrent use.
type Holder struct {
	mu      sync.RWMutex
	value   any
	version uint64
}

// NewHolder creates an empty Holder (no current error).
func NewHolder() *Holder {
	return &Holder{}
}

// Set replaces the held error value and invalidates dependent [Computed]
// caches. Setting nil is equivalent to [Holder.Clear].
func (h *Holder) Set(value any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = value
	h.version++
}

// Clear removes the current error value.
func (h *Holder) Clear() {
	h.Set(nil)
}

// Value returns the currently held error value, which may be nil.
func (h *Holder) Value() any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

// snapshot returns the value together with its version for cache checks.
func (h *Holder) snapshot() (any, uint64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value, h.version
}

// Computed is a lazily recomputed status string bound to a [Holder].
// [Computed.Get] returns a cached result until the holder's value changes;
// the recomputation is restartable, not one-shot. Obtain one via
// [Classifier.Watch].
//
// Computed is safe for concurrent use.
type Computed struct {
	classifier *Classifier
	holder     *Holder

	mu      sync.Mutex
	version uint64
	cached  string
	valid   bool
}

// Watch binds the classifier to a holder and returns the reactive status
// string. A nil holder is tolerated: every read then yields the
// missing-parameters status, matching the missing-parameters guard of
// [Classifier.Classify].
func (c *Classifier) Watch(holder *Holder) *Computed {
	return &Computed{classifier: c, holder: holder}
}

// Get returns the status message for the holder's current value,
// recomputing only if the value changed since the last read.
func (m *Computed) Get(ctx context.Context) string {
	if m.holder == nil {
		return m.classifier.explain(ctx, holderAbsent{}).Message
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value, version := m.holder.snapshot()
	if m.valid && version == m.version {
		return m.cached
	}

	m.cached = m.classifier.Classify(ctx, value)
	m.version = version
	m.valid = true
	return m.cached
}

// Invalidate drops the cached result, forcing the next [Computed.Get] to
// recompute even if the holder did not change. Useful after swapping the
// catalog locale at runtime.
func (m *Computed) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = false
}
