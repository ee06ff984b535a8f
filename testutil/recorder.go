package testutil

import (
	"sync"

	"github.com/kbukum/microinjection/injection"
)

// Recorder is a miss handler that counts lookups per key and returns
// canned values registered with Return.
type Recorder struct {
	mu     sync.Mutex
	calls  map[string]int
	order  []injection.KeyDescriptor
	values map[string]any
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		calls:  make(map[string]int),
		values: make(map[string]any),
	}
}

// Return makes the handler answer lookups of key with value. The value must
// have the key's value type; Get panics otherwise.
func (r *Recorder) Return(key injection.KeyDescriptor, value any) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key.ID()] = value
	return r
}

// Handler returns the miss handler backed by r.
func (r *Recorder) Handler() injection.MissHandler {
	return r.record
}

func (r *Recorder) record(key injection.KeyDescriptor) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[key.ID()]++
	r.order = append(r.order, key)
	return r.values[key.ID()]
}

// Calls returns how many times key was looked up through the handler.
func (r *Recorder) Calls(key injection.KeyDescriptor) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[key.ID()]
}

// Total returns the number of handler calls across all keys.
func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Keys returns the keys in lookup order, one entry per call.
func (r *Recorder) Keys() []injection.KeyDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]injection.KeyDescriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Reset forgets recorded calls. Canned values are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = make(map[string]int)
	r.order = nil
}
