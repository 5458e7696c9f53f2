package observe

import (
	"sync"

	"github.com/vango-dev/minivdom/pkg/vdom"
)

// Recorder keeps every observed mutation in memory.
type Recorder struct {
	mu        sync.Mutex
	mutations []Mutation
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe implements Sink.
func (r *Recorder) Observe(m Mutation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = append(r.mutations, m)
}

// Mutations returns a copy of the recorded mutations in call order.
func (r *Recorder) Mutations() []Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Mutation(nil), r.mutations...)
}

// Len returns the number of recorded mutations.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.mutations)
}

// Count returns how many recorded mutations used op.
func (r *Recorder) Count(op vdom.Op) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.mutations {
		if m.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded mutations that used op.
func (r *Recorder) Filter(op vdom.Op) []Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Mutation
	for _, m := range r.mutations {
		if m.Op == op {
			out = append(out, m)
		}
	}
	return out
}

// Summary returns the mutation count per op, omitting ops never seen.
func (r *Recorder) Summary() map[vdom.Op]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[vdom.Op]int)
	for _, m := range r.mutations {
		out[m.Op]++
	}
	return out
}

// Strings returns the formatted mutations in call order.
func (r *Recorder) Strings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.mutations))
	for i, m := range r.mutations {
		out[i] = m.String()
	}
	return out
}

// Reset drops all recorded mutations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = nil
}
