package tracing

import (
	"sort"
	"sync"
)

// CountTracer counts events per kind of event and item kind.
type CountTracer struct {
	lock   sync.Mutex
	counts map[string]map[string]int
}

// NewCountTracer creates a new CountTracer.
func NewCountTracer() *CountTracer {
	return &CountTracer{counts: make(map[string]map[string]int)}
}

// RecordEvent counts the items moved by the event.
func (t *CountTracer) RecordEvent(e Event) {
	t.lock.Lock()
	defer t.lock.Unlock()

	byKind, ok := t.counts[e.What]
	if !ok {
		byKind = make(map[string]int)
		t.counts[e.What] = byKind
	}

	byKind[e.Kind] += e.Count
}

// Items returns the number of items of a kind moved by events of a given
// kind.
func (t *CountTracer) Items(what, kind string) int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.counts[what][kind]
}

// Summary is one line of the CountTracer report.
type Summary struct {
	What  string `json:"what"`
	Kind  string `json:"kind"`
	Items int    `json:"items"`
}

// Summaries returns every counter, sorted.
func (t *CountTracer) Summaries() []Summary {
	t.lock.Lock()
	defer t.lock.Unlock()

	var out []Summary
	for what, byKind := range t.counts {
		for kind, n := range byKind {
			out = append(out, Summary{What: what, Kind: kind, Items: n})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].What != out[j].What {
			return out[i].What < out[j].What
		}

		return out[i].Kind < out[j].Kind
	})

	return out
}
