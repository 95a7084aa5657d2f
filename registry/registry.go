// Package registry is the catalogue of step generators. A Registry is
// built once from a list of AlgoInfo entries and never mutated afterwards;
// adding an algorithm means writing its generator and appending one entry
// to the table in Default.
package registry

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

var (
	// ErrDuplicateKey is returned by New when two entries share a key.
	ErrDuplicateKey = errors.New("registry: duplicate algorithm key")

	// ErrNoFactory is returned by New for an entry without a generator.
	ErrNoFactory = errors.New("registry: entry has no factory")

	// ErrEmptyKey is returned by New for an entry without a key.
	ErrEmptyKey = errors.New("registry: empty algorithm key")
)

// Request carries the arguments of one run. Heuristic is ignored by
// algorithms that do not declare HasHeuristic.
type Request struct {
	Graph     *core.Graph
	Source    string
	Target    string
	Heuristic string
}

// Factory instantiates a generator for one run.
type Factory func(Request) iter.Seq[step.Step]

// AlgoInfo describes one registered algorithm.
type AlgoInfo struct {
	Key              string
	Label            string
	New              Factory
	Pseudocode       []string
	Tags             []string
	SupportsNegative bool
	AllPairs         bool
	HasHeuristic     bool
	TimeComplexity   string
	SpaceComplexity  string
	Description      string
}

// HasTag reports whether tag is among the entry's tags.
func (a AlgoInfo) HasTag(tag string) bool {
	return slices.Contains(a.Tags, tag)
}

func (a AlgoInfo) clone() AlgoInfo {
	a.Pseudocode = slices.Clone(a.Pseudocode)
	a.Tags = slices.Clone(a.Tags)

	return a
}

// Registry is an immutable table of AlgoInfo keyed by AlgoInfo.Key.
// It is safe for concurrent use.
type Registry struct {
	order []string
	byKey map[string]AlgoInfo
}

// New validates entries and freezes them into a Registry. Entries keep
// their order for All and Keys.
func New(entries ...AlgoInfo) (*Registry, error) {
	r := &Registry{byKey: make(map[string]AlgoInfo, len(entries))}
	for _, e := range entries {
		switch {
		case e.Key == "":
			return nil, fmt.Errorf("New: %w", ErrEmptyKey)
		case e.New == nil:
			return nil, fmt.Errorf("New: %q: %w", e.Key, ErrNoFactory)
		}
		if _, dup := r.byKey[e.Key]; dup {
			return nil, fmt.Errorf("New: %q: %w", e.Key, ErrDuplicateKey)
		}
		r.byKey[e.Key] = e.clone()
		r.order = append(r.order, e.Key)
	}

	return r, nil
}

// Lookup returns a copy of the entry registered under key.
func (r *Registry) Lookup(key string) (AlgoInfo, bool) {
	e, ok := r.byKey[key]
	if !ok {
		return AlgoInfo{}, false
	}

	return e.clone(), true
}

// ByTag returns copies of every entry carrying tag, in registration order.
func (r *Registry) ByTag(tag string) []AlgoInfo {
	var out []AlgoInfo
	for _, k := range r.order {
		if e := r.byKey[k]; e.HasTag(tag) {
			out = append(out, e.clone())
		}
	}

	return out
}

// All returns copies of every entry in registration order.
func (r *Registry) All() []AlgoInfo {
	out := make([]AlgoInfo, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k].clone())
	}

	return out
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	return slices.Clone(r.order)
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.order) }
