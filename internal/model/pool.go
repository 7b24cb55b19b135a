package model

import "slices"

// Leveled is implemented by every pool entry: attributes gated by an
// inclusive level range and ungated gear types (always eligible).
type Leveled interface {
	ID() string
	EligibleAt(level int) bool
}

// Pool — неизменяемый каталог атрибутов одного вида с выборкой по уровню.
// Строится один раз при загрузке данных и дальше только читается.
type Pool[T Leveled] struct {
	entries []T
	byID    map[string]T
}

// NewPool builds a pool over the given entries. Entries are kept in input
// order; duplicate ids keep the first occurrence.
func NewPool[T Leveled](entries []T) *Pool[T] {
	p := &Pool[T]{
		entries: entries,
		byID:    make(map[string]T, len(entries)),
	}
	for _, e := range entries {
		if _, ok := p.byID[e.ID()]; !ok {
			p.byID[e.ID()] = e
		}
	}
	return p
}

// Len returns the number of entries in the pool.
func (p *Pool[T]) Len() int { return len(p.entries) }

// All returns a copy of the catalog in order, so callers cannot disturb
// the pool's backing slice.
func (p *Pool[T]) All() []T { return slices.Clone(p.entries) }

// Eligible returns all entries whose level range contains level.
// Returns an empty slice, never an error, when nothing matches.
func (p *Pool[T]) Eligible(level int) []T {
	var out []T
	for _, e := range p.entries {
		if e.EligibleAt(level) {
			out = append(out, e)
		}
	}
	return out
}

// PickRandom returns a uniformly random eligible entry. The second return
// is false when nothing is eligible at this level: absence is an expected
// outcome ("no suffix rolled"), not an error.
func (p *Pool[T]) PickRandom(rng Rand, level int) (T, bool) {
	eligible := p.Eligible(level)
	if len(eligible) == 0 {
		var zero T
		return zero, false
	}
	return eligible[rng.IntN(len(eligible))], true
}

// FindByID returns the entry with the given id, or false when absent.
func (p *Pool[T]) FindByID(id string) (T, bool) {
	e, ok := p.byID[id]
	return e, ok
}
