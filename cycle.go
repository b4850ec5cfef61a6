package aoc

import (
	"tailscale.com/util/deephash"
)

// DefaultSimLimit bounds the number of steps FindCycle and Simulate take
// looking for a repeated state when no explicit limit is given.
const DefaultSimLimit = 1_000_000

// Cycle describes the periodic tail of a simulation history: the state after
// Start steps is the first one to come back, and it does so every Len steps.
type Cycle struct {
	Start, Len int
}

// Index returns the history index holding the state after target steps.
func (c Cycle) Index(target int) int {
	if c.Len == 0 || target < c.Start+c.Len {
		return target
	}
	return c.Start + (target-c.Start)%c.Len
}

// simulation records every state produced by step, keyed by structural hash.
type simulation[S any] struct {
	step    func(S) S
	hash    func(*S) deephash.Sum
	history []S
	seen    map[deephash.Sum]int
}

func newSimulation[S any](init S, step func(S) S) *simulation[S] {
	s := &simulation[S]{
		step:    step,
		hash:    deephash.HasherForType[S](),
		history: []S{init},
		seen:    make(map[deephash.Sum]int),
	}
	s.seen[s.hash(&init)] = 0
	return s
}

// advance applies step once. It returns the cycle if the new state was seen
// before, in which case the state is not appended.
func (s *simulation[S]) advance() (Cycle, bool) {
	i := len(s.history)
	next := s.step(s.history[i-1])
	h := s.hash(&next)
	if j, ok := s.seen[h]; ok {
		return Cycle{Start: j, Len: i - j}, true
	}
	s.seen[h] = i
	s.history = append(s.history, next)
	return Cycle{}, false
}

// FindCycle applies step to init until a state repeats. history[i] is the
// state after i steps; it holds every distinct state up to the repeat.
//
// step must return a new state and leave its argument untouched. ok is false
// if limit steps (DefaultSimLimit when limit <= 0) pass without a repeat.
func FindCycle[S any](init S, step func(S) S, limit int) (history []S, c Cycle, ok bool) {
	if limit <= 0 {
		limit = DefaultSimLimit
	}
	sim := newSimulation(init, step)
	for len(sim.history) <= limit {
		if c, ok := sim.advance(); ok {
			return sim.history, c, true
		}
	}
	return sim.history, Cycle{}, false
}

// Simulate returns the state after target applications of step. States are
// simulated directly until either target is reached or a state repeats; in the
// latter case the answer is projected through the cycle, so targets far beyond
// the cycle length are cheap.
//
// ok is false if target is negative or if limit steps (DefaultSimLimit when
// limit <= 0) pass without reaching target or finding a repeat.
func Simulate[S any](init S, step func(S) S, target, limit int) (state S, ok bool) {
	if target < 0 {
		return state, false
	}
	if limit <= 0 {
		limit = DefaultSimLimit
	}
	sim := newSimulation(init, step)
	for len(sim.history) <= target {
		if len(sim.history) > limit {
			return state, false
		}
		if c, ok := sim.advance(); ok {
			return sim.history[c.Index(target)], true
		}
	}
	return sim.history[target], true
}
