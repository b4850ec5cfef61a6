package aoc

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// ErrNoSolution is returned by solvers whose search space ran out before the
// goal was reached.
var ErrNoSolution = errors.New("aoc: no solution found")

// Search describes a state space. S is the full search state: two states are
// only considered the same node when all of their fields are equal, so
// anything that constrains future moves (direction, run length) belongs in S.
type Search[S comparable] struct {
	// Neighbors returns the states reachable in one move from s. It is
	// responsible for bounds and movement rules.
	Neighbors func(s S) []S

	// Cost returns the non-negative cost of moving from one state to the
	// next. Nil means every move costs 1.
	Cost func(from, to S) int

	// Heuristic estimates the remaining cost from s to a goal. It must never
	// overestimate, and must not drop by more than the cost of a move.
	// Nil means 0.
	Heuristic func(s S) int

	IsGoal func(s S) bool
}

func (s Search[S]) cost(from, to S) int {
	if s.Cost == nil {
		return 1
	}
	return s.Cost(from, to)
}

func (s Search[S]) estimate(v S) int {
	if s.Heuristic == nil {
		return 0
	}
	return s.Heuristic(v)
}

// Shortest returns the cost of the cheapest path from any of starts to a goal
// state. It uses BFS when every move has the same cost.
func (s Search[S]) Shortest(starts ...S) (int, bool) {
	if s.Cost == nil {
		return s.BFS(starts...)
	}
	return s.Cheapest(starts...)
}

type depthState[S any] struct {
	v     S
	depth int
}

// BFS returns the number of moves to the nearest goal state.
func (s Search[S]) BFS(starts ...S) (int, bool) {
	seen := mapset.New[S]()
	var q Queue[depthState[S]]
	for _, st := range starts {
		if seen.Has(st) {
			continue
		}
		seen.Put(st)
		q.Push(depthState[S]{v: st})
	}
	for cur, ok := q.Pop(); ok; cur, ok = q.Pop() {
		if s.IsGoal(cur.v) {
			return cur.depth, true
		}
		for _, n := range s.Neighbors(cur.v) {
			if seen.Has(n) {
				continue
			}
			seen.Put(n)
			q.Push(depthState[S]{v: n, depth: cur.depth + 1})
		}
	}
	return 0, false
}

type costState[S any] struct {
	v    S
	cost int
}

// Cheapest runs A* (Dijkstra when Heuristic is nil) and returns the lowest
// total cost to a goal state.
//
// Each state has at most one heap entry. Finding a cheaper route to a queued
// state lowers its priority in place.
func (s Search[S]) Cheapest(starts ...S) (int, bool) {
	open := make(map[S]*PQI[costState[S]])
	done := mapset.New[S]()
	pq := MinQueue[costState[S]]()
	for _, st := range starts {
		if _, ok := open[st]; ok {
			continue
		}
		it := &PQI[costState[S]]{V: costState[S]{v: st}, P: s.estimate(st)}
		open[st] = it
		pq.Push(it)
	}
	for pq.Len() > 0 {
		cur := pq.Pop().V
		delete(open, cur.v)
		done.Put(cur.v)
		if s.IsGoal(cur.v) {
			return cur.cost, true
		}
		for _, n := range s.Neighbors(cur.v) {
			if done.Has(n) {
				continue
			}
			c := cur.cost + s.cost(cur.v, n)
			if it, ok := open[n]; ok {
				if it.V.cost <= c {
					continue
				}
				it.V.cost = c
				it.P = c + s.estimate(n)
				pq.Update(it)
				continue
			}
			it := &PQI[costState[S]]{V: costState[S]{v: n, cost: c}, P: c + s.estimate(n)}
			open[n] = it
			pq.Push(it)
		}
	}
	return 0, false
}

// Longest returns the cost of the most expensive simple path (no state
// visited twice) from any of starts to a goal state. Goal states end a path.
// It is exponential in general and meant for sparse, corridor-like spaces.
func (s Search[S]) Longest(starts ...S) (int, bool) {
	onPath := mapset.New[S]()
	best, found := 0, false

	var walk func(v S, acc int)
	walk = func(v S, acc int) {
		if s.IsGoal(v) {
			if !found || acc > best {
				best, found = acc, true
			}
			return
		}
		onPath.Put(v)
		for _, n := range s.Neighbors(v) {
			if onPath.Has(n) {
				continue
			}
			walk(n, acc+s.cost(v, n))
		}
		onPath.Remove(v)
	}
	for _, st := range starts {
		walk(st, 0)
	}
	return best, found
}

// Reach returns every state reachable from starts mapped to its BFS depth.
// States are not expanded past depth limit; a negative limit means no limit.
func Reach[S comparable](starts []S, neighbors func(S) []S, limit int) map[S]int {
	dist := make(map[S]int)
	var q Queue[S]
	for _, st := range starts {
		if _, ok := dist[st]; ok {
			continue
		}
		dist[st] = 0
		q.Push(st)
	}
	q.While(func(v S) bool {
		d := dist[v]
		if limit >= 0 && d >= limit {
			return true
		}
		for _, n := range neighbors(v) {
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = d + 1
			q.Push(n)
		}
		return true
	})
	return dist
}

// Regions splits cells into connected regions. Two cells are connected when
// one is returned by neighbors of the other; neighbors outside cells are
// ignored. Regions are returned in the order of their first cell in cells.
func Regions[S comparable](cells []S, neighbors func(S) []S) [][]S {
	in := mapset.New[S]()
	for _, c := range cells {
		in.Put(c)
	}
	seen := mapset.New[S]()
	var out [][]S
	for _, c := range cells {
		if seen.Has(c) {
			continue
		}
		seen.Put(c)
		var region []S
		var st Stack[S]
		st.Push(c)
		st.While(func(v S) bool {
			region = append(region, v)
			for _, n := range neighbors(v) {
				if !in.Has(n) || seen.Has(n) {
					continue
				}
				seen.Put(n)
				st.Push(n)
			}
			return true
		})
		out = append(out, region)
	}
	return out
}
