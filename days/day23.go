package days

import (
	"errors"

	"github.com/maisem/aoc2023"
)

type trail uint8

const (
	trailForest trail = iota
	trailSlopeUp
	trailSlopeRight
	trailSlopeDown
	trailSlopeLeft
)

var trailLegend = aoc.Legend[trail]{
	Background: ".",
	Cells: map[rune]trail{
		'#': trailForest,
		'^': trailSlopeUp,
		'>': trailSlopeRight,
		'v': trailSlopeDown,
		'<': trailSlopeLeft,
	},
}

// slope returns the only direction that may be taken when leaving t.
func (t trail) slope() (aoc.Direction, bool) {
	switch t {
	case trailSlopeUp:
		return aoc.Up, true
	case trailSlopeRight:
		return aoc.Right, true
	case trailSlopeDown:
		return aoc.Down, true
	case trailSlopeLeft:
		return aoc.Left, true
	}
	return 0, false
}

type hikingMap struct {
	m          *aoc.Map[trail]
	start, end aoc.Pt
}

func parseHikingMap(text string) (*hikingMap, error) {
	m, err := aoc.ParseMap(text, trailLegend)
	if err != nil {
		return nil, err
	}
	h := &hikingMap{m: m}
	var okStart, okEnd bool
	for x := 0; x < m.Width(); x++ {
		if p := (aoc.Pt{X: x}); !okStart && !m.Has(p) {
			h.start, okStart = p, true
		}
		if p := (aoc.Pt{X: x, Y: m.Height() - 1}); !okEnd && !m.Has(p) {
			h.end, okEnd = p, true
		}
	}
	if !okStart || !okEnd {
		return nil, errors.New("no open path through the top and bottom rows")
	}
	return h, nil
}

func (h *hikingMap) open(p aoc.Pt) bool {
	v, ok := h.m.Get(p)
	return !ok || v != trailForest
}

// next returns the tiles reachable in one step from p. Slopes only lead
// downhill when icy is set.
func (h *hikingMap) next(icy bool) func(aoc.Pt) []aoc.Pt {
	around := h.m.OpenNeighbors(h.open)
	return func(p aoc.Pt) []aoc.Pt {
		if !icy {
			return around(p)
		}
		v, _ := h.m.Get(p)
		if d, ok := v.slope(); ok {
			n := p.Add(d.Delta())
			if h.m.InBounds(n) && h.open(n) {
				return []aoc.Pt{n}
			}
			return nil
		}
		return around(p)
	}
}

// longestIcy walks cell by cell, so it is only used while slopes keep the
// choices few.
func (h *hikingMap) longestIcy() (int, bool) {
	srch := aoc.Search[aoc.Pt]{
		Neighbors: h.next(true),
		IsGoal:    func(p aoc.Pt) bool { return p == h.end },
	}
	return srch.Longest(h.start)
}

// longestDry collapses the corridors into a graph of junctions first.
func (h *hikingMap) longestDry() (int, bool) {
	g := h.m.ToGraph(h.start, false, h.open, h.end)
	if !g.ReachableNodes(h.start)[h.end] {
		return 0, false
	}
	return g.LongestPath(h.start, h.end)
}

func (s Solver) solve23(icy bool) (any, error) {
	h, err := parseHikingMap(s.Text())
	if err != nil {
		return nil, err
	}
	longest := h.longestDry
	if icy {
		longest = h.longestIcy
	}
	n, ok := longest()
	if !ok {
		return nil, aoc.ErrNoSolution
	}
	return n, nil
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func (s Solver) D23p1() (any, error) {
	return s.solve23(true)
}

// want=154
func (s Solver) D23p2() (any, error) {
	return s.solve23(false)
}
