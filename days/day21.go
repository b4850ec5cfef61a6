package days

import (
	"fmt"

	"github.com/maisem/aoc2023"
)

type plot uint8

const (
	plotRock plot = iota
	plotStart
)

var gardenLegend = aoc.Legend[plot]{
	Background: ".",
	Cells: map[rune]plot{
		'#': plotRock,
		'S': plotStart,
	},
}

type garden struct {
	m     *aoc.Map[plot] // rocks only
	start aoc.Pt
}

func parseGarden(text string) (*garden, error) {
	m, err := aoc.ParseMap(text, gardenLegend)
	if err != nil {
		return nil, err
	}
	start, ok := m.Find(func(_ aoc.Pt, v plot) bool { return v == plotStart })
	if !ok {
		return nil, errNoStart
	}
	m.Delete(start)
	return &garden{m: m, start: start}, nil
}

// plots returns the number of garden plots the elf can stand on after
// exactly steps steps. If infinite is set the map repeats in every direction.
func (g *garden) plots(steps int, infinite bool) int {
	m := *g.m
	m.Wrap = infinite
	open := func(p aoc.Pt) bool { return !m.Has(p) }
	n := 0
	for _, d := range aoc.Reach([]aoc.Pt{g.start}, m.OpenNeighbors(open), steps) {
		if d%2 == steps%2 {
			n++
		}
	}
	return n
}

// plotsFar returns plots(steps, true) for step counts too large to walk. The
// count grows quadratically in the number of whole tiles crossed, so it is
// sampled at three tile boundaries and extrapolated from there. The map must
// be square.
func (g *garden) plotsFar(steps int) (int, error) {
	w := g.m.Width()
	if w == 0 || w != g.m.Height() {
		return 0, fmt.Errorf("garden is %dx%d; want square", w, g.m.Height())
	}
	rem, tiles := steps%w, steps/w
	xs := []int{
		g.plots(rem, true),
		g.plots(rem+w, true),
		g.plots(rem+2*w, true),
	}
	if tiles < len(xs) {
		return xs[tiles], nil
	}
	for i := len(xs); i <= tiles; i++ {
		next := aoc.Extrapolate(xs, true)
		copy(xs, xs[1:])
		xs[len(xs)-1] = next
	}
	return xs[len(xs)-1], nil
}

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s Solver) D21p1() (any, error) {
	g, err := parseGarden(s.Text())
	if err != nil {
		return nil, err
	}
	steps := 64
	if s.SampleMode {
		steps = 6
	}
	return g.plots(steps, false), nil
}

func (s Solver) D21p2() (any, error) {
	g, err := parseGarden(s.Text())
	if err != nil {
		return nil, err
	}
	open := func(p aoc.Pt) bool { return !g.m.Has(p) }
	s.Debug("plots reachable within one tile: ", g.m.FloodFill(g.start, open))
	return g.plotsFar(26501365)
}
