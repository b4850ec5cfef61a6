package days

import (
	"github.com/maisem/aoc2023"
)

type rock uint8

const (
	cubeRock rock = iota
	roundRock
)

var rockLegend = aoc.Legend[rock]{
	Background: ".",
	Cells: map[rune]rock{
		'#': cubeRock,
		'O': roundRock,
	},
}

// rockSet is the set of round rock positions; it is the only part of the
// dish that changes.
type rockSet map[aoc.Pt]bool

// dish holds the fixed cube rocks.
type dish struct {
	cubes *aoc.Map[rock]
	order map[aoc.Direction][]aoc.Pt
}

func parseDish(text string) (*dish, rockSet, error) {
	m, err := aoc.ParseMap(text, rockLegend)
	if err != nil {
		return nil, nil, err
	}
	round := make(rockSet)
	for _, p := range m.FindAll(func(_ aoc.Pt, r rock) bool { return r == roundRock }) {
		round[p] = true
		m.Delete(p)
	}
	d := &dish{
		cubes: m,
		order: make(map[aoc.Direction][]aoc.Pt),
	}
	for _, dir := range aoc.Directions {
		d.order[dir] = d.tiltOrder(dir)
	}
	return d, round, nil
}

// tiltOrder lists every cell starting with those closest to the edge rocks
// roll towards when tilting in dir.
func (d *dish) tiltOrder(dir aoc.Direction) []aoc.Pt {
	w, h := d.cubes.Width(), d.cubes.Height()
	out := make([]aoc.Pt, 0, w*h)
	switch dir {
	case aoc.Up, aoc.Down:
		for i := 0; i < h; i++ {
			y := i
			if dir == aoc.Down {
				y = h - 1 - i
			}
			for x := 0; x < w; x++ {
				out = append(out, aoc.Pt{X: x, Y: y})
			}
		}
	case aoc.Left, aoc.Right:
		for i := 0; i < w; i++ {
			x := i
			if dir == aoc.Right {
				x = w - 1 - i
			}
			for y := 0; y < h; y++ {
				out = append(out, aoc.Pt{X: x, Y: y})
			}
		}
	}
	return out
}

// tilt rolls every round rock as far as it goes in dir. round is not
// modified.
func (d *dish) tilt(round rockSet, dir aoc.Direction) rockSet {
	next := make(rockSet, len(round))
	delta := dir.Delta()
	for _, p := range d.order[dir] {
		if !round[p] {
			continue
		}
		for {
			n := p.Add(delta)
			if !d.cubes.InBounds(n) || d.cubes.Has(n) || next[n] {
				break
			}
			p = n
		}
		next[p] = true
	}
	return next
}

// spin tilts north, west, south, then east.
func (d *dish) spin(round rockSet) rockSet {
	for _, dir := range []aoc.Direction{aoc.Up, aoc.Left, aoc.Down, aoc.Right} {
		round = d.tilt(round, dir)
	}
	return round
}

// load is the total load on the north support beams.
func (d *dish) load(round rockSet) int {
	n := 0
	for p := range round {
		n += d.cubes.Height() - p.Y
	}
	return n
}

func (d *dish) render(round rockSet) string {
	m := d.cubes.Clone()
	for p := range round {
		m.Set(p, roundRock)
	}
	return m.Render(func(r rock) rune {
		if r == roundRock {
			return 'O'
		}
		return '#'
	})
}

/*
want=136

OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....
*/
func (s Solver) D14p1() (any, error) {
	d, round, err := parseDish(s.Text())
	if err != nil {
		return nil, err
	}
	tilted := d.tilt(round, aoc.Up)
	s.Debugf("tilted north:\n%s", d.render(tilted))
	return d.load(tilted), nil
}

// want=64
func (s Solver) D14p2() (any, error) {
	d, round, err := parseDish(s.Text())
	if err != nil {
		return nil, err
	}
	final, ok := aoc.Simulate(round, d.spin, 1_000_000_000, 0)
	if !ok {
		return nil, aoc.ErrNoSolution
	}
	return d.load(final), nil
}
