package days

import (
	"github.com/maisem/aoc2023"
)

type mirror uint8

const (
	splitterNS mirror = iota // |
	splitterWE               // -
	mirrorBack               // \
	mirrorFwd                // /
)

var mirrorLegend = aoc.Legend[mirror]{
	Background: ".",
	Cells: map[rune]mirror{
		'|':  splitterNS,
		'-':  splitterWE,
		'\\': mirrorBack,
		'/':  mirrorFwd,
	},
}

// deflect returns the directions a beam travelling in d leaves the cell in.
func (m mirror) deflect(d aoc.Direction) []aoc.Direction {
	vertical := d == aoc.Up || d == aoc.Down
	switch m {
	case splitterNS:
		if !vertical {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case splitterWE:
		if vertical {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	case mirrorFwd:
		if vertical {
			return []aoc.Direction{d.Turn(true)}
		}
		return []aoc.Direction{d.Turn(false)}
	case mirrorBack:
		if vertical {
			return []aoc.Direction{d.Turn(false)}
		}
		return []aoc.Direction{d.Turn(true)}
	}
	return []aoc.Direction{d}
}

type contraption struct {
	m *aoc.Map[mirror]
}

// beams returns the states that follow a beam at b.
func (c contraption) beams(b aoc.Path) []aoc.Path {
	dirs := []aoc.Direction{b.Dir}
	if v, ok := c.m.Get(b.Pt); ok {
		dirs = v.deflect(b.Dir)
	}
	var out []aoc.Path
	for _, d := range dirs {
		if n, ok := c.m.Move(b.Face(d)); ok {
			out = append(out, n)
		}
	}
	return out
}

// energized counts the cells a beam entering at start passes through.
func (c contraption) energized(start aoc.Path) int {
	seen := aoc.Reach([]aoc.Path{start}, c.beams, -1)
	cells := make(map[aoc.Pt]bool)
	for b := range seen {
		cells[b.Pt] = true
	}
	return len(cells)
}

func (s Solver) contraption() (contraption, error) {
	m, err := aoc.ParseMap(s.Text(), mirrorLegend)
	if err != nil {
		return contraption{}, err
	}
	return contraption{m: m}, nil
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
|....-|..\
..//.|....
*/
func (s Solver) D16p1() (any, error) {
	c, err := s.contraption()
	if err != nil {
		return nil, err
	}
	return c.energized(aoc.Path{Dir: aoc.Right}), nil
}

// want=51
func (s Solver) D16p2() (any, error) {
	c, err := s.contraption()
	if err != nil {
		return nil, err
	}
	best := 0
	for _, p := range c.m.EdgePaths() {
		best = max(best, c.energized(p))
	}
	s.Debugf("best of %d entry points: %d", len(c.m.EdgePaths()), best)
	return best, nil
}
