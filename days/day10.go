package days

import (
	"fmt"

	"github.com/maisem/aoc2023"
)

type pipe uint8

const (
	pipeNS pipe = iota // |
	pipeWE             // -
	pipeNE             // L
	pipeNW             // J
	pipeSW             // 7
	pipeSE             // F
	pipeStart          // S, resolved after parsing
)

var pipeLegend = aoc.Legend[pipe]{
	Background: ".",
	Cells: map[rune]pipe{
		'|': pipeNS,
		'-': pipeWE,
		'L': pipeNE,
		'J': pipeNW,
		'7': pipeSW,
		'F': pipeSE,
		'S': pipeStart,
	},
}

// ends returns the two sides a pipe opens onto.
func (p pipe) ends() [2]aoc.Direction {
	switch p {
	case pipeNS:
		return [2]aoc.Direction{aoc.Up, aoc.Down}
	case pipeWE:
		return [2]aoc.Direction{aoc.Left, aoc.Right}
	case pipeNE:
		return [2]aoc.Direction{aoc.Up, aoc.Right}
	case pipeNW:
		return [2]aoc.Direction{aoc.Up, aoc.Left}
	case pipeSW:
		return [2]aoc.Direction{aoc.Down, aoc.Left}
	case pipeSE:
		return [2]aoc.Direction{aoc.Down, aoc.Right}
	}
	panic(fmt.Sprintf("pipe %d has no ends", p))
}

// exit returns the direction of travel after entering p while moving in dir.
func (p pipe) exit(dir aoc.Direction) (aoc.Direction, bool) {
	if p == pipeStart {
		return 0, false
	}
	from := dir.Opposite()
	e := p.ends()
	switch from {
	case e[0]:
		return e[1], true
	case e[1]:
		return e[0], true
	}
	return 0, false
}

// opensNorth reports whether crossing p on a horizontal scanline flips
// between inside and outside of the loop.
func (p pipe) opensNorth() bool {
	return p == pipeNS || p == pipeNE || p == pipeNW
}

type pipeMaze struct {
	m     *aoc.Map[pipe]
	start aoc.Pt
}

func parsePipeMaze(text string) (*pipeMaze, error) {
	m, err := aoc.ParseMap(text, pipeLegend)
	if err != nil {
		return nil, err
	}
	start, ok := m.Find(func(_ aoc.Pt, p pipe) bool { return p == pipeStart })
	if !ok {
		return nil, errNoStart
	}
	for _, cand := range []pipe{pipeNS, pipeWE, pipeNE, pipeNW, pipeSW, pipeSE} {
		connected := true
		for _, d := range cand.ends() {
			n, ok := m.Get(start.Add(d.Delta()))
			if !ok {
				connected = false
				break
			}
			if _, ok := n.exit(d); !ok {
				connected = false
				break
			}
		}
		if connected {
			m.Set(start, cand)
			return &pipeMaze{m: m, start: start}, nil
		}
	}
	return nil, fmt.Errorf("cannot determine pipe under start %v", start)
}

// loop returns the cells of the loop through the start in walking order.
func (pm *pipeMaze) loop() ([]aoc.Pt, error) {
	sp, _ := pm.m.Get(pm.start)
	pos, dir := pm.start, sp.ends()[0]
	var path []aoc.Pt
	for len(path) <= len(pm.m.Cells) {
		path = append(path, pos)
		pos = pos.Add(dir.Delta())
		if pos == pm.start {
			return path, nil
		}
		p, ok := pm.m.Get(pos)
		if !ok {
			break
		}
		if dir, ok = p.exit(dir); !ok {
			break
		}
	}
	return nil, fmt.Errorf("loop from %v: %w", pm.start, aoc.ErrNoSolution)
}

// enclosed counts the cells inside the loop by scanning each row and flipping
// at every loop pipe that connects north.
func (pm *pipeMaze) enclosed(path []aoc.Pt) int {
	onLoop := make(map[aoc.Pt]bool, len(path))
	for _, p := range path {
		onLoop[p] = true
	}
	n := 0
	for y := 0; y < pm.m.Height(); y++ {
		inside := false
		for x := 0; x < pm.m.Width(); x++ {
			p := aoc.Pt{X: x, Y: y}
			if !onLoop[p] {
				if inside {
					n++
				}
				continue
			}
			if v, _ := pm.m.Get(p); v.opensNorth() {
				inside = !inside
			}
		}
	}
	return n
}

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s Solver) D10p1() (any, error) {
	pm, err := parsePipeMaze(s.Text())
	if err != nil {
		return nil, err
	}
	path, err := pm.loop()
	if err != nil {
		return nil, err
	}
	return len(path) / 2, nil
}

/*
want=10

FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
*/
func (s Solver) D10p2() (any, error) {
	pm, err := parsePipeMaze(s.Text())
	if err != nil {
		return nil, err
	}
	path, err := pm.loop()
	if err != nil {
		return nil, err
	}
	return pm.enclosed(path), nil
}
