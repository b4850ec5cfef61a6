package days

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
)

type digStep struct {
	dir  aoc.Direction
	dist int
}

var digDirs = map[string]aoc.Direction{
	"U": aoc.Up,
	"R": aoc.Right,
	"D": aoc.Down,
	"L": aoc.Left,
}

// hexDirs maps the last digit of a color code to a direction.
var hexDirs = [...]aoc.Direction{aoc.Right, aoc.Down, aoc.Left, aoc.Up}

// parseDigStep parses a line like "R 6 (#70c710)". If fromColor is set the
// step is read from the color code instead: five hex digits of distance and a
// direction digit.
func parseDigStep(line string, fromColor bool) (digStep, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return digStep{}, fmt.Errorf("bad dig step %q", line)
	}
	if !fromColor {
		d, ok := digDirs[f[0]]
		if !ok {
			return digStep{}, fmt.Errorf("bad direction in %q", line)
		}
		n, err := strconv.Atoi(f[1])
		if err != nil {
			return digStep{}, fmt.Errorf("bad distance in %q: %w", line, err)
		}
		return digStep{dir: d, dist: n}, nil
	}
	hex := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
	if len(hex) != 6 {
		return digStep{}, fmt.Errorf("bad color in %q", line)
	}
	n, err := strconv.ParseInt(hex[:5], 16, 64)
	if err != nil {
		return digStep{}, fmt.Errorf("bad color in %q: %w", line, err)
	}
	di := hex[5] - '0'
	if di >= byte(len(hexDirs)) {
		return digStep{}, fmt.Errorf("bad color direction in %q", line)
	}
	return digStep{dir: hexDirs[di], dist: int(n)}, nil
}

// lagoon returns the number of cubic meters dug out by following the plan,
// trench included.
func lagoon(steps []digStep) int {
	corners := make([]aoc.Pt, 0, len(steps)+1)
	var cur aoc.Pt
	corners = append(corners, cur)
	for _, st := range steps {
		cur = cur.Add(st.dir.Delta().Scale(st.dist))
		corners = append(corners, cur)
	}
	return aoc.TrenchArea(corners)
}

func (s Solver) digPlan(fromColor bool) ([]digStep, error) {
	var steps []digStep
	var errs []error
	s.ForLinesY(func(y int, line string) {
		st, err := parseDigStep(line, fromColor)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", y+1, err))
			return
		}
		steps = append(steps, st)
	})
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return steps, nil
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceff0)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s Solver) D18p1() (any, error) {
	steps, err := s.digPlan(false)
	if err != nil {
		return nil, err
	}
	return lagoon(steps), nil
}

// want=952408144115
func (s Solver) D18p2() (any, error) {
	steps, err := s.digPlan(true)
	if err != nil {
		return nil, err
	}
	return lagoon(steps), nil
}
