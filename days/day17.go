package days

import (
	"github.com/maisem/aoc2023"
	"golang.org/x/exp/maps"
)

// crucible is a search state: where the crucible is, which way it faces, and
// how many blocks it has moved in a straight line.
type crucible struct {
	Pos aoc.Pt
	Dir aoc.Direction
	Run int
}

// minHeatLoss returns the least heat lost moving a crucible from the top-left
// block to the bottom-right one. The crucible must move at least minRun blocks
// before turning or stopping and may not move more than maxRun in a line.
func minHeatLoss(m *aoc.Map[int], minRun, maxRun int) (int, bool) {
	target := aoc.Pt{X: m.Width() - 1, Y: m.Height() - 1}
	// Each block still to enter costs at least minCost.
	minCost := 0
	for i, v := range maps.Values(m.Cells) {
		if i == 0 || v < minCost {
			minCost = v
		}
	}
	srch := aoc.Search[crucible]{
		Neighbors: func(c crucible) []crucible {
			var out []crucible
			for _, d := range []aoc.Direction{c.Dir, c.Dir.Turn(true), c.Dir.Turn(false)} {
				run := 1
				if d == c.Dir {
					run = c.Run + 1
					if run > maxRun {
						continue
					}
				} else if c.Run < minRun {
					continue
				}
				n := c.Pos.Add(d.Delta())
				if !m.Has(n) {
					continue
				}
				out = append(out, crucible{Pos: n, Dir: d, Run: run})
			}
			return out
		},
		Cost: func(_, to crucible) int {
			v, _ := m.Get(to.Pos)
			return v
		},
		Heuristic: func(c crucible) int {
			return c.Pos.MDist(target) * minCost
		},
		IsGoal: func(c crucible) bool {
			return c.Pos == target && c.Run >= minRun
		},
	}
	return srch.Shortest(
		crucible{Dir: aoc.Right},
		crucible{Dir: aoc.Down},
	)
}

func (s Solver) heatMap() (*aoc.Map[int], error) {
	return aoc.ParseMap(s.Text(), aoc.DigitLegend())
}

func (s Solver) solve17(minRun, maxRun int) (any, error) {
	m, err := s.heatMap()
	if err != nil {
		return nil, err
	}
	loss, ok := minHeatLoss(m, minRun, maxRun)
	if !ok {
		return nil, aoc.ErrNoSolution
	}
	return loss, nil
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s Solver) D17p1() (any, error) {
	return s.solve17(1, 3)
}

// want=94
func (s Solver) D17p2() (any, error) {
	return s.solve17(4, 10)
}
