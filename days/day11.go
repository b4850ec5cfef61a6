package days

import (
	"github.com/maisem/aoc2023"
)

var galaxyLegend = aoc.Legend[struct{}]{
	Background: ".",
	Cells:      map[rune]struct{}{'#': {}},
}

// emptyBefore returns, for every index in [0,n], how many indices below it
// are not in used.
func emptyBefore(used map[int]bool, n int) []int {
	out := make([]int, n+1)
	for i := 0; i < n; i++ {
		out[i+1] = out[i]
		if !used[i] {
			out[i+1]++
		}
	}
	return out
}

// galaxyDistances returns the sum of the manhattan distances between every
// pair of galaxies after each empty row and column grows to factor copies.
func galaxyDistances(m *aoc.Map[struct{}], factor int) int {
	galaxies := m.FindAll(func(aoc.Pt, struct{}) bool { return true })
	usedX, usedY := map[int]bool{}, map[int]bool{}
	for _, g := range galaxies {
		usedX[g.X] = true
		usedY[g.Y] = true
	}
	emptyX := emptyBefore(usedX, m.Width())
	emptyY := emptyBefore(usedY, m.Height())
	for i, g := range galaxies {
		galaxies[i] = aoc.Pt{
			X: g.X + emptyX[g.X]*(factor-1),
			Y: g.Y + emptyY[g.Y]*(factor-1),
		}
	}
	var dists []int
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			dists = append(dists, a.MDist(b))
		}
	}
	return aoc.Sum(dists...)
}

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s Solver) D11p1() (any, error) {
	m, err := aoc.ParseMap(s.Text(), galaxyLegend)
	if err != nil {
		return nil, err
	}
	return galaxyDistances(m, 2), nil
}

// want=82000210
func (s Solver) D11p2() (any, error) {
	m, err := aoc.ParseMap(s.Text(), galaxyLegend)
	if err != nil {
		return nil, err
	}
	return galaxyDistances(m, 1_000_000), nil
}
