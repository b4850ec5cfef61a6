package days

import (
	"cmp"
	"slices"
	"unicode"

	"github.com/maisem/aoc2023"
)

// schematicLegend keeps every printable character but '.' as itself.
var schematicLegend = func() aoc.Legend[rune] {
	l := aoc.Legend[rune]{
		Background: ".",
		Cells:      make(map[rune]rune),
	}
	for r := '!'; r <= '~'; r++ {
		if r != '.' {
			l.Cells[r] = r
		}
	}
	return l
}()

type schematic struct {
	m    *aoc.Map[rune]
	nums []int
	// owner maps each digit cell to its index in nums.
	owner map[aoc.Pt]int
}

func parseSchematic(text string) (*schematic, error) {
	m, err := aoc.ParseMap(text, schematicLegend)
	if err != nil {
		return nil, err
	}
	sc := &schematic{m: m, owner: make(map[aoc.Pt]int)}
	digits := m.FindAll(func(_ aoc.Pt, r rune) bool { return unicode.IsDigit(r) })
	sideways := func(p aoc.Pt) []aoc.Pt {
		return []aoc.Pt{p.Add(aoc.Left.Delta()), p.Add(aoc.Right.Delta())}
	}
	for _, run := range aoc.Regions(digits, sideways) {
		slices.SortFunc(run, func(a, b aoc.Pt) int { return cmp.Compare(a.X, b.X) })
		n := 0
		for _, p := range run {
			r, _ := m.Get(p)
			n = n*10 + aoc.Digit(r)
			sc.owner[p] = len(sc.nums)
		}
		sc.nums = append(sc.nums, n)
	}
	return sc, nil
}

// symbols returns the cells holding something other than a digit.
func (sc *schematic) symbols() []aoc.Pt {
	return sc.m.FindAll(func(_ aoc.Pt, r rune) bool { return !unicode.IsDigit(r) })
}

// adjacent returns the indexes of the numbers touching any of ps, diagonals
// included. Each number is reported once.
func (sc *schematic) adjacent(ps ...aoc.Pt) []int {
	var out []int
	seen := make(map[int]bool)
	for _, p := range ps {
		p.ForNeighbors(func(n aoc.Pt) bool {
			if i, ok := sc.owner[n]; ok && !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
			return true
		})
	}
	return out
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s Solver) D3p1() (any, error) {
	sc, err := parseSchematic(s.Text())
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, i := range sc.adjacent(sc.symbols()...) {
		sum += sc.nums[i]
	}
	return sum, nil
}

// want=467835
func (s Solver) D3p2() (any, error) {
	sc, err := parseSchematic(s.Text())
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, p := range sc.symbols() {
		if r, _ := sc.m.Get(p); r != '*' {
			continue
		}
		if adj := sc.adjacent(p); len(adj) == 2 {
			sum += sc.nums[adj[0]] * sc.nums[adj[1]]
		}
	}
	return sum, nil
}
