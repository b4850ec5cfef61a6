package aoc

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// Scale returns p with both components multiplied by n.
func (p Pt2[T]) Scale(n T) Pt2[T] {
	return Pt2[T]{p.X * n, p.Y * n}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Neighbors4 returns the four orthogonal neighbors of p in Direction order.
// The points are not bounds checked.
func Neighbors4(p Pt) []Pt {
	out := make([]Pt, 0, 4)
	for _, d := range Directions {
		out = append(out, p.Add(d.Delta()))
	}
	return out
}

// StandardizePt maps p onto the [0,size) tile it falls into when the grid
// repeats infinitely in every direction.
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every Direction clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta is the unit step taken when moving in d. Y grows downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Step moves p one cell forward in its direction.
func (p Path) Step() Path {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	return p
}

// Face returns p pointing in d without moving.
func (p Path) Face(d Direction) Path {
	p.Dir = d
	return p
}

// ParseError reports a character outside of a grid's alphabet.
type ParseError struct {
	Line, Col int // zero-based
	Char      rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: unexpected %q at line %d col %d", e.Char, e.Line+1, e.Col+1)
}

// Legend maps the characters of a grid to cell values. Runes in Background
// are left out of the map.
type Legend[T any] struct {
	Background string
	Cells      map[rune]T
}

// DigitLegend maps '0'..'9' to their values. It has no background.
func DigitLegend() Legend[int] {
	l := Legend[int]{
		Cells: make(map[rune]int, 10),
	}
	for r := '0'; r <= '9'; r++ {
		l.Cells[r] = Digit(r)
	}
	return l
}

// Map is a sparse grid. Only non-background cells are stored; any point
// inside Size that is missing from Cells is background.
//
// When Wrap is set the grid tiles the plane: Get accepts any point and reduces
// it onto the original tile.
type Map[T any] struct {
	Cells map[Pt]T
	Size  Pt
	Wrap  bool
}

// NewMap returns an empty map of the given size.
func NewMap[T any](size Pt) *Map[T] {
	return &Map[T]{
		Cells: make(map[Pt]T),
		Size:  size,
	}
}

// ParseMap parses text into a Map using legend. The width is one past the
// largest column seen on any line and the height is the number of lines.
func ParseMap[T any](text string, legend Legend[T]) (*Map[T], error) {
	m := NewMap[T](Pt{})
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return m, nil
	}
	for y, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		x := -1
		for _, r := range line {
			x++
			if x+1 > m.Size.X {
				m.Size.X = x + 1
			}
			if strings.ContainsRune(legend.Background, r) {
				continue
			}
			v, ok := legend.Cells[r]
			if !ok {
				return nil, &ParseError{Line: y, Col: x, Char: r}
			}
			m.Cells[Pt{x, y}] = v
		}
		m.Size.Y = y + 1
	}
	return m, nil
}

func (m *Map[T]) Width() int  { return m.Size.X }
func (m *Map[T]) Height() int { return m.Size.Y }

// InBounds reports whether p lies on the grid. Every point is in bounds on a
// wrapping map.
func (m *Map[T]) InBounds(p Pt) bool {
	if m.Wrap {
		return m.Size.X > 0 && m.Size.Y > 0
	}
	return p.X >= 0 && p.Y >= 0 && p.X < m.Size.X && p.Y < m.Size.Y
}

// Get returns the cell at p. ok is false for background and out of bounds
// points.
func (m *Map[T]) Get(p Pt) (v T, ok bool) {
	if !m.InBounds(p) {
		return v, false
	}
	if m.Wrap {
		p = StandardizePt(p, m.Size)
	}
	v, ok = m.Cells[p]
	return v, ok
}

// Has reports whether p holds a non-background cell.
func (m *Map[T]) Has(p Pt) bool {
	_, ok := m.Get(p)
	return ok
}

func (m *Map[T]) Set(p Pt, v T) {
	m.Cells[p] = v
}

func (m *Map[T]) Delete(p Pt) {
	delete(m.Cells, p)
}

func (m *Map[T]) Clone() *Map[T] {
	return &Map[T]{
		Cells: maps.Clone(m.Cells),
		Size:  m.Size,
		Wrap:  m.Wrap,
	}
}

// ForEach calls f for every stored cell in row-major order.
func (m *Map[T]) ForEach(f func(Pt, T) (keepGoing bool)) {
	for y := 0; y < m.Size.Y; y++ {
		for x := 0; x < m.Size.X; x++ {
			p := Pt{x, y}
			if v, ok := m.Cells[p]; ok && !f(p, v) {
				return
			}
		}
	}
}

// Find returns the first cell in row-major order matching match.
func (m *Map[T]) Find(match func(Pt, T) bool) (Pt, bool) {
	var found Pt
	var ok bool
	m.ForEach(func(p Pt, v T) bool {
		if match(p, v) {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}

// FindAll returns every cell matching match in row-major order.
func (m *Map[T]) FindAll(match func(Pt, T) bool) []Pt {
	var out []Pt
	m.ForEach(func(p Pt, v T) bool {
		if match(p, v) {
			out = append(out, p)
		}
		return true
	})
	return out
}

// Move advances p by one cell. It reports false if that leaves the grid.
func (m *Map[T]) Move(p Path) (Path, bool) {
	p = p.Step()
	if !m.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

// EdgePaths returns every border cell paired with the direction pointing into
// the grid.
func (m *Map[T]) EdgePaths() []Path {
	size := m.Size
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// Render draws the grid back to text using sym for stored cells and '.' for
// background.
func (m *Map[T]) Render(sym func(T) rune) string {
	var sb strings.Builder
	for y := 0; y < m.Size.Y; y++ {
		for x := 0; x < m.Size.X; x++ {
			if v, ok := m.Cells[Pt{x, y}]; ok {
				sb.WriteRune(sym(v))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FloodFill returns the number of points reachable from start through
// orthogonal moves onto points for which open returns true. start is counted.
func (m *Map[T]) FloodFill(start Pt, open func(Pt) bool) int {
	return len(Reach([]Pt{start}, m.OpenNeighbors(open), -1))
}

// OpenNeighbors returns a neighbor function yielding the in-bounds orthogonal
// neighbors of a point accepted by open.
func (m *Map[T]) OpenNeighbors(open func(Pt) bool) func(Pt) []Pt {
	return func(p Pt) []Pt {
		var out []Pt
		for _, n := range Neighbors4(p) {
			if m.InBounds(n) && open(n) {
				out = append(out, n)
			}
		}
		return out
	}
}

// ToGraph converts the cells reachable from start into a graph. If
// allowDiagonals is true, then diagonal neighbors are included. Only points
// for which open returns true become nodes. Corridors are collapsed into
// single weighted edges; start and the points in keep always stay nodes.
func (m *Map[T]) ToGraph(start Pt, allowDiagonals bool, open func(Pt) bool, keep ...Pt) Graph[Pt] {
	var g Graph[Pt]
	g.Nodes = make(map[Pt]bool)
	g.Edges = make(map[Pt]map[Pt]int)

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	q := NewQueue[Pt](start)
	q.While(func(p1 Pt) bool {
		if _, ok := g.Nodes[p1]; ok {
			return true
		}
		g.AddNode(p1)
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if !m.InBounds(p2) || !open(p2) {
				return true
			}
			if _, ok := g.Nodes[p2]; ok {
				return true // already visited
			}
			q.Push(p2)
			if g.Edges[p2] == nil {
				g.Edges[p2] = make(map[Pt]int)
			}
			if g.Edges[p1] == nil {
				g.Edges[p1] = make(map[Pt]int)
			}
			g.Edges[p1][p2] = 1
			g.Edges[p2][p1] = 1
			return true
		})
		return true
	})
	g.Collapse(append(keep[:len(keep):len(keep)], start)...)
	return g
}
