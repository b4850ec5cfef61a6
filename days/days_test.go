package days

import (
	"errors"
	"strings"
	"testing"

	"github.com/maisem/aoc2023"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	require.NoError(t, aoc.CheckSamples(Sources, New()))
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name         string
		day          int
		input        string
		wantA, wantB any
	}{
		{
			name:  "gear between equal numbers",
			day:   3,
			input: "5*5\n",
			wantA: 10,
			wantB: 25,
		},
		{
			name:  "square loop",
			day:   10,
			input: ".....\n.S-7.\n.|.|.\n.L-J.\n.....\n",
			wantA: 4,
			wantB: 1,
		},
		{
			name:  "loop among junk pipes",
			day:   10,
			input: "-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF\n",
			wantA: 4,
			wantB: 1,
		},
		{
			name: "squeezed loop",
			day:  10,
			input: `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`,
			wantA: 22,
			wantB: 4,
		},
		{
			name:  "single spring record",
			day:   12,
			input: "?###???????? 3,2,1\n",
			wantA: 10,
			wantB: 506250,
		},
		{
			name:  "empty lagoon square",
			day:   18,
			input: "R 2 (#000020)\nD 2 (#000021)\nL 2 (#000022)\nU 2 (#000023)\n",
			wantA: 9,
			wantB: 9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, err := aoc.Solve(New(), tt.day, []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, a, "part 1")
			assert.Equal(t, tt.wantB, b, "part 2")
		})
	}
}

func TestSchematic(t *testing.T) {
	sc, err := parseSchematic("..#..\n.12..\n..+45\n7....\n")
	require.NoError(t, err)
	assert.Equal(t, []int{12, 45, 7}, sc.nums)
	assert.Equal(t, 1, sc.owner[aoc.Pt{X: 4, Y: 2}])
	assert.Equal(t, []aoc.Pt{{X: 2, Y: 0}, {X: 2, Y: 2}}, sc.symbols())

	// 12 touches both symbols but is reported once; 7 touches neither.
	assert.ElementsMatch(t, []int{0, 1}, sc.adjacent(sc.symbols()...))

	_, err = parseSchematic("1\t2\n")
	var pe *aoc.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestPipeMazeErrors(t *testing.T) {
	_, err := parsePipeMaze("F7\nLJ\n")
	assert.ErrorIs(t, err, errNoStart)

	_, err = parsePipeMaze("S.\n..\n")
	assert.ErrorContains(t, err, "cannot determine pipe")

	_, err = parsePipeMaze("S?\n")
	var pe *aoc.ParseError
	assert.True(t, errors.As(err, &pe))
}

const universe = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestGalaxyDistances(t *testing.T) {
	m, err := aoc.ParseMap(universe, galaxyLegend)
	require.NoError(t, err)
	for factor, want := range map[int]int{2: 374, 10: 1030, 100: 8410} {
		assert.Equal(t, want, galaxyDistances(m, factor), "factor %d", factor)
	}
}

func TestSpringArrangements(t *testing.T) {
	tests := []struct {
		line             string
		folded, unfolded int
	}{
		{"???.### 1,1,3", 1, 1},
		{".??..??...?##. 1,1,3", 4, 16384},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1, 1},
		{"????.#...#... 4,1,1", 1, 16},
		{"????.######..#####. 1,6,5", 4, 2500},
		{"?###???????? 3,2,1", 10, 506250},
		{"# 1", 1, 1},
		{"#. 2", 0, 0},
	}
	for _, tt := range tests {
		r, err := parseSpringRecord(1, tt.line)
		require.NoError(t, err)
		assert.Equal(t, tt.folded, r.arrangements(), tt.line)
		assert.Equal(t, tt.unfolded, r.unfold(5).arrangements(), tt.line)
	}

	_, err := parseSpringRecord(3, "?x? 1")
	var pe *aoc.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
}

const platform = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

func TestDishSpin(t *testing.T) {
	d, round, err := parseDish(platform)
	require.NoError(t, err)
	assert.Equal(t, platform, d.render(round))

	tilted := d.tilt(round, aoc.Up)
	assert.Equal(t, 136, d.load(tilted))
	assert.Equal(t, `OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....
`, d.render(tilted))

	once := d.spin(round)
	assert.Equal(t, `.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....
`, d.render(once))

	twice := d.spin(once)
	assert.Equal(t, `.....#....
....#...O#
.....##...
..O#......
.....OOO#.
.O#...O#.#
....O#...O
.......OOO
#..OO###..
#.OOO#...O
`, d.render(twice))
	assert.Len(t, twice, len(round))

	final, ok := aoc.Simulate(round, d.spin, 1_000_000_000, 0)
	require.True(t, ok)
	assert.Equal(t, 64, d.load(final))
}

func TestContraption(t *testing.T) {
	m, err := aoc.ParseMap(".|.\n...\n.-.\n", mirrorLegend)
	require.NoError(t, err)
	c := contraption{m: m}
	// Right along the top row, split at the |, down the middle column and
	// split again at the -.
	assert.Equal(t, 6, c.energized(aoc.Path{Dir: aoc.Right}))
	// Straight down the left column misses everything.
	assert.Equal(t, 3, c.energized(aoc.Path{Dir: aoc.Down}))
}

func TestMirrorDeflect(t *testing.T) {
	tests := []struct {
		m    mirror
		in   aoc.Direction
		want []aoc.Direction
	}{
		{mirrorFwd, aoc.Right, []aoc.Direction{aoc.Up}},
		{mirrorFwd, aoc.Down, []aoc.Direction{aoc.Left}},
		{mirrorBack, aoc.Right, []aoc.Direction{aoc.Down}},
		{mirrorBack, aoc.Up, []aoc.Direction{aoc.Left}},
		{splitterNS, aoc.Left, []aoc.Direction{aoc.Up, aoc.Down}},
		{splitterNS, aoc.Up, []aoc.Direction{aoc.Up}},
		{splitterWE, aoc.Down, []aoc.Direction{aoc.Left, aoc.Right}},
		{splitterWE, aoc.Right, []aoc.Direction{aoc.Right}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.deflect(tt.in), "%v moving %v", tt.m, tt.in)
	}
}

func TestUltraCrucible(t *testing.T) {
	m, err := aoc.ParseMap(`111111111111
999999999991
999999999991
999999999991
999999999991
`, aoc.DigitLegend())
	require.NoError(t, err)
	got, ok := minHeatLoss(m, 4, 10)
	require.True(t, ok)
	assert.Equal(t, 71, got)

	// Too short to ever satisfy the minimum run.
	m, err = aoc.ParseMap("12\n34\n", aoc.DigitLegend())
	require.NoError(t, err)
	_, ok = minHeatLoss(m, 4, 10)
	assert.False(t, ok)
}

func TestCrucibleFreeBlocks(t *testing.T) {
	m, err := aoc.ParseMap("91001\n09110\n00190\n19900\n", aoc.DigitLegend())
	require.NoError(t, err)
	got, ok := minHeatLoss(m, 1, 3)
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestParseDigStep(t *testing.T) {
	tests := []struct {
		line      string
		fromColor bool
		want      digStep
	}{
		{"R 6 (#70c710)", false, digStep{aoc.Right, 6}},
		{"R 6 (#70c710)", true, digStep{aoc.Right, 461937}},
		{"D 5 (#0dc571)", true, digStep{aoc.Down, 56407}},
		{"U 2 (#caa173)", true, digStep{aoc.Up, 829975}},
		{"L 2 (#5713f0)", false, digStep{aoc.Left, 2}},
	}
	for _, tt := range tests {
		got, err := parseDigStep(tt.line, tt.fromColor)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}

	for _, bad := range []string{"R 6", "X 6 (#70c710)", "R six (#70c710)"} {
		_, err := parseDigStep(bad, false)
		assert.Error(t, err, bad)
	}
	for _, bad := range []string{"R 6 (#70c71)", "R 6 (#70c714)", "R 6 (#zzzzz0)"} {
		_, err := parseDigStep(bad, true)
		assert.Error(t, err, bad)
	}
}

const pulseChain = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

func TestPulseProduct(t *testing.T) {
	n, err := parseNetwork(strings.Split(strings.TrimSpace(pulseChain), "\n"))
	require.NoError(t, err)
	assert.Equal(t, 11687500, n.pulseProduct(1000))

	// A single press of the chain.
	var low, high int
	n.press(n.initial(), func(p pulse) {
		if p.high {
			high++
		} else {
			low++
		}
	})
	assert.Equal(t, 4, low)
	assert.Equal(t, 4, high)
}

func TestPressesUntilLow(t *testing.T) {
	lines := []string{
		"broadcaster -> a, c",
		"%a -> ia",
		"&ia -> feed",
		"%c -> d",
		"%d -> id",
		"&id -> feed",
		"&feed -> rx",
	}
	n, err := parseNetwork(lines)
	require.NoError(t, err)
	got, err := n.pressesUntilLow("rx", 100)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = n.pressesUntilLow("nowhere", 100)
	assert.Error(t, err)

	// id only sends high every fourth press.
	_, err = n.pressesUntilLow("rx", 3)
	assert.ErrorIs(t, err, aoc.ErrNoSolution)
}

func TestParseNetworkErrors(t *testing.T) {
	for _, lines := range [][]string{
		{"%a -> b"},
		{"broadcaster a"},
		{"broadcaster -> a", "?a -> b"},
		{"broadcaster -> a", "%a -> b", "%a -> c"},
	} {
		_, err := parseNetwork(lines)
		assert.Error(t, err, "%q", lines)
	}
}

const gardenSample = `...........
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
`

func TestGardenPlots(t *testing.T) {
	g, err := parseGarden(gardenSample)
	require.NoError(t, err)
	assert.Equal(t, 16, g.plots(6, false))

	tests := []struct {
		steps, want int
	}{
		{6, 16},
		{10, 50},
		{50, 1594},
		{100, 6536},
		{500, 167004},
	}
	for _, tt := range tests {
		if tt.steps > 100 && testing.Short() {
			continue
		}
		if got := g.plots(tt.steps, true); got != tt.want {
			t.Errorf("plots(%d, true) = %d; want %d", tt.steps, got, tt.want)
		}
	}
}

func TestGardenPlotsFar(t *testing.T) {
	// With no rocks the reachable plots after n steps form a diamond of
	// (n+1)^2 cells.
	g, err := parseGarden(".....\n.....\n..S..\n.....\n.....\n")
	require.NoError(t, err)
	for _, steps := range []int{3, 12, 1000, 2005} {
		got, err := g.plotsFar(steps)
		require.NoError(t, err)
		assert.Equal(t, (steps+1)*(steps+1), got, "%d steps", steps)
	}

	g, err = parseGarden("..S..\n.....\n")
	require.NoError(t, err)
	_, err = g.plotsFar(100)
	assert.Error(t, err)

	_, err = parseGarden("...\n")
	assert.ErrorIs(t, err, errNoStart)
}

func TestHikingMap(t *testing.T) {
	h, err := parseHikingMap("#.###\n#...#\n###.#\n")
	require.NoError(t, err)
	assert.Equal(t, aoc.Pt{X: 1}, h.start)
	assert.Equal(t, aoc.Pt{X: 3, Y: 2}, h.end)

	got, ok := h.longestIcy()
	require.True(t, ok)
	assert.Equal(t, 4, got)
	got, ok = h.longestDry()
	require.True(t, ok)
	assert.Equal(t, 4, got)

	// A slope pointing back up the trail blocks the icy walk.
	h, err = parseHikingMap("#.###\n#.<.#\n###.#\n")
	require.NoError(t, err)
	_, ok = h.longestIcy()
	assert.False(t, ok)
	got, ok = h.longestDry()
	require.True(t, ok)
	assert.Equal(t, 4, got)

	// The forest cuts the trail in two.
	h, err = parseHikingMap("#.###\n#.#.#\n###.#\n")
	require.NoError(t, err)
	_, ok = h.longestDry()
	assert.False(t, ok)

	_, err = parseHikingMap("###\n#.#\n###\n")
	assert.Error(t, err)
}
