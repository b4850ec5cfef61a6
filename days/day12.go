package days

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2023"
)

// springRecord is one row of the condition report: springs is made of '.'
// (operational), '#' (damaged) and '?' (unknown).
type springRecord struct {
	springs string
	groups  []int
}

func parseSpringRecord(line int, s string) (springRecord, error) {
	springs, groups, ok := strings.Cut(s, " ")
	if !ok {
		return springRecord{}, fmt.Errorf("line %d: cannot separate springs from groups in %q", line+1, s)
	}
	for i, r := range springs {
		if !strings.ContainsRune(".#?", r) {
			return springRecord{}, &aoc.ParseError{Line: line, Col: i, Char: r}
		}
	}
	return springRecord{
		springs: springs,
		groups:  aoc.Ints(strings.Split(groups, ",")...),
	}, nil
}

func (s Solver) springRecords() ([]springRecord, error) {
	var out []springRecord
	for i, line := range s.Lines() {
		r, err := parseSpringRecord(i, line)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// unfold repeats the record n times, joining the springs with '?'.
func (r springRecord) unfold(n int) springRecord {
	springs := make([]string, n)
	var groups []int
	for i := range springs {
		springs[i] = r.springs
		groups = append(groups, r.groups...)
	}
	return springRecord{
		springs: strings.Join(springs, "?"),
		groups:  groups,
	}
}

type springKey struct {
	i, g, run int
}

// arrangements counts the ways to replace every '?' so that the runs of
// damaged springs match groups exactly. Results are cached per
// (spring index, group index, current run length).
func (r springRecord) arrangements() int {
	var memo aoc.Memo[springKey, int]
	var count func(i, g, run int) int
	count = func(i, g, run int) int {
		return memo.Get(springKey{i, g, run}, func() int {
			if i == len(r.springs) {
				if run == 0 && g == len(r.groups) {
					return 1
				}
				if g == len(r.groups)-1 && r.groups[g] == run {
					return 1
				}
				return 0
			}
			total := 0
			c := r.springs[i]
			if c == '.' || c == '?' {
				if run == 0 {
					total += count(i+1, g, 0)
				} else if g < len(r.groups) && r.groups[g] == run {
					total += count(i+1, g+1, 0)
				}
			}
			if c == '#' || c == '?' {
				if g < len(r.groups) && run < r.groups[g] {
					total += count(i+1, g, run+1)
				}
			}
			return total
		})
	}
	return count(0, 0, 0)
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s Solver) D12p1() (any, error) {
	records, err := s.springRecords()
	if err != nil {
		return nil, err
	}
	counts := make([]int, 0, len(records))
	for _, r := range records {
		counts = append(counts, r.arrangements())
	}
	return aoc.Sum(counts...), nil
}

// want=525152
func (s Solver) D12p2() (any, error) {
	records, err := s.springRecords()
	if err != nil {
		return nil, err
	}
	counts := make([]int, 0, len(records))
	for _, r := range records {
		counts = append(counts, r.unfold(5).arrangements())
	}
	return aoc.Sum(counts...), nil
}
