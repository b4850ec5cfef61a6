package days

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc2023"
	"golang.org/x/exp/maps"
)

type moduleKind uint8

const (
	kindSink moduleKind = iota // named as an output but never declared
	kindBroadcast
	kindFlipFlop
	kindConjunction
)

type commModule struct {
	name string
	kind moduleKind
	outs []int

	slot   int         // flip-flop state
	inputs []int       // conjunction sources, in module order
	inSlot map[int]int // conjunction source -> memory slot
}

type pulse struct {
	from, to int // from is -1 for the button
	high     bool
}

// network is a parsed module configuration. Module state lives outside of it
// in a []bool of slots so that it can be hashed and compared between presses.
type network struct {
	mods        []*commModule
	byName      map[string]int
	broadcaster int
	slots       int
}

const broadcasterName = "broadcaster"

func parseNetwork(lines []string) (*network, error) {
	n := &network{byName: make(map[string]int)}
	index := func(name string) int {
		if i, ok := n.byName[name]; ok {
			return i
		}
		i := len(n.mods)
		n.mods = append(n.mods, &commModule{name: name})
		n.byName[name] = i
		return i
	}
	declared := make(map[string]bool)
	for _, line := range lines {
		left, right, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, fmt.Errorf("bad module line %q", line)
		}
		kind := kindBroadcast
		name := left
		switch {
		case strings.HasPrefix(left, "%"):
			kind, name = kindFlipFlop, left[1:]
		case strings.HasPrefix(left, "&"):
			kind, name = kindConjunction, left[1:]
		case left != broadcasterName:
			return nil, fmt.Errorf("unknown module type in %q", line)
		}
		if declared[name] {
			return nil, fmt.Errorf("module %q declared twice", name)
		}
		declared[name] = true
		i := index(name)
		n.mods[i].kind = kind
		for _, out := range strings.Split(right, ",") {
			o := index(strings.TrimSpace(out))
			n.mods[i].outs = append(n.mods[i].outs, o)
		}
	}
	b, ok := n.byName[broadcasterName]
	if !ok || !declared[broadcasterName] {
		return nil, errors.New("no broadcaster")
	}
	n.broadcaster = b

	for _, m := range n.mods {
		if m.kind == kindFlipFlop {
			m.slot = n.slots
			n.slots++
		}
	}
	for i, m := range n.mods {
		for _, o := range m.outs {
			c := n.mods[o]
			if c.kind != kindConjunction {
				continue
			}
			aoc.InitMap(&c.inSlot)
			if _, ok := c.inSlot[i]; ok {
				continue
			}
			c.inSlot[i] = n.slots
			c.inputs = append(c.inputs, i)
			n.slots++
		}
	}
	return n, nil
}

// initial is the state with every flip-flop off and every conjunction
// remembering low pulses.
func (n *network) initial() []bool {
	return make([]bool, n.slots)
}

// press sends a low pulse to the broadcaster and processes pulses in order
// until none remain. state is not modified. observe, if non-nil, sees every
// pulse including the one from the button.
func (n *network) press(state []bool, observe func(pulse)) []bool {
	state = slices.Clone(state)
	q := aoc.NewQueue(pulse{from: -1, to: n.broadcaster})
	q.While(func(p pulse) bool {
		if observe != nil {
			observe(p)
		}
		m := n.mods[p.to]
		var out bool
		switch m.kind {
		case kindBroadcast:
			out = p.high
		case kindFlipFlop:
			if p.high {
				return true
			}
			state[m.slot] = !state[m.slot]
			out = state[m.slot]
		case kindConjunction:
			state[m.inSlot[p.from]] = p.high
			for _, s := range m.inSlot {
				if !state[s] {
					out = true
					break
				}
			}
		default:
			return true
		}
		for _, o := range m.outs {
			q.Push(pulse{from: p.to, to: o, high: out})
		}
		return true
	})
	return state
}

type pulseCount struct {
	low, high int
}

// pulseProduct returns low*high over the given number of presses. The states
// between presses are found with FindCycle so that each distinct state is only
// pressed once.
func (n *network) pulseProduct(presses int) int {
	step := func(st []bool) []bool { return n.press(st, nil) }
	history, cycle, _ := aoc.FindCycle(n.initial(), step, presses)

	var memo aoc.Memo[int, pulseCount]
	var total pulseCount
	for k := 0; k < presses; k++ {
		i := cycle.Index(k)
		c := memo.Get(i, func() pulseCount {
			var c pulseCount
			n.press(history[i], func(p pulse) {
				if p.high {
					c.high++
				} else {
					c.low++
				}
			})
			return c
		})
		total.low += c.low
		total.high += c.high
	}
	return total.low * total.high
}

// pressesUntilLow returns the number of presses before target gets a low
// pulse. target must be fed by a single conjunction whose inputs each send a
// high pulse periodically from the start; the answer is the LCM of the
// first press on which each of them does.
func (n *network) pressesUntilLow(target string, limit int) (int, error) {
	ti, ok := n.byName[target]
	if !ok {
		return 0, fmt.Errorf("no module %q", target)
	}
	feed := -1
	for i, m := range n.mods {
		if !slices.Contains(m.outs, ti) {
			continue
		}
		if feed != -1 || m.kind != kindConjunction {
			return 0, fmt.Errorf("%s must be fed by exactly one conjunction", target)
		}
		feed = i
	}
	if feed == -1 {
		return 0, fmt.Errorf("nothing feeds %s", target)
	}
	inputs := n.mods[feed].inputs
	first := make(map[int]int, len(inputs))
	state := n.initial()
	for press := 1; press <= limit && len(first) < len(inputs); press++ {
		state = n.press(state, func(p pulse) {
			if p.to != feed || !p.high {
				return
			}
			if _, ok := first[p.from]; !ok {
				first[p.from] = press
			}
		})
	}
	if len(first) < len(inputs) {
		return 0, fmt.Errorf("%d of %d inputs to %s never sent high: %w", len(inputs)-len(first), len(inputs), n.mods[feed].name, aoc.ErrNoSolution)
	}
	return aoc.LCM(maps.Values(first)...), nil
}

/*
want=32000000

broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
*/
func (s Solver) D20p1() (any, error) {
	n, err := parseNetwork(s.Lines())
	if err != nil {
		return nil, err
	}
	return n.pulseProduct(1000), nil
}

func (s Solver) D20p2() (any, error) {
	n, err := parseNetwork(s.Lines())
	if err != nil {
		return nil, err
	}
	got, err := n.pressesUntilLow("rx", aoc.DefaultSimLimit)
	if err != nil {
		return nil, err
	}
	s.Debug("modules: ", len(n.mods), ", presses: ", got)
	return got, nil
}
