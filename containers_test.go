package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(q *PQ[string]) []string {
	var out []string
	for q.Len() > 0 {
		out = append(out, q.Pop().V)
	}
	return out
}

func TestMinQueue(t *testing.T) {
	items := map[string]int{"b": 2, "c": 3, "a": 1, "d": 4}

	q := MinQueue[string]()
	for v, p := range items {
		q.Push(&PQI[string]{V: v, P: p})
	}
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, []string{"a", "b", "c", "d"}, drain(q))
}

func TestPQUpdate(t *testing.T) {
	q := MinQueue[string]()
	a := &PQI[string]{V: "a", P: 1}
	b := &PQI[string]{V: "b", P: 2}
	q.Push(a)
	q.Push(b)
	b.P = 0
	q.Update(b)
	assert.Equal(t, []string{"b", "a"}, drain(q))
}

func TestQueueAndStack(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return v != 2
	})
	assert.Equal(t, []int{1, 2}, got)
	v, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = q.Pop()
	assert.False(t, ok)

	var s Stack[int]
	s.Push(1)
	s.Push(2)
	v, _ = s.Pop()
	assert.Equal(t, 2, v)
	v, _ = s.Pop()
	assert.Equal(t, 1, v)
	_, ok = s.Pop()
	assert.False(t, ok)
}
