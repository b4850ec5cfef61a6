package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemo(t *testing.T) {
	var m Memo[int, int]
	calls := 0
	var fib func(n int) int
	fib = func(n int) int {
		return m.Get(n, func() int {
			calls++
			if n < 2 {
				return n
			}
			return fib(n-1) + fib(n-2)
		})
	}
	assert.Equal(t, 2880067194370816120, fib(90))
	assert.Equal(t, 91, calls)

	fib(90)
	assert.Equal(t, 91, calls)
}

func TestMemoStructKey(t *testing.T) {
	type key struct{ a, b int }
	var m Memo[key, string]
	assert.Equal(t, "x", m.Get(key{1, 2}, func() string { return "x" }))
	assert.Equal(t, "x", m.Get(key{1, 2}, func() string { return "y" }))
	assert.Equal(t, "y", m.Get(key{2, 1}, func() string { return "y" }))
}
