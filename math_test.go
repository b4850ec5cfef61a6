package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts        []Pt
		area       int
		perimeter  int
		trenchArea int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			area:       25,
			perimeter:  20,
			trenchArea: 36,
		},
		{
			// Counter-clockwise L shape.
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 0, Y: 2},
				{X: 2, Y: 2},
				{X: 2, Y: 1},
				{X: 1, Y: 1},
				{X: 1, Y: 0},
				{X: 0, Y: 0},
			},
			area:       3,
			perimeter:  8,
			trenchArea: 8,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.area {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.area)
		}
		if got := PolygonPerimeter(tt.pts); got != tt.perimeter {
			t.Errorf("PolygonPerimeter(%v) = %v, want %v", tt.pts, got, tt.perimeter)
		}
		if got := TrenchArea(tt.pts); got != tt.trenchArea {
			t.Errorf("TrenchArea(%v) = %v, want %v", tt.pts, got, tt.trenchArea)
		}
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 7, LCM(7))
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 12, LCM(2, 3, 4))
	assert.Equal(t, 3*5*7*11*13, LCM(3*5, 7*11, 13, 5*13))
	assert.Panics(t, func() { LCM() })
	assert.Equal(t, 6, GCD(12, 18))
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		x              []int
		forward, after int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.forward, Extrapolate(tt.x, true), "forward %v", tt.x)
		assert.Equal(t, tt.after, Extrapolate(tt.x, false), "backward %v", tt.x)
	}
}

func TestDigit(t *testing.T) {
	assert.Equal(t, 0, Digit('0'))
	assert.Equal(t, 9, Digit('9'))
	assert.Panics(t, func() { Digit('a') })
}

func TestInts(t *testing.T) {
	assert.Equal(t, []int{1, -2, 30}, Ints("1", " -2", "30 "))
	assert.Equal(t, 5, AbsDiff(2, 7))
	assert.Equal(t, 6, Sum(1, 2, 3))
}
