package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := make([]int, 0, 5)
	b := append(a[:0], 1, 2, 3, 4)
	c := append(a[:0], 4, 5, 6)

	assert.Equal(t, []int{}, a)
	assert.Equal(t, []int{4, 5, 6, 4}, b)
	assert.Equal(t, []int{4, 5, 6}, c)
}

func TestSliceHelpers(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	assert.Equal(t, []int{2, 4, 6, 8}, MapSlice(xs, func(x int) int { return x * 2 }))
	assert.Equal(t, []int{2, 4}, FilterSlice(xs, func(x int) bool { return x%2 == 0 }))
	assert.Equal(t, 3, FindInSlice(xs, func(x int) bool { return x > 2 }).Value())
	assert.True(t, FindInSlice(xs, func(x int) bool { return x > 4 }).IsEmpty())
	assert.True(t, Contains(xs, 4))
	assert.False(t, Contains(xs, 5))
}

func TestOptional(t *testing.T) {
	assert.True(t, Empty[int]().IsEmpty())
	assert.Equal(t, 7, Empty[int]().ValueOr(7))
	assert.Equal(t, 3, Some(3).ValueOr(7))
}

func TestFuncLogger(t *testing.T) {
	lines := []string{}
	logger := FuncLogger(func(s string) {
		lines = append(lines, strings.TrimSpace(s))
	})
	logger.Println("depth", 3)
	logger.Printf("nodes %d", 10)
	assert.Equal(t, []string{"depth 3", "nodes 10"}, lines)
}
