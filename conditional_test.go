package purefunctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalFunction(t *testing.T) {
	negate := UnaryFunction[int, int](func(n int) int { return -n })
	abs := ConditionalFunction(LessThan(0), negate, Identity[int]())

	for in, want := range map[int]int{-3: 3, 0: 0, 4: 4} {
		if got := abs(in); got != want {
			t.Errorf("abs(%d): expected %d, got %d", in, want, got)
		}
	}
}

func TestConditionalPredicate(t *testing.T) {
	even := UnaryPredicate[int](func(n int) bool { return n%2 == 0 })
	// Even numbers must be below 10, odd numbers above 0.
	p := ConditionalPredicate(even, LessThan(10), GreaterThan(0))

	assert.True(t, p(4))
	assert.False(t, p(12))
	assert.True(t, p(13))
	assert.False(t, p(-1))
}

func TestConditionalProcedure(t *testing.T) {
	var small, large int
	p := ConditionalProcedure(
		LessThan(10),
		UnaryProcedure[int](func(int) { small++ }),
		UnaryProcedure[int](func(int) { large++ }),
	)
	for _, n := range []int{1, 20, 5} {
		p(n)
	}
	assert.Equal(t, 2, small)
	assert.Equal(t, 1, large)
}
