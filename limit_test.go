package purefunctor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Limit / Offset Tests
// ============================================================================

func TestLimit(t *testing.T) {
	p := Limit[string](2)
	got := []bool{p("a"), p("b"), p("c"), p("d")}
	assert.Equal(t, []bool{true, true, false, false}, got)

	zero := Limit[int](0)
	assert.False(t, zero(1))
}

func TestOffset(t *testing.T) {
	p := Offset[int](2)
	got := []bool{p(1), p(2), p(3), p(4)}
	assert.Equal(t, []bool{false, false, true, true}, got)

	zero := Offset[int](0)
	assert.True(t, zero(1))
}

func TestLimit_Independent(t *testing.T) {
	a := Limit[int](1)
	b := Limit[int](1)
	assert.True(t, a(0))
	assert.True(t, b(0), "each Limit owns its own counter")
	assert.False(t, a(0))
}

func TestLimit_Concurrent(t *testing.T) {
	const (
		limit   = 100
		workers = 8
		perWork = 50
	)
	p := Limit[int](limit)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		passed int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := 0
			for j := 0; j < perWork; j++ {
				if p(j) {
					n++
				}
			}
			mu.Lock()
			passed += n
			mu.Unlock()
		}()
	}
	wg.Wait()

	if passed != limit {
		t.Errorf("expected exactly %d passing tests, got %d", limit, passed)
	}
}
