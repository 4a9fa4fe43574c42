package ranges

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// BoundType Tests
// ============================================================================

func TestBoundType_String(t *testing.T) {
	assert.Equal(t, "OPEN", BoundTypeOpen.String())
	assert.Equal(t, "CLOSED", BoundTypeClosed.String())
	assert.Equal(t, "BoundType(0)", BoundType(0).String())
}

func TestBoundType_Valid(t *testing.T) {
	assert.True(t, BoundTypeOpen.Valid())
	assert.True(t, BoundTypeClosed.Valid())
	assert.False(t, BoundType(0).Valid())
	assert.False(t, BoundType(7).Valid())
}

func TestBoundType_Brackets(t *testing.T) {
	assert.Equal(t, "(", BoundTypeOpen.LeftBracket())
	assert.Equal(t, "[", BoundTypeClosed.LeftBracket())
	assert.Equal(t, ")", BoundTypeOpen.RightBracket())
	assert.Equal(t, "]", BoundTypeClosed.RightBracket())
}

// ============================================================================
// Endpoint Tests
// ============================================================================

func TestNewEndpoint(t *testing.T) {
	e, err := NewEndpoint(5, BoundTypeClosed)
	require.NoError(t, err)
	assert.Equal(t, 5, e.Value())
	assert.Equal(t, BoundTypeClosed, e.BoundType())
	assert.True(t, e.IsClosed())
}

func TestNewEndpoint_MissingBoundType(t *testing.T) {
	_, err := NewEndpoint(5, BoundType(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestEndpoint_Strings(t *testing.T) {
	tests := []struct {
		endpoint Endpoint[int]
		left     string
		right    string
	}{
		{ClosedEndpoint(0), "[0", "0]"},
		{OpenEndpoint(5), "(5", "5)"},
		{ClosedEndpoint(-3), "[-3", "-3]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.left, tt.endpoint.LeftString())
		assert.Equal(t, tt.right, tt.endpoint.RightString())
	}
	assert.Equal(t, "Endpoint<2.5, OPEN>", OpenEndpoint(2.5).String())
}

func TestEndpoint_Equal(t *testing.T) {
	assert.True(t, ClosedEndpoint(1).Equal(ClosedEndpoint(1)))
	assert.False(t, ClosedEndpoint(1).Equal(OpenEndpoint(1)))
	assert.False(t, ClosedEndpoint(1).Equal(ClosedEndpoint(2)))

	seen := map[Endpoint[int]]int{}
	seen[ClosedEndpoint(1)]++
	seen[ClosedEndpoint(1)]++
	seen[OpenEndpoint(1)]++
	assert.Equal(t, 2, seen[ClosedEndpoint(1)])
	assert.Equal(t, 1, seen[OpenEndpoint(1)])
}

func TestNewRange_MissingEndpoint(t *testing.T) {
	_, err := NewIntegerRange(Endpoint[int32]{}, ClosedEndpoint[int32](5), 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = NewDoubleRange(ClosedEndpoint(0.0), Endpoint[float64]{}, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = CharacterRangeWithBounds('a', BoundType(0), 'z', BoundTypeClosed)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
