package ranges

import (
	"iter"

	"github.com/samber/mo"
)

// CharacterRange is a range of characters stepped over their code points.
//
// All arithmetic is done on int code points, so containment is exact.
type CharacterRange struct {
	codes numericRange[int]
}

var _ Range[rune, int] = CharacterRange{}

// NewCharacterRange returns a CharacterRange from left to right.
//
// Returns ErrInvalidArgument if an endpoint has no bound type and
// ErrUnreachableRange if step cannot reach right from left.
func NewCharacterRange(left Endpoint[rune], right Endpoint[rune], step int) (CharacterRange, error) {
	codes, err := newNumericRange(codePoint(left), codePoint(right), step)
	if err != nil {
		return CharacterRange{}, err
	}
	return CharacterRange{codes: codes}, nil
}

// Left returns the endpoint iteration starts from.
func (r CharacterRange) Left() Endpoint[rune] {
	return character(r.codes.left)
}

// Right returns the endpoint iteration stops at.
func (r CharacterRange) Right() Endpoint[rune] {
	return character(r.codes.right)
}

// Step returns the code point increment between successive characters.
func (r CharacterRange) Step() int {
	return r.codes.step
}

// IsEmpty returns true if the range yields no characters.
func (r CharacterRange) IsEmpty() bool {
	return r.codes.IsEmpty()
}

// Contains returns true if c is one of the characters the range yields.
func (r CharacterRange) Contains(c rune) bool {
	return containsInteger(r.codes, int(c))
}

// ContainsAll returns true if values is non-empty and every character is contained.
func (r CharacterRange) ContainsAll(values []rune) bool {
	return containsAll(values, r.Contains)
}

// First returns the first character the range yields, if any.
func (r CharacterRange) First() mo.Option[rune] {
	first, ok := r.codes.First().Get()
	if !ok {
		return mo.None[rune]()
	}
	return mo.Some(rune(first))
}

// All returns the characters of the range. Each call starts from the left endpoint.
func (r CharacterRange) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for code := range r.codes.All() {
			if !yield(rune(code)) {
				return
			}
		}
	}
}

// Iterator returns a single-pass cursor over the characters of the range.
func (r CharacterRange) Iterator() Iterator[rune] {
	return characterCursor{codes: r.codes.cursor()}
}

// Equal returns true if other is a CharacterRange with the same endpoints and step.
func (r CharacterRange) Equal(other Range[rune, int]) bool {
	o, ok := other.(CharacterRange)
	return ok && r == o
}

// String implements fmt.Stringer, e.g. "CharacterRange<[a, e], 1>".
func (r CharacterRange) String() string {
	return r.codes.format("CharacterRange", formatCodePoint)
}

type characterCursor struct {
	codes *cursor[int]
}

func (c characterCursor) Next() (rune, bool) {
	code, ok := c.codes.Next()
	return rune(code), ok
}

func (c characterCursor) Remove() error {
	return c.codes.Remove()
}

func codePoint(e Endpoint[rune]) Endpoint[int] {
	return Endpoint[int]{value: int(e.value), boundType: e.boundType}
}

func character(e Endpoint[int]) Endpoint[rune] {
	return Endpoint[rune]{value: rune(e.value), boundType: e.boundType}
}

func formatCodePoint(code int) string {
	return string(rune(code))
}
