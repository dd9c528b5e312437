package location

import (
	"fmt"
	"sort"
	"strconv"
)

// Builder incrementally assembles a Location from typed group setters,
// producing sorted canonical output regardless of call order — unlike
// TryParse, which demands the input already be canonical.
//
// Uses a mutable builder rather than functional options, since location
// assembly calls for group-typed setters that can fail individually
// (wrong group, non-positive number).
type Builder struct {
	number  string
	letters map[Group]byte
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{letters: make(map[Group]byte)}
}

// WithNumber sets the digit-run component. Fails if n <= 0.
func (b *Builder) WithNumber(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n <= 0 {
		b.err = fmt.Errorf("location: number must be positive, got %d", n)
		return b
	}
	b.number = strconv.Itoa(n)
	return b
}

// WithSide sets the side letter (P, C, or S).
func (b *Builder) WithSide(ch byte) *Builder { return b.withGroupChar(GroupSide, ch) }

// WithVertical sets the vertical letter (U, M, or L).
func (b *Builder) WithVertical(ch byte) *Builder { return b.withGroupChar(GroupVertical, ch) }

// WithTransverse sets the transverse letter (I or O).
func (b *Builder) WithTransverse(ch byte) *Builder { return b.withGroupChar(GroupTransverse, ch) }

// WithLongitudinal sets the longitudinal letter (F or A).
func (b *Builder) WithLongitudinal(ch byte) *Builder { return b.withGroupChar(GroupLongitudinal, ch) }

// WithValueChar dispatches to the right group setter based on ch's
// recognized group, or fails if ch isn't a recognized location code.
func (b *Builder) WithValueChar(ch byte) *Builder {
	if b.err != nil {
		return b
	}
	g, ok := groupOf(ch)
	if !ok {
		b.err = fmt.Errorf("location: %q is not a recognized location code", string(ch))
		return b
	}
	return b.withGroupChar(g, ch)
}

func (b *Builder) withGroupChar(want Group, ch byte) *Builder {
	if b.err != nil {
		return b
	}
	g, ok := groupOf(ch)
	if !ok {
		b.err = fmt.Errorf("location: %q is not a recognized location code", string(ch))
		return b
	}
	if g != want {
		b.err = fmt.Errorf("location: %q belongs to group %s, not %s", string(ch), g, want)
		return b
	}
	// Last relevant call wins: a later setter for the same group replaces
	// an earlier one rather than erroring, matching the Python
	// LocationBuilder's fluent re-assignment semantics.
	b.letters[g] = ch
	return b
}

// Build assembles the canonical Location, or returns the first error
// recorded by any setter.
func (b *Builder) Build() (Location, error) {
	if b.err != nil {
		return Location{}, b.err
	}

	letters := make([]byte, 0, len(b.letters))
	for _, ch := range b.letters {
		letters = append(letters, ch)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	s := b.number
	for _, ch := range letters {
		s += string(ch)
	}
	if s == "" {
		return Location{}, fmt.Errorf("location: builder produced an empty location")
	}
	return Location{value: s}, nil
}
