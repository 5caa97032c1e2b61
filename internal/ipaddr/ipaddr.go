// Package ipaddr implements a four-segment dotted-decimal address with
// fail-fast accessors: every constructor and mutator validates its inputs
// up front and returns a typed error before any state is committed.
//
// The error values are sentinels; callers branch with errors.Is. A failed
// operation never leaves an Address partially updated.
package ipaddr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Segments is the number of segments in an address.
	Segments = 4

	// MaxSegment is the largest value a single segment may hold.
	MaxSegment = 255
)

var (
	// ErrInvalidFormat reports text that does not split into exactly
	// four dot-separated segments.
	ErrInvalidFormat = errors.New("address must have exactly 4 dot-separated segments")

	// ErrInvalidSyntax reports a segment token that is not an integer.
	ErrInvalidSyntax = errors.New("segment is not an integer")

	// ErrInvalidValue reports a segment value outside [0, 255].
	ErrInvalidValue = errors.New("segment value out of range")

	// ErrInvalidIndex reports a segment index outside [0, 3].
	ErrInvalidIndex = errors.New("segment index out of bounds")
)

// Address is a fixed four-segment value. The zero value is "0.0.0.0".
//
// Address is comparable; two addresses are equal exactly when all four
// segments are equal, however they were constructed.
type Address struct {
	segs [Segments]uint8
}

// Parse builds an Address from dotted-decimal text such as "192.168.0.1".
//
// The whole input is validated before any segment is stored: a wrong
// segment count yields ErrInvalidFormat, a non-integer token yields
// ErrInvalidSyntax, and an integer outside [0, 255] yields
// ErrInvalidValue. Errors name the first offending segment.
func Parse(s string) (Address, error) {
	parts := strings.Split(s, ".")
	if len(parts) != Segments {
		return Address{}, fmt.Errorf("%w: got %d in %q", ErrInvalidFormat, len(parts), s)
	}

	var a Address
	for i, tok := range parts {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Address{}, fmt.Errorf("%w: segment %d is %q", ErrInvalidSyntax, i, tok)
		}
		if err := validateSegment(i, v); err != nil {
			return Address{}, err
		}
		a.segs[i] = uint8(v)
	}
	return a, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures and
// package-level declarations with known-good input.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ipaddr: MustParse(%q): %v", s, err))
	}
	return a
}

// New builds an Address from four segment values. Each value must be in
// [0, 255]; the returned ErrInvalidValue names the first offender and no
// partial address is produced.
func New(s0, s1, s2, s3 int) (Address, error) {
	var a Address
	for i, v := range [Segments]int{s0, s1, s2, s3} {
		if err := validateSegment(i, v); err != nil {
			return Address{}, err
		}
		a.segs[i] = uint8(v)
	}
	return a, nil
}

// Segment returns the value of the segment at index i.
// Indexes outside [0, 3] yield ErrInvalidIndex.
func (a Address) Segment(i int) (int, error) {
	if err := validateIndex(i); err != nil {
		return 0, err
	}
	return int(a.segs[i]), nil
}

// SetSegment replaces the segment at index i with v. The index is checked
// first, then the value; on either failure the address is left untouched.
func (a *Address) SetSegment(i, v int) error {
	if err := validateIndex(i); err != nil {
		return err
	}
	if err := validateSegment(i, v); err != nil {
		return err
	}
	a.segs[i] = uint8(v)
	return nil
}

// String renders the address as dotted decimal, e.g. "10.0.0.1".
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a.segs[0], a.segs[1], a.segs[2], a.segs[3])
}

func validateIndex(i int) error {
	if i < 0 || i >= Segments {
		return fmt.Errorf("%w: index %d must be in range [0, %d)", ErrInvalidIndex, i, Segments)
	}
	return nil
}

func validateSegment(i, v int) error {
	if v < 0 || v > MaxSegment {
		return fmt.Errorf("%w: segment %d is %d, must be in range [0, %d]", ErrInvalidValue, i, v, MaxSegment)
	}
	return nil
}
