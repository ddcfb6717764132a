package basis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedBasisSet is returned for basis family names other than
// fir, fourier and legendre.
var ErrUnsupportedBasisSet = errors.New("basis: unsupported basis set")

// Set identifies a basis family.
type Set int

const (
	SetFIR Set = iota
	SetFourier
	SetLegendre
)

var setNames = [...]string{
	SetFIR:      "fir",
	SetFourier:  "fourier",
	SetLegendre: "legendre",
}

// ParseSet resolves a case-insensitive family name.
func ParseSet(name string) (Set, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range setNames {
		if n == key {
			return Set(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBasisSet, name)
}

// Valid reports whether s is a known family.
func (s Set) Valid() bool {
	return s >= SetFIR && s <= SetLegendre
}

func (s Set) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Set(%d)", int(s))
	}
	return setNames[s]
}

// RegressorCount applies the family rule for the number of basis functions.
//
// FIR ignores requested and uses one regressor per sample in the window
// (nTimepoints). Fourier and Legendre round an even request up to the next
// odd number.
func RegressorCount(s Set, requested, nTimepoints int) (int, error) {
	switch s {
	case SetFIR:
		return nTimepoints, nil
	case SetFourier, SetLegendre:
		if requested%2 == 0 {
			requested++
		}
		return requested, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedBasisSet, s)
	}
}
