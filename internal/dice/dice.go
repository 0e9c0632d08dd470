// Package dice defines the die types, the random source used to roll them,
// and the mapping from rolled values to face images.
package dice

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DieType is a polyhedral die identified by its number of sides.
type DieType int

const (
	D4  DieType = 4
	D6  DieType = 6
	D8  DieType = 8
	D10 DieType = 10
	D12 DieType = 12
	D20 DieType = 20
)

// ErrUnknownDieType is returned when a name does not match any die type.
var ErrUnknownDieType = errors.New("unknown die type")

var types = []DieType{D4, D6, D8, D10, D12, D20}

// Types returns every die type in ascending order of sides.
func Types() []DieType {
	out := make([]DieType, len(types))
	copy(out, types)
	return out
}

// Sides returns the number of faces on the die.
func (t DieType) Sides() int {
	return int(t)
}

// Valid reports whether t is one of the supported die types.
func (t DieType) Valid() bool {
	for _, known := range types {
		if t == known {
			return true
		}
	}
	return false
}

func (t DieType) String() string {
	return "D" + strconv.Itoa(int(t))
}

// ParseDieType accepts "D20", "d20" or "20".
func ParseDieType(s string) (DieType, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "d")
	n, err := strconv.Atoi(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDieType, s)
	}
	t := DieType(n)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDieType, s)
	}
	return t, nil
}

// MarshalText implements encoding.TextMarshaler so die types read and write
// as "D6" in YAML and JSON.
func (t DieType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDieType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DieType) UnmarshalText(text []byte) error {
	parsed, err := ParseDieType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Source supplies uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a Source backed by the global math/rand/v2 generator.
func NewSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic Source for reproducible rolls.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// RollResult holds one value per die rolled, in roll order.
type RollResult []int

// Total returns the sum of all values.
func (r RollResult) Total() int {
	total := 0
	for _, v := range r {
		total += v
	}
	return total
}

// String renders the values as "3, 1, 6".
func (r RollResult) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Ones returns a RollResult of n dice all showing 1.
func Ones(n int) RollResult {
	if n < 0 {
		n = 0
	}
	r := make(RollResult, n)
	for i := range r {
		r[i] = 1
	}
	return r
}

// Roll draws n values uniformly from [1, t.Sides()].
func Roll(src Source, t DieType, n int) RollResult {
	if n < 0 {
		n = 0
	}
	r := make(RollResult, n)
	for i := range r {
		r[i] = src.IntN(t.Sides()) + 1
	}
	return r
}
