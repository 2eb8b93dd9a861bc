// Package dim implements canonical dimension codes.
//
// This file declares Dim, the sentinel error, Parse/MustParse/Normalize, and
// the exponent arithmetic. See doc.go for the code grammar.
package dim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDimension indicates a malformed dimension code: an unknown
// letter, a missing exponent, or a malformed exponent literal.
var ErrInvalidDimension = errors.New("dim: invalid dimension code")

// letters is the fixed dimension alphabet in canonical (alphabetical) order.
const letters = "IJKLMNT"

// Dimensionless is the dimension of a pure number: the empty code.
var Dimensionless = Dim{}

// Dim is an immutable physical dimension: one exponent slot per alphabet
// letter, zero meaning "absent". The zero value is Dimensionless.
type Dim struct {
	exps [len(letters)]int
}

// Parse converts a dimension code into a Dim. It accepts letters in any
// order and merges repeated letters by summing their exponents; pairs whose
// merged exponent is zero vanish. Fails with ErrInvalidDimension on any
// letter outside the alphabet or any missing/malformed exponent.
// Complexity: O(len(code))
func Parse(code string) (Dim, error) {
	var d Dim
	i := 0
	for i < len(code) {
		// 1) The pair starts with an alphabet letter.
		slot := strings.IndexByte(letters, code[i])
		if slot < 0 {
			return Dim{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidDimension, code[i], code)
		}
		i++

		// 2) The exponent is a signed decimal integer, written explicitly.
		j := i
		if j < len(code) && (code[j] == '-' || code[j] == '+') {
			j++
		}
		k := j
		for k < len(code) && code[k] >= '0' && code[k] <= '9' {
			k++
		}
		if k == j {
			return Dim{}, fmt.Errorf("%w: missing exponent after %q in %q", ErrInvalidDimension, code[i-1], code)
		}
		exp, err := strconv.Atoi(code[i:k])
		if err != nil {
			return Dim{}, fmt.Errorf("%w: bad exponent in %q", ErrInvalidDimension, code)
		}

		// 3) Merge into the slot; repeated letters sum.
		d.exps[slot] += exp
		i = k
	}

	return d, nil
}

// MustParse is Parse for trusted literals; it panics on a malformed code.
func MustParse(code string) Dim {
	d, err := Parse(code)
	if err != nil {
		panic(err)
	}

	return d
}

// Normalize parses code and re-renders it in canonical form: letters in
// alphabetical order, repeated letters merged, zero-exponent pairs dropped.
func Normalize(code string) (string, error) {
	d, err := Parse(code)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

// String renders the canonical code. Dimensionless renders as "".
func (d Dim) String() string {
	var b strings.Builder
	for slot, exp := range d.exps {
		if exp == 0 {
			continue
		}
		b.WriteByte(letters[slot])
		b.WriteString(strconv.Itoa(exp))
	}

	return b.String()
}

// Exp returns the exponent of the given alphabet letter, zero when absent or
// when the letter is outside the alphabet.
func (d Dim) Exp(letter byte) int {
	slot := strings.IndexByte(letters, letter)
	if slot < 0 {
		return 0
	}

	return d.exps[slot]
}

// IsDimensionless reports whether every exponent is zero.
func (d Dim) IsDimensionless() bool {
	return d == Dim{}
}

// Equal reports whether two dimensions have identical exponents.
func (d Dim) Equal(o Dim) bool {
	return d == o
}

// Mul returns the dimension of a product: exponents add.
func (d Dim) Mul(o Dim) Dim {
	var r Dim
	for i := range r.exps {
		r.exps[i] = d.exps[i] + o.exps[i]
	}

	return r
}

// Pow returns the dimension raised to an integer power: exponents scale.
// Pow(0) is Dimensionless for any receiver.
func (d Dim) Pow(n int) Dim {
	var r Dim
	for i := range r.exps {
		r.exps[i] = d.exps[i] * n
	}

	return r
}
