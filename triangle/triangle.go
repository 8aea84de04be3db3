package triangle

import (
	"slices"

	"github.com/wippyai/pascal-host/errors"
)

// MaxLen32 is the largest row length whose coefficients all fit in uint32.
// Row(MaxLen32) peaks at C(34,17) = 2,333,606,220; one row further the
// center coefficient no longer fits and Row wraps.
const MaxLen32 = 35

// Row returns the n binomial coefficients C(n-1, 0..n-1), i.e. row n-1 of
// Pascal's triangle. The result has length exactly n; Row(0) is empty and
// Row(1) is [1].
//
// Coefficients are accumulated in uint32 and wrap silently once n exceeds
// MaxLen32. Use RowChecked when wraparound must be reported instead.
//
// Row panics if n is negative. Callers holding untrusted input must reject
// negative lengths before reaching the generator.
func Row(n int) []uint32 {
	return AppendRow(make([]uint32, 0, n), n)
}

// AppendRow appends row n-1's coefficients to dst and returns the extended
// slice. It allocates only when dst lacks capacity, so a caller on a hot
// path can reuse one buffer across calls:
//
//	buf = triangle.AppendRow(buf[:0], n)
//
// The appended region follows the same contract as Row.
func AppendRow(dst []uint32, n int) []uint32 {
	if n < 0 {
		panic("triangle: negative row length")
	}
	start := len(dst)
	dst = slices.Grow(dst, n)[:start+n]
	row := dst[start:]
	clear(row)
	if n == 0 {
		return dst
	}

	row[0] = 1
	for i := 1; i < n; i++ {
		// Derive row i from row i-1 in place. Ascending j with a single
		// carried value: before position j is touched it still holds
		// row i-1's coefficient, and positions 1..j-1 already hold row i's.
		carry := uint32(1)
		for j := 1; j <= i; j++ {
			prev := row[j]
			row[j] = carry + prev
			carry = prev
		}
	}
	return dst
}

// RowChecked is Row with wraparound detection: it returns an overflow error
// naming the first coefficient that no longer fits in uint32, instead of
// wrapping. Within MaxLen32 it returns exactly what Row returns.
//
// Unlike Row it also rejects negative n with an error rather than a panic,
// making it the safe entry point for boundary-supplied lengths.
func RowChecked(n int) ([]uint32, error) {
	if n < 0 {
		return nil, errors.InvalidInput(errors.PhaseValidate, "row length must be non-negative")
	}
	row := make([]uint32, n)
	if n == 0 {
		return row, nil
	}

	row[0] = 1
	for i := 1; i < n; i++ {
		carry := uint32(1)
		for j := 1; j <= i; j++ {
			prev := row[j]
			sum := carry + prev
			if sum < carry {
				return nil, errors.Overflow(errors.PhaseGenerate, i, j, "uint32")
			}
			row[j] = sum
			carry = prev
		}
	}
	return row, nil
}
