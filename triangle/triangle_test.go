package triangle

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/wippyai/pascal-host/errors"
)

// rowWide recomputes the row with uint64 arithmetic. Exact for every length
// used in these tests, so it serves as the reference for wrap behavior.
func rowWide(n int) []uint64 {
	row := make([]uint64, n)
	if n == 0 {
		return row
	}
	row[0] = 1
	for i := 1; i < n; i++ {
		carry := uint64(1)
		for j := 1; j <= i; j++ {
			prev := row[j]
			row[j] = carry + prev
			carry = prev
		}
	}
	return row
}

func TestRow_Length(t *testing.T) {
	for n := 0; n <= 64; n++ {
		if got := len(Row(n)); got != n {
			t.Errorf("len(Row(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestRow_Empty(t *testing.T) {
	row := Row(0)
	if row == nil {
		t.Fatal("Row(0) = nil, want empty slice")
	}
	if len(row) != 0 {
		t.Errorf("Row(0) = %v, want empty", row)
	}
}

func TestRow_Known(t *testing.T) {
	tests := []struct {
		n    int
		want []uint32
	}{
		{1, []uint32{1}},
		{2, []uint32{1, 1}},
		{3, []uint32{1, 2, 1}},
		{5, []uint32{1, 4, 6, 4, 1}},
		{6, []uint32{1, 5, 10, 10, 5, 1}},
	}

	for _, tt := range tests {
		got := Row(tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("Row(%d) = %v, want %v", tt.n, got, tt.want)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Row(%d)[%d] = %d, want %d", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRow_Palindrome(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16, 35} {
		row := Row(n)
		for i := range row {
			if row[i] != row[n-1-i] {
				t.Errorf("Row(%d): position %d = %d, mirror %d = %d", n, i, row[i], n-1-i, row[n-1-i])
			}
		}
	}
}

func TestRow_Recurrence(t *testing.T) {
	// Each interior coefficient must equal the sum of its two parents in
	// the previous row, recomputed independently.
	for n := 2; n <= 30; n++ {
		prev := Row(n - 1)
		cur := Row(n)
		for i := 1; i < n-1; i++ {
			want := prev[i-1] + prev[i]
			if cur[i] != want {
				t.Errorf("Row(%d)[%d] = %d, want Row(%d)[%d]+Row(%d)[%d] = %d",
					n, i, cur[i], n-1, i-1, n-1, i, want)
			}
		}
	}
}

func TestRow_Deterministic(t *testing.T) {
	a := Row(30)
	b := Row(30)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("repeated Row(30) disagree at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestRow_EdgesAreOne(t *testing.T) {
	for _, n := range []int{1, 2, 10, 35, 40} {
		row := Row(n)
		if row[0] != 1 {
			t.Errorf("Row(%d)[0] = %d, want 1", n, row[0])
		}
		if row[n-1] != 1 {
			t.Errorf("Row(%d)[%d] = %d, want 1", n, n-1, row[n-1])
		}
	}
}

func TestRow_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Row(-1) did not panic")
		}
	}()
	Row(-1)
}

func TestRow_MaxLen32(t *testing.T) {
	// The widest coefficient of the last exact row.
	row := Row(MaxLen32)
	if got := row[17]; got != 2333606220 {
		t.Errorf("Row(%d)[17] = %d, want 2333606220", MaxLen32, got)
	}
	if _, err := RowChecked(MaxLen32); err != nil {
		t.Errorf("RowChecked(%d) = %v, want nil error", MaxLen32, err)
	}
}

func TestRow_WrapsBeyondMaxLen32(t *testing.T) {
	for _, n := range []int{MaxLen32 + 1, 40} {
		wide := rowWide(n)
		overflowed := false
		for _, v := range wide {
			if v > math.MaxUint32 {
				overflowed = true
			}
		}
		if !overflowed {
			t.Fatalf("rowWide(%d) has no coefficient beyond uint32; test is vacuous", n)
		}

		// Wrapping addition is addition mod 2^32, so the wrapped row must
		// equal the exact row reduced mod 2^32 at every position.
		row := Row(n)
		for i, v := range wide {
			if row[i] != uint32(v) {
				t.Errorf("Row(%d)[%d] = %d, want %d mod 2^32 = %d", n, i, row[i], v, uint32(v))
			}
		}
	}
}

func TestRowChecked_MatchesRow(t *testing.T) {
	for n := 0; n <= MaxLen32; n++ {
		checked, err := RowChecked(n)
		if err != nil {
			t.Fatalf("RowChecked(%d) = %v, want nil error", n, err)
		}
		plain := Row(n)
		if len(checked) != len(plain) {
			t.Fatalf("RowChecked(%d) length %d, Row length %d", n, len(checked), len(plain))
		}
		for i := range plain {
			if checked[i] != plain[i] {
				t.Errorf("RowChecked(%d)[%d] = %d, Row = %d", n, i, checked[i], plain[i])
			}
		}
	}
}

func TestRowChecked_Overflow(t *testing.T) {
	for _, n := range []int{MaxLen32 + 1, 100} {
		row, err := RowChecked(n)
		if err == nil {
			t.Fatalf("RowChecked(%d) = %v, want overflow error", n, row)
		}
		var e *errors.Error
		if !stderrors.As(err, &e) {
			t.Fatalf("RowChecked(%d) error type %T, want *errors.Error", n, err)
		}
		if e.Kind != errors.KindOverflow {
			t.Errorf("RowChecked(%d) kind = %v, want %v", n, e.Kind, errors.KindOverflow)
		}
	}
}

func TestRowChecked_Negative(t *testing.T) {
	_, err := RowChecked(-3)
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("RowChecked(-3) error type %T, want *errors.Error", err)
	}
	if e.Kind != errors.KindInvalidInput {
		t.Errorf("RowChecked(-3) kind = %v, want %v", e.Kind, errors.KindInvalidInput)
	}
}

func TestAppendRow(t *testing.T) {
	prefix := []uint32{7, 8, 9}
	out := AppendRow(prefix, 5)

	if len(out) != 8 {
		t.Fatalf("len = %d, want 8", len(out))
	}
	for i, v := range []uint32{7, 8, 9} {
		if out[i] != v {
			t.Errorf("prefix[%d] = %d, want %d", i, out[i], v)
		}
	}
	want := []uint32{1, 4, 6, 4, 1}
	for i, v := range want {
		if out[3+i] != v {
			t.Errorf("appended[%d] = %d, want %d", i, out[3+i], v)
		}
	}
}

func TestAppendRow_ReuseDoesNotAllocate(t *testing.T) {
	buf := make([]uint32, 0, 64)
	allocs := testing.AllocsPerRun(100, func() {
		buf = AppendRow(buf[:0], 35)
	})
	if allocs != 0 {
		t.Errorf("AppendRow into sized buffer allocated %.1f times per call, want 0", allocs)
	}
}

func TestAppendRow_ClearsReusedBuffer(t *testing.T) {
	// A dirty buffer must not leak stale values into the new row.
	buf := AppendRow(make([]uint32, 0, 16), 6)
	buf = AppendRow(buf[:0], 3)
	want := []uint32{1, 2, 1}
	for i, v := range want {
		if buf[i] != v {
			t.Errorf("reused buffer row[%d] = %d, want %d", i, buf[i], v)
		}
	}
}
