// Package array provides fixed-rank containers of exact-precision decimals
// with element-wise and scalar arithmetic. Arrays are immutable: every
// operation returns a new instance and never touches its operands, so
// concurrent readers of a shared array need no coordination.
package array

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/decimal"
)

// ctx is the arithmetic context for element-wise operations. Arrays carry
// more headroom than scalar math so long reductions do not lose digits.
var ctx = decimal.Context(200)

// Array1 is a fixed-length ordered sequence of exact decimals.
type Array1 struct {
	elems []*apd.Decimal
}

// Array2 is an N×M grid: N rows of identical length M.
type Array2 struct {
	rows []*Array1
	cols int
}

// Array3 is a P×N×M volume: P grids of identical shape N×M.
type Array3 struct {
	layers []*Array2
	rows   int
	cols   int
}

// New1 builds a 1-D array from a flat sequence of numeric leaves.
func New1(data []any) (*Array1, error) {
	elems := make([]*apd.Decimal, len(data))
	for i, v := range data {
		d, err := decimal.Coerce(v)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrConstruction, i, err)
		}
		elems[i] = d
	}
	return &Array1{elems: elems}, nil
}

// New2 builds a 2-D array from a sequence of equally-sized rows.
func New2(data []any) (*Array2, error) {
	rows := make([]*Array1, len(data))
	cols := 0
	for i, v := range data {
		seq, ok := asSlice(v)
		if !ok {
			return nil, fmt.Errorf("%w: row %d is not a sequence", ErrConstruction, i)
		}
		row, err := New1(seq)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrConstruction, i, unwrapConstruction(err))
		}
		if i == 0 {
			cols = row.Len()
		} else if row.Len() != cols {
			return nil, fmt.Errorf("%w: ragged rows (row 0 has %d elements, row %d has %d)",
				ErrConstruction, cols, i, row.Len())
		}
		rows[i] = row
	}
	return &Array2{rows: rows, cols: cols}, nil
}

// New3 builds a 3-D array from a sequence of equally-shaped grids.
func New3(data []any) (*Array3, error) {
	layers := make([]*Array2, len(data))
	rows, cols := 0, 0
	for i, v := range data {
		seq, ok := asSlice(v)
		if !ok {
			return nil, fmt.Errorf("%w: layer %d is not a sequence", ErrConstruction, i)
		}
		layer, err := New2(seq)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d: %v", ErrConstruction, i, unwrapConstruction(err))
		}
		r, c := layer.Shape()
		if i == 0 {
			rows, cols = r, c
		} else if r != rows || c != cols {
			return nil, fmt.Errorf("%w: ragged layers (layer 0 is %dx%d, layer %d is %dx%d)",
				ErrConstruction, rows, cols, i, r, c)
		}
		layers[i] = layer
	}
	return &Array3{layers: layers, rows: rows, cols: cols}, nil
}

// asSlice widens the sequence kinds a nested literal may arrive as.
func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []float64:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	case []int64:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	case []string:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	default:
		return nil, false
	}
}

// unwrapConstruction strips the inner ErrConstruction prefix so nested
// wrapping does not repeat "array: malformed construction input" per level.
func unwrapConstruction(err error) string {
	msg := err.Error()
	prefix := ErrConstruction.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

// Len returns the element count.
func (a *Array1) Len() int { return len(a.elems) }

// Shape returns (rows, cols).
func (a *Array2) Shape() (int, int) { return len(a.rows), a.cols }

// Shape returns (layers, rows, cols).
func (a *Array3) Shape() (int, int, int) { return len(a.layers), a.rows, a.cols }

// At returns a copy of the element at i.
func (a *Array1) At(i int) (*apd.Decimal, error) {
	if i < 0 || i >= len(a.elems) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	return new(apd.Decimal).Set(a.elems[i]), nil
}

// Row returns the row at i.
func (a *Array2) Row(i int) (*Array1, error) {
	if i < 0 || i >= len(a.rows) {
		return nil, fmt.Errorf("%w: row %d, rows %d", ErrIndexOutOfRange, i, len(a.rows))
	}
	return a.rows[i], nil
}

// Layer returns the grid at i.
func (a *Array3) Layer(i int) (*Array2, error) {
	if i < 0 || i >= len(a.layers) {
		return nil, fmt.Errorf("%w: layer %d, layers %d", ErrIndexOutOfRange, i, len(a.layers))
	}
	return a.layers[i], nil
}

// Equal reports structural equality: identical shape and exactly equal
// elements. Exact arithmetic makes tolerance comparison unnecessary.
func (a *Array1) Equal(b *Array1) bool {
	if b == nil || len(a.elems) != len(b.elems) {
		return false
	}
	for i := range a.elems {
		if !decimal.Equal(a.elems[i], b.elems[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality of two grids.
func (a *Array2) Equal(b *Array2) bool {
	if b == nil || len(a.rows) != len(b.rows) || a.cols != b.cols {
		return false
	}
	for i := range a.rows {
		if !a.rows[i].Equal(b.rows[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality of two volumes.
func (a *Array3) Equal(b *Array3) bool {
	if b == nil || len(a.layers) != len(b.layers) || a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.layers {
		if !a.layers[i].Equal(b.layers[i]) {
			return false
		}
	}
	return true
}

// ToList renders the plain nested representation: whole values become
// int64, the rest float64. Used for output and interop only.
func (a *Array1) ToList() []any {
	return decimal.NativeList(a.elems)
}

// ToList renders nested rows of plain numbers.
func (a *Array2) ToList() []any {
	out := make([]any, len(a.rows))
	for i, r := range a.rows {
		out[i] = r.ToList()
	}
	return out
}

// ToList renders nested layers of plain numbers.
func (a *Array3) ToList() []any {
	out := make([]any, len(a.layers))
	for i, l := range a.layers {
		out[i] = l.ToList()
	}
	return out
}

// Strings renders the exact decimal text of every element.
func (a *Array1) Strings() []string {
	out := make([]string, len(a.elems))
	for i, d := range a.elems {
		out[i] = decimal.String(d)
	}
	return out
}

func (a *Array1) String() string {
	return fmt.Sprintf("Array1(%v)", a.Strings())
}

func (a *Array2) String() string {
	r, c := a.Shape()
	return fmt.Sprintf("Array2(%dx%d)", r, c)
}

func (a *Array3) String() string {
	p, r, c := a.Shape()
	return fmt.Sprintf("Array3(%dx%dx%d)", p, r, c)
}
