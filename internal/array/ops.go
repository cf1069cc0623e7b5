package array

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/decimal"
)

// elemOp applies one exact binary operation into res.
type elemOp func(res, x, y *apd.Decimal) error

func opAdd(res, x, y *apd.Decimal) error {
	_, err := ctx.Add(res, x, y)
	return err
}

func opSub(res, x, y *apd.Decimal) error {
	_, err := ctx.Sub(res, x, y)
	return err
}

func opMul(res, x, y *apd.Decimal) error {
	_, err := ctx.Mul(res, x, y)
	return err
}

func opDiv(res, x, y *apd.Decimal) error {
	if y.IsZero() {
		return ErrDivisionByZero
	}
	_, err := ctx.Quo(res, x, y)
	return err
}

// zip applies op pairwise over equal-length element slices.
func zip(a, b []*apd.Decimal, op elemOp) ([]*apd.Decimal, error) {
	out := make([]*apd.Decimal, len(a))
	for i := range a {
		res := new(apd.Decimal)
		if err := op(res, a[i], b[i]); err != nil {
			if err == ErrDivisionByZero {
				return nil, fmt.Errorf("%w: divisor element %d is zero", ErrDivisionByZero, i)
			}
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

// broadcast applies op between every element of a and the single scalar s.
func broadcast(a []*apd.Decimal, s *apd.Decimal, op elemOp) ([]*apd.Decimal, error) {
	out := make([]*apd.Decimal, len(a))
	for i := range a {
		res := new(apd.Decimal)
		if err := op(res, a[i], s); err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

func (a *Array1) binary(b *Array1, op elemOp) (*Array1, error) {
	if b == nil || b.Len() != a.Len() {
		got := 0
		if b != nil {
			got = b.Len()
		}
		return nil, fmt.Errorf("%w: length %d vs %d", ErrShapeMismatch, a.Len(), got)
	}
	elems, err := zip(a.elems, b.elems, op)
	if err != nil {
		return nil, err
	}
	return &Array1{elems: elems}, nil
}

// Add returns a + b element-wise.
func (a *Array1) Add(b *Array1) (*Array1, error) { return a.binary(b, opAdd) }

// Sub returns a - b element-wise.
func (a *Array1) Sub(b *Array1) (*Array1, error) { return a.binary(b, opSub) }

// Mul returns a * b element-wise.
func (a *Array1) Mul(b *Array1) (*Array1, error) { return a.binary(b, opMul) }

// Div returns a / b element-wise. Any zero divisor aborts the operation.
func (a *Array1) Div(b *Array1) (*Array1, error) { return a.binary(b, opDiv) }

func (a *Array1) scalar(v any, op elemOp) (*Array1, error) {
	s, err := decimal.Coerce(v)
	if err != nil {
		return nil, fmt.Errorf("%w: scalar: %v", ErrConstruction, err)
	}
	elems, err := broadcast(a.elems, s, op)
	if err != nil {
		return nil, err
	}
	return &Array1{elems: elems}, nil
}

// AddScalar returns a + s applied to every element.
func (a *Array1) AddScalar(v any) (*Array1, error) { return a.scalar(v, opAdd) }

// SubScalar returns a - s applied to every element.
func (a *Array1) SubScalar(v any) (*Array1, error) { return a.scalar(v, opSub) }

// MulScalar returns a * s applied to every element.
func (a *Array1) MulScalar(v any) (*Array1, error) { return a.scalar(v, opMul) }

// DivScalar returns a / s applied to every element. A zero scalar fails
// even for empty arrays.
func (a *Array1) DivScalar(v any) (*Array1, error) {
	s, err := decimal.Coerce(v)
	if err != nil {
		return nil, fmt.Errorf("%w: scalar: %v", ErrConstruction, err)
	}
	if s.IsZero() {
		return nil, fmt.Errorf("%w: scalar divisor is zero", ErrDivisionByZero)
	}
	elems, err := broadcast(a.elems, s, opDiv)
	if err != nil {
		return nil, err
	}
	return &Array1{elems: elems}, nil
}

func (a *Array2) binary(b *Array2, op func(x, y *Array1) (*Array1, error)) (*Array2, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrShapeMismatch)
	}
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, ar, ac, br, bc)
	}
	rows := make([]*Array1, len(a.rows))
	for i := range a.rows {
		row, err := op(a.rows[i], b.rows[i])
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return &Array2{rows: rows, cols: a.cols}, nil
}

// Add returns a + b element-wise.
func (a *Array2) Add(b *Array2) (*Array2, error) {
	return a.binary(b, (*Array1).Add)
}

// Sub returns a - b element-wise.
func (a *Array2) Sub(b *Array2) (*Array2, error) {
	return a.binary(b, (*Array1).Sub)
}

// Mul returns a * b element-wise.
func (a *Array2) Mul(b *Array2) (*Array2, error) {
	return a.binary(b, (*Array1).Mul)
}

// Div returns a / b element-wise. Any zero divisor aborts the operation.
func (a *Array2) Div(b *Array2) (*Array2, error) {
	return a.binary(b, (*Array1).Div)
}

func (a *Array2) scalar(v any, op func(x *Array1, v any) (*Array1, error)) (*Array2, error) {
	rows := make([]*Array1, len(a.rows))
	for i := range a.rows {
		row, err := op(a.rows[i], v)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return &Array2{rows: rows, cols: a.cols}, nil
}

// AddScalar returns a + s applied to every element.
func (a *Array2) AddScalar(v any) (*Array2, error) { return a.scalar(v, (*Array1).AddScalar) }

// SubScalar returns a - s applied to every element.
func (a *Array2) SubScalar(v any) (*Array2, error) { return a.scalar(v, (*Array1).SubScalar) }

// MulScalar returns a * s applied to every element.
func (a *Array2) MulScalar(v any) (*Array2, error) { return a.scalar(v, (*Array1).MulScalar) }

// DivScalar returns a / s applied to every element.
func (a *Array2) DivScalar(v any) (*Array2, error) { return a.scalar(v, (*Array1).DivScalar) }

func (a *Array3) binary(b *Array3, op func(x, y *Array2) (*Array2, error)) (*Array3, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrShapeMismatch)
	}
	ap, ar, ac := a.Shape()
	bp, br, bc := b.Shape()
	if ap != bp || ar != br || ac != bc {
		return nil, fmt.Errorf("%w: %dx%dx%d vs %dx%dx%d", ErrShapeMismatch, ap, ar, ac, bp, br, bc)
	}
	layers := make([]*Array2, len(a.layers))
	for i := range a.layers {
		layer, err := op(a.layers[i], b.layers[i])
		if err != nil {
			return nil, err
		}
		layers[i] = layer
	}
	return &Array3{layers: layers, rows: a.rows, cols: a.cols}, nil
}

// Add returns a + b element-wise.
func (a *Array3) Add(b *Array3) (*Array3, error) {
	return a.binary(b, (*Array2).Add)
}

// Sub returns a - b element-wise.
func (a *Array3) Sub(b *Array3) (*Array3, error) {
	return a.binary(b, (*Array2).Sub)
}

// Mul returns a * b element-wise.
func (a *Array3) Mul(b *Array3) (*Array3, error) {
	return a.binary(b, (*Array2).Mul)
}

// Div returns a / b element-wise. Any zero divisor aborts the operation.
func (a *Array3) Div(b *Array3) (*Array3, error) {
	return a.binary(b, (*Array2).Div)
}

func (a *Array3) scalar(v any, op func(x *Array2, v any) (*Array2, error)) (*Array3, error) {
	layers := make([]*Array2, len(a.layers))
	for i := range a.layers {
		layer, err := op(a.layers[i], v)
		if err != nil {
			return nil, err
		}
		layers[i] = layer
	}
	return &Array3{layers: layers, rows: a.rows, cols: a.cols}, nil
}

// AddScalar returns a + s applied to every element.
func (a *Array3) AddScalar(v any) (*Array3, error) { return a.scalar(v, (*Array2).AddScalar) }

// SubScalar returns a - s applied to every element.
func (a *Array3) SubScalar(v any) (*Array3, error) { return a.scalar(v, (*Array2).SubScalar) }

// MulScalar returns a * s applied to every element.
func (a *Array3) MulScalar(v any) (*Array3, error) { return a.scalar(v, (*Array2).MulScalar) }

// DivScalar returns a / s applied to every element.
func (a *Array3) DivScalar(v any) (*Array3, error) { return a.scalar(v, (*Array2).DivScalar) }
