package array

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Sum returns the exact sum of all elements; zero for an empty array.
func (a *Array1) Sum() (*apd.Decimal, error) {
	total := apd.New(0, 0)
	for _, d := range a.elems {
		if _, err := ctx.Add(total, total, d); err != nil {
			return nil, err
		}
	}
	return total, nil
}

// Mean returns the exact arithmetic mean. Undefined on empty input.
func (a *Array1) Mean() (*apd.Decimal, error) {
	if len(a.elems) == 0 {
		return nil, fmt.Errorf("%w: mean undefined", ErrEmpty)
	}
	total, err := a.Sum()
	if err != nil {
		return nil, err
	}
	res := new(apd.Decimal)
	if _, err := ctx.Quo(res, total, apd.New(int64(len(a.elems)), 0)); err != nil {
		return nil, err
	}
	return res, nil
}

// CumSum returns the running-total array of the same length.
func (a *Array1) CumSum() (*Array1, error) {
	total := apd.New(0, 0)
	elems := make([]*apd.Decimal, len(a.elems))
	for i, d := range a.elems {
		if _, err := ctx.Add(total, total, d); err != nil {
			return nil, err
		}
		elems[i] = new(apd.Decimal).Set(total)
	}
	return &Array1{elems: elems}, nil
}

// Dot returns the exact inner product of two equal-length arrays.
func (a *Array1) Dot(b *Array1) (*apd.Decimal, error) {
	if b == nil || b.Len() != a.Len() {
		got := 0
		if b != nil {
			got = b.Len()
		}
		return nil, fmt.Errorf("%w: dot product requires equal lengths (%d vs %d)",
			ErrShapeMismatch, a.Len(), got)
	}
	total := apd.New(0, 0)
	prod := new(apd.Decimal)
	for i := range a.elems {
		if _, err := ctx.Mul(prod, a.elems[i], b.elems[i]); err != nil {
			return nil, err
		}
		if _, err := ctx.Add(total, total, prod); err != nil {
			return nil, err
		}
	}
	return total, nil
}
