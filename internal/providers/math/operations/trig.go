package operations

import (
	"context"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/providers/math/common"
	"github.com/decikit/decikit/internal/stable"
	"github.com/decikit/decikit/internal/types"
)

// TrigOps handles series-based trigonometry and logarithms. Evaluations are
// memoized per exact input text: the series are the slowest operations in
// the toolkit and calculators tend to repeat arguments.
type TrigOps struct {
	*common.MathOps

	sin *stable.Func[string, *apd.Decimal]
	cos *stable.Func[string, *apd.Decimal]
	ln  *stable.Func[string, *apd.Decimal]
}

// NewTrigOps creates the trig module with memoized series evaluators.
func NewTrigOps(ops *common.MathOps) *TrigOps {
	t := &TrigOps{MathOps: ops}
	t.sin = stable.New(func(key string) (*apd.Decimal, error) {
		x, _, err := t.Ctx.NewFromString(key)
		if err != nil {
			return nil, err
		}
		return t.sinSeries(x)
	})
	t.cos = stable.New(func(key string) (*apd.Decimal, error) {
		x, _, err := t.Ctx.NewFromString(key)
		if err != nil {
			return nil, err
		}
		return t.cosSeries(x)
	})
	t.ln = stable.New(func(key string) (*apd.Decimal, error) {
		x, _, err := t.Ctx.NewFromString(key)
		if err != nil {
			return nil, err
		}
		res := new(apd.Decimal)
		if _, err := t.Ctx.Ln(res, x); err != nil {
			return nil, err
		}
		return res, nil
	})
	return t
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.sin",
			Name:        "Sine",
			Description: "Calculate sin(x) for x in radians",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.cos",
			Name:        "Cosine",
			Description: "Calculate cos(x) for x in radians",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.tan",
			Name:        "Tangent",
			Description: "Calculate tan(x) for x in radians",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.ln",
			Name:        "Natural Logarithm",
			Description: "Calculate ln(x) (base e)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Positive number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.log",
			Name:        "Logarithm",
			Description: "Calculate log of x in an arbitrary base (default 10)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Positive number", Required: true},
				{Name: "base", Type: "number", Description: "Base (default 10)", Required: false},
			},
			Returns: "number",
		},
	}
}

// seriesEpsilon terminates Maclaurin summation once terms drop below 1e-40,
// the original convergence bound of this toolkit.
var seriesEpsilon = apd.New(1, -40)

// sinSeries sums x - x³/3! + x⁵/5! - ...
func (t *TrigOps) sinSeries(x *apd.Decimal) (*apd.Decimal, error) {
	xx := new(apd.Decimal)
	if _, err := t.Ctx.Mul(xx, x, x); err != nil {
		return nil, err
	}

	term := new(apd.Decimal).Set(x)
	sum := new(apd.Decimal).Set(x)
	abs := new(apd.Decimal)
	for n := int64(1); n < 1000; n++ {
		// term *= -x² / ((2n)(2n+1))
		if _, err := t.Ctx.Mul(term, term, xx); err != nil {
			return nil, err
		}
		if _, err := t.Ctx.Quo(term, term, apd.New(2*n*(2*n+1), 0)); err != nil {
			return nil, err
		}
		term.Neg(term)
		if _, err := t.Ctx.Add(sum, sum, term); err != nil {
			return nil, err
		}
		if abs.Abs(term); abs.Cmp(seriesEpsilon) < 0 {
			return sum, nil
		}
	}
	return nil, fmt.Errorf("series did not converge")
}

// cosSeries sums 1 - x²/2! + x⁴/4! - ...
func (t *TrigOps) cosSeries(x *apd.Decimal) (*apd.Decimal, error) {
	xx := new(apd.Decimal)
	if _, err := t.Ctx.Mul(xx, x, x); err != nil {
		return nil, err
	}

	term := apd.New(1, 0)
	sum := apd.New(1, 0)
	abs := new(apd.Decimal)
	for n := int64(1); n < 1000; n++ {
		// term *= -x² / ((2n-1)(2n))
		if _, err := t.Ctx.Mul(term, term, xx); err != nil {
			return nil, err
		}
		if _, err := t.Ctx.Quo(term, term, apd.New((2*n-1)*2*n, 0)); err != nil {
			return nil, err
		}
		term.Neg(term)
		if _, err := t.Ctx.Add(sum, sum, term); err != nil {
			return nil, err
		}
		if abs.Abs(term); abs.Cmp(seriesEpsilon) < 0 {
			return sum, nil
		}
	}
	return nil, fmt.Errorf("series did not converge")
}

// Sin calculates sin(x)
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetDecimal(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	res, err := t.sin.Do(x.String())
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Cos calculates cos(x)
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetDecimal(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	res, err := t.cos.Do(x.String())
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Tan calculates tan(x) as sin(x)/cos(x)
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetDecimal(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	sin, err := t.sin.Do(x.String())
	if err != nil {
		return common.Failure(err.Error())
	}
	cos, err := t.cos.Do(x.String())
	if err != nil {
		return common.Failure(err.Error())
	}
	if cos.IsZero() {
		return common.Failure("tangent undefined: cos(x) is zero")
	}

	res := new(apd.Decimal)
	if _, err := t.Ctx.Quo(res, sin, cos); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Ln calculates the natural logarithm
func (t *TrigOps) Ln(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetDecimal(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if x.Sign() <= 0 {
		return common.Failure("logarithm undefined for non-positive numbers")
	}

	res, err := t.ln.Do(x.String())
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Log calculates log of x in an arbitrary base as ln(x)/ln(base)
func (t *TrigOps) Log(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetDecimal(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if x.Sign() <= 0 {
		return common.Failure("logarithm undefined for non-positive numbers")
	}

	base, ok := common.GetDecimal(params, "base")
	if !ok {
		base = apd.New(10, 0)
	}
	one := apd.New(1, 0)
	if base.Sign() <= 0 || base.Cmp(one) == 0 {
		return common.Failure("base must be positive and not 1")
	}

	lnX, err := t.ln.Do(x.String())
	if err != nil {
		return common.Failure(err.Error())
	}
	lnBase, err := t.ln.Do(base.String())
	if err != nil {
		return common.Failure(err.Error())
	}

	res := new(apd.Decimal)
	if _, err := t.Ctx.Quo(res, lnX, lnBase); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}
