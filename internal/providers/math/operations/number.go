package operations

import (
	"context"
	gomath "math"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/decimal"
	"github.com/decikit/decikit/internal/providers/math/common"
	"github.com/decikit/decikit/internal/types"
)

// NumberOps handles integer-valued number functions
type NumberOps struct {
	*common.MathOps
}

// collatzLimit bounds the step count so a malformed input cannot spin the
// handler forever.
const collatzLimit = 100000

// GetTools returns number-function tool definitions
func (n *NumberOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: "Calculate factorial (n!) exactly",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Non-negative integer", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.fibonacci",
			Name:        "Fibonacci Series",
			Description: "Generate the first n Fibonacci numbers",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Series length", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.triangular",
			Name:        "Triangular Number",
			Description: "Calculate the nth triangular number n(n+1)/2",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.digitalRoot",
			Name:        "Digital Root",
			Description: "Repeatedly sum decimal digits until a single digit remains",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Integer", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.isHarshad",
			Name:        "Harshad Check",
			Description: "Check whether n is divisible by its digit sum",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Positive integer", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "math.collatzSteps",
			Name:        "Collatz Steps",
			Description: "Count Collatz iterations until n reaches 1",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Positive integer", Required: true},
			},
			Returns: "number",
		},
	}
}

// Factorial calculates n! exactly
func (n *NumberOps) Factorial(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n must be an integer")
	}
	if v < 0 {
		return common.Failure("factorial not defined for negatives")
	}
	if v > 10000 {
		return common.Failure("n too large")
	}

	result := apd.New(1, 0)
	for i := int64(2); i <= v; i++ {
		if _, err := n.Ctx.Mul(result, result, apd.New(i, 0)); err != nil {
			return common.Failure(err.Error())
		}
	}
	return common.Success(common.Render(result))
}

// Fibonacci generates the first n series values
func (n *NumberOps) Fibonacci(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	count, ok := common.GetInt(params, "n")
	if !ok || count < 0 {
		return common.Failure("n must be a non-negative integer")
	}
	if count > 10000 {
		return common.Failure("n too large")
	}

	a, b := apd.New(0, 0), apd.New(1, 0)
	series := make([]interface{}, 0, count)
	for i := int64(0); i < count; i++ {
		series = append(series, decimal.Native(a))
		next := new(apd.Decimal)
		if _, err := n.Ctx.Add(next, a, b); err != nil {
			return common.Failure(err.Error())
		}
		a, b = b, next
	}
	return common.Success(map[string]interface{}{"result": series})
}

// Triangular calculates n(n+1)/2
func (n *NumberOps) Triangular(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetDecimal(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}

	res := new(apd.Decimal)
	if _, err := n.Ctx.Add(res, v, apd.New(1, 0)); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := n.Ctx.Mul(res, res, v); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := n.Ctx.Quo(res, res, apd.New(2, 0)); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// DigitalRoot repeatedly sums decimal digits until one digit remains
func (n *NumberOps) DigitalRoot(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n must be an integer")
	}
	if v == gomath.MinInt64 {
		return common.Failure("n out of range")
	}
	if v < 0 {
		v = -v
	}

	for v >= 10 {
		sum := int64(0)
		for x := v; x > 0; x /= 10 {
			sum += x % 10
		}
		v = sum
	}
	return common.Success(map[string]interface{}{"result": v})
}

// IsHarshad checks divisibility by digit sum
func (n *NumberOps) IsHarshad(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n must be an integer")
	}
	if v <= 0 {
		return common.Failure("n must be positive")
	}

	sum := int64(0)
	for x := v; x > 0; x /= 10 {
		sum += x % 10
	}
	return common.Success(map[string]interface{}{"result": v%sum == 0})
}

// CollatzSteps counts iterations of the Collatz map until n reaches 1
func (n *NumberOps) CollatzSteps(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n must be an integer")
	}
	if v <= 0 {
		return common.Failure("n must be positive")
	}

	steps := 0
	for v != 1 {
		if v%2 == 0 {
			v /= 2
		} else {
			v = 3*v + 1
		}
		steps++
		if steps >= collatzLimit {
			return common.Failure("step limit exceeded")
		}
	}
	return common.Success(map[string]interface{}{"result": steps})
}
