package operations

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/providers/math/common"
	"github.com/decikit/decikit/internal/types"
)

// ArithmeticOps handles basic exact-decimal arithmetic
type ArithmeticOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.add",
			Name:        "Add",
			Description: "Add two or more numbers exactly",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to add", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a exactly",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.multiply",
			Name:        "Multiply",
			Description: "Multiply two or more numbers exactly",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to multiply", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.divide",
			Name:        "Divide",
			Description: "Divide a by b with exact decimal precision",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Dividend", Required: true},
				{Name: "b", Type: "number", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise a to the power of b (a^b)",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.sqrt",
			Name:        "Square Root",
			Description: "Calculate square root of a number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.cbrt",
			Name:        "Cube Root",
			Description: "Calculate cube root of a number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.abs",
			Name:        "Absolute Value",
			Description: "Get absolute value of a number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
	}
}

// Add adds numbers exactly
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetDecimals(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	sum := apd.New(0, 0)
	for _, n := range numbers {
		if _, err := a.Ctx.Add(sum, sum, n); err != nil {
			return common.Failure(err.Error())
		}
	}

	return common.Success(common.Render(sum))
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	valA, ok := common.GetDecimal(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	valB, ok := common.GetDecimal(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	res := new(apd.Decimal)
	if _, err := a.Ctx.Sub(res, valA, valB); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Multiply multiplies numbers exactly
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetDecimals(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	product := apd.New(1, 0)
	for _, n := range numbers {
		if _, err := a.Ctx.Mul(product, product, n); err != nil {
			return common.Failure(err.Error())
		}
	}

	return common.Success(common.Render(product))
}

// Divide divides a by b
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	valA, ok := common.GetDecimal(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	valB, ok := common.GetDecimal(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}
	if valB.IsZero() {
		return common.Failure("division by zero")
	}

	res := new(apd.Decimal)
	if _, err := a.Ctx.Quo(res, valA, valB); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	base, ok := common.GetDecimal(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	exponent, ok := common.GetDecimal(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}

	res := new(apd.Decimal)
	if _, err := a.Ctx.Pow(res, base, exponent); err != nil {
		return common.Failure("power undefined for these operands")
	}
	return common.Success(common.Render(res))
}

// Sqrt calculates square root
func (a *ArithmeticOps) Sqrt(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetDecimal(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if x.Sign() < 0 {
		return common.Failure("cannot take square root of negative number")
	}

	res := new(apd.Decimal)
	if _, err := a.Ctx.Sqrt(res, x); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Cbrt calculates cube root
func (a *ArithmeticOps) Cbrt(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetDecimal(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	res := new(apd.Decimal)
	if _, err := a.Ctx.Cbrt(res, x); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Abs calculates absolute value
func (a *ArithmeticOps) Abs(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetDecimal(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	res := new(apd.Decimal).Abs(x)
	return common.Success(common.Render(res))
}
