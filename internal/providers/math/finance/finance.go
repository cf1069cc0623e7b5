// Package finance provides exact-decimal percentage and interest calculations.
package finance

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/providers/math/common"
	"github.com/decikit/decikit/internal/types"
)

// FinanceOps handles financial calculations
type FinanceOps struct {
	*common.MathOps
}

// GetTools returns finance tool definitions
func (f *FinanceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.percentage",
			Name:        "Percentage",
			Description: "Calculate part as a percentage of whole",
			Parameters: []types.Parameter{
				{Name: "part", Type: "number", Description: "Part value", Required: true},
				{Name: "whole", Type: "number", Description: "Whole value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.simpleInterest",
			Name:        "Simple Interest",
			Description: "Simple interest (P×R×T/100)",
			Parameters: []types.Parameter{
				{Name: "principal", Type: "number", Description: "Principal amount", Required: true},
				{Name: "rate", Type: "number", Description: "Annual rate percent", Required: true},
				{Name: "time", Type: "number", Description: "Time in years", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.compoundInterest",
			Name:        "Compound Interest",
			Description: "Compound amount (P×(1+r/n)^(n×t))",
			Parameters: []types.Parameter{
				{Name: "principal", Type: "number", Description: "Principal amount", Required: true},
				{Name: "rate", Type: "number", Description: "Annual rate percent", Required: true},
				{Name: "time", Type: "number", Description: "Time in years", Required: true},
				{Name: "n", Type: "number", Description: "Compounds per year (default 1)", Required: false},
			},
			Returns: "number",
		},
	}
}

// Percentage calculates part/whole×100
func (f *FinanceOps) Percentage(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	part, ok := common.GetDecimal(params, "part")
	if !ok {
		return common.Failure("part parameter required")
	}
	whole, ok := common.GetDecimal(params, "whole")
	if !ok {
		return common.Failure("whole parameter required")
	}
	if whole.IsZero() {
		return common.Failure("whole must be non-zero")
	}

	res := new(apd.Decimal)
	if _, err := f.Ctx.Quo(res, part, whole); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := f.Ctx.Mul(res, res, apd.New(100, 0)); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// SimpleInterest calculates P×R×T/100
func (f *FinanceOps) SimpleInterest(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	principal, ok := common.GetDecimal(params, "principal")
	if !ok {
		return common.Failure("principal parameter required")
	}
	rate, ok := common.GetDecimal(params, "rate")
	if !ok {
		return common.Failure("rate parameter required")
	}
	time, ok := common.GetDecimal(params, "time")
	if !ok {
		return common.Failure("time parameter required")
	}

	res := new(apd.Decimal)
	if _, err := f.Ctx.Mul(res, principal, rate); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := f.Ctx.Mul(res, res, time); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := f.Ctx.Quo(res, res, apd.New(100, 0)); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// CompoundInterest calculates P×(1+r/n)^(n×t)
func (f *FinanceOps) CompoundInterest(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	principal, ok := common.GetDecimal(params, "principal")
	if !ok {
		return common.Failure("principal parameter required")
	}
	rate, ok := common.GetDecimal(params, "rate")
	if !ok {
		return common.Failure("rate parameter required")
	}
	time, ok := common.GetDecimal(params, "time")
	if !ok {
		return common.Failure("time parameter required")
	}
	n, ok := common.GetDecimal(params, "n")
	if !ok {
		n = apd.New(1, 0)
	}
	if n.Sign() <= 0 {
		return common.Failure("n must be positive")
	}

	// r/n with rate given in percent
	periodic := new(apd.Decimal)
	if _, err := f.Ctx.Quo(periodic, rate, apd.New(100, 0)); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := f.Ctx.Quo(periodic, periodic, n); err != nil {
		return common.Failure(err.Error())
	}

	base := new(apd.Decimal)
	if _, err := f.Ctx.Add(base, apd.New(1, 0), periodic); err != nil {
		return common.Failure(err.Error())
	}

	exponent := new(apd.Decimal)
	if _, err := f.Ctx.Mul(exponent, n, time); err != nil {
		return common.Failure(err.Error())
	}

	res := new(apd.Decimal)
	if _, err := f.Ctx.Pow(res, base, exponent); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := f.Ctx.Mul(res, res, principal); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}
