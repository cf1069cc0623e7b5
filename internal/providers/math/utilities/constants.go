// Package utilities exposes well-known mathematical constants.
package utilities

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/decimal"
	"github.com/decikit/decikit/internal/providers/math/common"
	"github.com/decikit/decikit/internal/types"
)

// ConstantOps serves named constants at full stored precision.
type ConstantOps struct {
	*common.MathOps
}

// GetTools returns constant tool definitions
func (c *ConstantOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.constant",
			Name:        "Constant",
			Description: "Look up a named mathematical constant (pi, e, tau, phi)",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "Constant name", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.constants",
			Name:        "List Constants",
			Description: "List all available constants with exact values",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
	}
}

// tau is 2π and phi is the golden ratio, stored to the same 40 digits
// as the shared pi and e constants.
var (
	tau = decimal.MustParse("6.283185307179586476925286766559005768394")
	phi = decimal.MustParse("1.618033988749894848204586834365638117720")
)

func lookup(name string) (*apd.Decimal, bool) {
	switch name {
	case "pi":
		return decimal.Pi, true
	case "e":
		return decimal.E, true
	case "tau":
		return tau, true
	case "phi":
		return phi, true
	default:
		return nil, false
	}
}

// Constant returns one named constant
func (c *ConstantOps) Constant(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	name, ok := common.GetString(params, "name")
	if !ok {
		return common.Failure("name parameter required")
	}

	d, ok := lookup(name)
	if !ok {
		return common.Failuref("unknown constant: %s", name)
	}
	return common.Success(common.Render(d))
}

// Constants lists every constant with its exact text form
func (c *ConstantOps) Constants(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	out := make(map[string]interface{}, 4)
	for _, name := range []string{"pi", "e", "tau", "phi"} {
		d, _ := lookup(name)
		out[name] = decimal.String(d)
	}
	return common.Success(map[string]interface{}{"constants": out})
}
