// Package math provides exact-decimal mathematical operations as a service.
package math

import (
	"context"
	"fmt"

	"github.com/decikit/decikit/internal/providers/math/common"
	"github.com/decikit/decikit/internal/providers/math/finance"
	"github.com/decikit/decikit/internal/providers/math/geometry"
	"github.com/decikit/decikit/internal/providers/math/operations"
	"github.com/decikit/decikit/internal/providers/math/statistics"
	"github.com/decikit/decikit/internal/providers/math/utilities"
	"github.com/decikit/decikit/internal/types"
)

// Provider implements mathematical operations
type Provider struct {
	// Module instances
	arithmetic *operations.ArithmeticOps
	number     *operations.NumberOps
	trig       *operations.TrigOps
	geometry   *geometry.GeometryOps
	finance    *finance.FinanceOps
	stats      *statistics.StatsOps
	constants  *utilities.ConstantOps
}

// NewProvider creates a modular math provider with the given decimal precision
func NewProvider(precision uint32) *Provider {
	ops := common.NewMathOps(precision)

	return &Provider{
		arithmetic: &operations.ArithmeticOps{MathOps: ops},
		number:     &operations.NumberOps{MathOps: ops},
		trig:       operations.NewTrigOps(ops),
		geometry:   &geometry.GeometryOps{MathOps: ops},
		finance:    &finance.FinanceOps{MathOps: ops},
		stats:      &statistics.StatsOps{MathOps: ops},
		constants:  &utilities.ConstantOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.number.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.geometry.GetTools()...)
	tools = append(tools, m.finance.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.constants.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Exact-decimal mathematics (arithmetic, number theory, trig, geometry, finance, statistics)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"number-theory",
			"trigonometry",
			"geometry",
			"finance",
			"statistics",
			"constants",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "math.add":
		return m.arithmetic.Add(ctx, params, callCtx)
	case "math.subtract":
		return m.arithmetic.Subtract(ctx, params, callCtx)
	case "math.multiply":
		return m.arithmetic.Multiply(ctx, params, callCtx)
	case "math.divide":
		return m.arithmetic.Divide(ctx, params, callCtx)
	case "math.power":
		return m.arithmetic.Power(ctx, params, callCtx)
	case "math.sqrt":
		return m.arithmetic.Sqrt(ctx, params, callCtx)
	case "math.cbrt":
		return m.arithmetic.Cbrt(ctx, params, callCtx)
	case "math.abs":
		return m.arithmetic.Abs(ctx, params, callCtx)

	// Number theory
	case "math.factorial":
		return m.number.Factorial(ctx, params, callCtx)
	case "math.fibonacci":
		return m.number.Fibonacci(ctx, params, callCtx)
	case "math.triangular":
		return m.number.Triangular(ctx, params, callCtx)
	case "math.digitalRoot":
		return m.number.DigitalRoot(ctx, params, callCtx)
	case "math.isHarshad":
		return m.number.IsHarshad(ctx, params, callCtx)
	case "math.collatzSteps":
		return m.number.CollatzSteps(ctx, params, callCtx)

	// Trig and logarithms
	case "math.sin":
		return m.trig.Sin(ctx, params, callCtx)
	case "math.cos":
		return m.trig.Cos(ctx, params, callCtx)
	case "math.tan":
		return m.trig.Tan(ctx, params, callCtx)
	case "math.ln":
		return m.trig.Ln(ctx, params, callCtx)
	case "math.log":
		return m.trig.Log(ctx, params, callCtx)

	// Geometry
	case "math.circumference":
		return m.geometry.Circumference(ctx, params, callCtx)
	case "math.areaCircle":
		return m.geometry.AreaCircle(ctx, params, callCtx)
	case "math.areaSquare":
		return m.geometry.AreaSquare(ctx, params, callCtx)
	case "math.areaRectangle":
		return m.geometry.AreaRectangle(ctx, params, callCtx)
	case "math.areaTriangle":
		return m.geometry.AreaTriangle(ctx, params, callCtx)
	case "math.perimeterSquare":
		return m.geometry.PerimeterSquare(ctx, params, callCtx)
	case "math.perimeterRectangle":
		return m.geometry.PerimeterRectangle(ctx, params, callCtx)
	case "math.distance2d":
		return m.geometry.Distance2D(ctx, params, callCtx)
	case "math.pythagoras":
		return m.geometry.Pythagoras(ctx, params, callCtx)
	case "math.cubeVolume":
		return m.geometry.CubeVolume(ctx, params, callCtx)
	case "math.cubeSurfaceArea":
		return m.geometry.CubeSurfaceArea(ctx, params, callCtx)

	// Finance
	case "math.percentage":
		return m.finance.Percentage(ctx, params, callCtx)
	case "math.simpleInterest":
		return m.finance.SimpleInterest(ctx, params, callCtx)
	case "math.compoundInterest":
		return m.finance.CompoundInterest(ctx, params, callCtx)

	// Stats operations
	case "math.mean":
		return m.stats.Mean(ctx, params, callCtx)
	case "math.median":
		return m.stats.Median(ctx, params, callCtx)
	case "math.min":
		return m.stats.Min(ctx, params, callCtx)
	case "math.max":
		return m.stats.Max(ctx, params, callCtx)
	case "math.sum":
		return m.stats.Sum(ctx, params, callCtx)
	case "math.stdev":
		return m.stats.Stdev(ctx, params, callCtx)
	case "math.variance":
		return m.stats.Variance(ctx, params, callCtx)
	case "math.percentile":
		return m.stats.Percentile(ctx, params, callCtx)
	case "math.correlation":
		return m.stats.Correlation(ctx, params, callCtx)

	// Constants
	case "math.constant":
		return m.constants.Constant(ctx, params, callCtx)
	case "math.constants":
		return m.constants.Constants(ctx, params, callCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
