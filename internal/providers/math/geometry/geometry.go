// Package geometry provides exact-decimal plane and solid geometry formulas.
package geometry

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/decimal"
	"github.com/decikit/decikit/internal/providers/math/common"
	"github.com/decikit/decikit/internal/types"
)

// GeometryOps handles geometry formulas
type GeometryOps struct {
	*common.MathOps
}

// GetTools returns geometry tool definitions
func (g *GeometryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.circumference",
			Name:        "Circumference",
			Description: "Circumference of a circle (2πr)",
			Parameters: []types.Parameter{
				{Name: "radius", Type: "number", Description: "Radius", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.areaCircle",
			Name:        "Circle Area",
			Description: "Area of a circle (πr²)",
			Parameters: []types.Parameter{
				{Name: "radius", Type: "number", Description: "Radius", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.areaSquare",
			Name:        "Square Area",
			Description: "Area of a square (s²)",
			Parameters: []types.Parameter{
				{Name: "side", Type: "number", Description: "Side length", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.areaRectangle",
			Name:        "Rectangle Area",
			Description: "Area of a rectangle (l×b)",
			Parameters: []types.Parameter{
				{Name: "length", Type: "number", Description: "Length", Required: true},
				{Name: "breadth", Type: "number", Description: "Breadth", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.areaTriangle",
			Name:        "Triangle Area",
			Description: "Area of a triangle (base×height/2)",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "height", Type: "number", Description: "Height", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.perimeterSquare",
			Name:        "Square Perimeter",
			Description: "Perimeter of a square (4s)",
			Parameters: []types.Parameter{
				{Name: "side", Type: "number", Description: "Side length", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.perimeterRectangle",
			Name:        "Rectangle Perimeter",
			Description: "Perimeter of a rectangle (2(l+b))",
			Parameters: []types.Parameter{
				{Name: "length", Type: "number", Description: "Length", Required: true},
				{Name: "breadth", Type: "number", Description: "Breadth", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.distance2d",
			Name:        "2D Distance",
			Description: "Euclidean distance between two points",
			Parameters: []types.Parameter{
				{Name: "x1", Type: "number", Description: "First point x", Required: true},
				{Name: "y1", Type: "number", Description: "First point y", Required: true},
				{Name: "x2", Type: "number", Description: "Second point x", Required: true},
				{Name: "y2", Type: "number", Description: "Second point y", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.pythagoras",
			Name:        "Pythagoras",
			Description: "Hypotenuse of a right triangle (√(a²+b²))",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First leg", Required: true},
				{Name: "b", Type: "number", Description: "Second leg", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.cubeVolume",
			Name:        "Cube Volume",
			Description: "Volume of a cube (s³)",
			Parameters: []types.Parameter{
				{Name: "side", Type: "number", Description: "Side length", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.cubeSurfaceArea",
			Name:        "Cube Surface Area",
			Description: "Surface area of a cube (6s²)",
			Parameters: []types.Parameter{
				{Name: "side", Type: "number", Description: "Side length", Required: true},
			},
			Returns: "number",
		},
	}
}

// Circumference calculates 2πr
func (g *GeometryOps) Circumference(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	r, ok := common.GetDecimal(params, "radius")
	if !ok {
		return common.Failure("radius parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Mul(res, decimal.Pi, r); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := g.Ctx.Mul(res, res, apd.New(2, 0)); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// AreaCircle calculates πr²
func (g *GeometryOps) AreaCircle(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	r, ok := common.GetDecimal(params, "radius")
	if !ok {
		return common.Failure("radius parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Mul(res, r, r); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := g.Ctx.Mul(res, res, decimal.Pi); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// AreaSquare calculates s²
func (g *GeometryOps) AreaSquare(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	s, ok := common.GetDecimal(params, "side")
	if !ok {
		return common.Failure("side parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Mul(res, s, s); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// AreaRectangle calculates l×b
func (g *GeometryOps) AreaRectangle(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	l, ok := common.GetDecimal(params, "length")
	if !ok {
		return common.Failure("length parameter required")
	}
	b, ok := common.GetDecimal(params, "breadth")
	if !ok {
		return common.Failure("breadth parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Mul(res, l, b); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// AreaTriangle calculates base×height/2
func (g *GeometryOps) AreaTriangle(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	base, ok := common.GetDecimal(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	height, ok := common.GetDecimal(params, "height")
	if !ok {
		return common.Failure("height parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Mul(res, base, height); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := g.Ctx.Quo(res, res, apd.New(2, 0)); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// PerimeterSquare calculates 4s
func (g *GeometryOps) PerimeterSquare(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	s, ok := common.GetDecimal(params, "side")
	if !ok {
		return common.Failure("side parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Mul(res, s, apd.New(4, 0)); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// PerimeterRectangle calculates 2(l+b)
func (g *GeometryOps) PerimeterRectangle(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	l, ok := common.GetDecimal(params, "length")
	if !ok {
		return common.Failure("length parameter required")
	}
	b, ok := common.GetDecimal(params, "breadth")
	if !ok {
		return common.Failure("breadth parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Add(res, l, b); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := g.Ctx.Mul(res, res, apd.New(2, 0)); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// Distance2D calculates √((x2-x1)²+(y2-y1)²)
func (g *GeometryOps) Distance2D(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	coords := make([]*apd.Decimal, 4)
	for i, key := range []string{"x1", "y1", "x2", "y2"} {
		v, ok := common.GetDecimal(params, key)
		if !ok {
			return common.Failuref("%s parameter required", key)
		}
		coords[i] = v
	}

	dx, dy := new(apd.Decimal), new(apd.Decimal)
	if _, err := g.Ctx.Sub(dx, coords[2], coords[0]); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := g.Ctx.Sub(dy, coords[3], coords[1]); err != nil {
		return common.Failure(err.Error())
	}
	return g.hypotenuse(dx, dy)
}

// Pythagoras calculates √(a²+b²)
func (g *GeometryOps) Pythagoras(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	a, ok := common.GetDecimal(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	b, ok := common.GetDecimal(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}
	return g.hypotenuse(a, b)
}

func (g *GeometryOps) hypotenuse(a, b *apd.Decimal) (*types.Result, error) {
	aa, bb := new(apd.Decimal), new(apd.Decimal)
	if _, err := g.Ctx.Mul(aa, a, a); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := g.Ctx.Mul(bb, b, b); err != nil {
		return common.Failure(err.Error())
	}
	sum := new(apd.Decimal)
	if _, err := g.Ctx.Add(sum, aa, bb); err != nil {
		return common.Failure(err.Error())
	}
	res := new(apd.Decimal)
	if _, err := g.Ctx.Sqrt(res, sum); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// CubeVolume calculates s³
func (g *GeometryOps) CubeVolume(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	s, ok := common.GetDecimal(params, "side")
	if !ok {
		return common.Failure("side parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Mul(res, s, s); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := g.Ctx.Mul(res, res, s); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

// CubeSurfaceArea calculates 6s²
func (g *GeometryOps) CubeSurfaceArea(ctx context.Context, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	s, ok := common.GetDecimal(params, "side")
	if !ok {
		return common.Failure("side parameter required")
	}

	res := new(apd.Decimal)
	if _, err := g.Ctx.Mul(res, s, s); err != nil {
		return common.Failure(err.Error())
	}
	if _, err := g.Ctx.Mul(res, res, apd.New(6, 0)); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}
