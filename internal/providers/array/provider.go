// Package array exposes exact-decimal array containers as a service.
//
// Operands arrive as JSON-style nested lists; rank is inferred from the
// nesting depth (flat list, list of rows, list of layers). Every element
// is parsed into an exact decimal, so 0.1 + 0.2 is 0.3, not a float
// artifact.
package array

import (
	"context"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/array"
	"github.com/decikit/decikit/internal/providers/math/common"
	"github.com/decikit/decikit/internal/types"
)

// Provider implements array container operations
type Provider struct{}

// NewProvider creates an array provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "array",
		Name:        "Array Service",
		Description: "Exact-decimal array containers with elementwise and scalar arithmetic",
		Category:    types.CategoryArray,
		Capabilities: []string{
			"elementwise",
			"scalar",
			"reductions",
			"conversion",
		},
		Tools: p.tools(),
	}
}

func (p *Provider) tools() []types.Tool {
	binaryParams := []types.Parameter{
		{Name: "a", Type: "array", Description: "Left operand (nested list)", Required: true},
		{Name: "b", Type: "array", Description: "Right operand (same shape)", Required: true},
	}
	scalarParams := []types.Parameter{
		{Name: "values", Type: "array", Description: "Array operand (nested list)", Required: true},
		{Name: "scalar", Type: "number", Description: "Scalar operand", Required: true},
	}
	unaryParams := []types.Parameter{
		{Name: "values", Type: "array", Description: "Array operand (nested list)", Required: true},
	}

	return []types.Tool{
		{ID: "array.add", Name: "Add", Description: "Elementwise addition", Parameters: binaryParams, Returns: "array"},
		{ID: "array.subtract", Name: "Subtract", Description: "Elementwise subtraction", Parameters: binaryParams, Returns: "array"},
		{ID: "array.multiply", Name: "Multiply", Description: "Elementwise multiplication", Parameters: binaryParams, Returns: "array"},
		{ID: "array.divide", Name: "Divide", Description: "Elementwise division", Parameters: binaryParams, Returns: "array"},
		{ID: "array.scale.add", Name: "Scalar Add", Description: "Add scalar to every element", Parameters: scalarParams, Returns: "array"},
		{ID: "array.scale.subtract", Name: "Scalar Subtract", Description: "Subtract scalar from every element", Parameters: scalarParams, Returns: "array"},
		{ID: "array.scale.multiply", Name: "Scalar Multiply", Description: "Multiply every element by scalar", Parameters: scalarParams, Returns: "array"},
		{ID: "array.scale.divide", Name: "Scalar Divide", Description: "Divide every element by scalar", Parameters: scalarParams, Returns: "array"},
		{ID: "array.tolist", Name: "To List", Description: "Convert to native nested list", Parameters: unaryParams, Returns: "array"},
		{ID: "array.sum", Name: "Sum", Description: "Exact sum of a flat array", Parameters: unaryParams, Returns: "number"},
		{ID: "array.mean", Name: "Mean", Description: "Exact mean of a flat array", Parameters: unaryParams, Returns: "number"},
		{ID: "array.cumsum", Name: "Cumulative Sum", Description: "Exact running totals of a flat array", Parameters: unaryParams, Returns: "array"},
		{ID: "array.dot", Name: "Dot Product", Description: "Exact dot product of two flat arrays", Parameters: binaryParams, Returns: "number"},
		{ID: "array.equal", Name: "Equal", Description: "Exact value equality of two arrays", Parameters: binaryParams, Returns: "boolean"},
	}
}

// Execute routes to the matching operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "array.add", "array.subtract", "array.multiply", "array.divide":
		return p.binary(toolID, params)
	case "array.scale.add", "array.scale.subtract", "array.scale.multiply", "array.scale.divide":
		return p.scalar(toolID, params)
	case "array.tolist":
		return p.tolist(params)
	case "array.sum":
		return p.reduce(params, (*array.Array1).Sum)
	case "array.mean":
		return p.reduce(params, (*array.Array1).Mean)
	case "array.cumsum":
		return p.cumsum(params)
	case "array.dot":
		return p.dot(params)
	case "array.equal":
		return p.equal(params)
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// rank reports the nesting depth of a decoded JSON list: 1 for a flat
// list, 2 for rows, 3 for layers. Empty lists rank as flat.
func rank(v []interface{}) int {
	if len(v) == 0 {
		return 1
	}
	inner, ok := v[0].([]interface{})
	if !ok {
		return 1
	}
	if len(inner) == 0 {
		return 2
	}
	if _, ok := inner[0].([]interface{}); ok {
		return 3
	}
	return 2
}

func getList(params map[string]interface{}, key string) ([]interface{}, bool) {
	v, ok := params[key].([]interface{})
	return v, ok
}

// lister is satisfied by all three array ranks.
type lister interface {
	ToList() []interface{}
}

func (p *Provider) binary(toolID string, params map[string]interface{}) (*types.Result, error) {
	a, ok := getList(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	b, ok := getList(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	ra, rb := rank(a), rank(b)
	if ra != rb {
		return common.Failuref("operands have different ranks: %d vs %d", ra, rb)
	}

	var (
		out lister
		err error
	)
	switch ra {
	case 1:
		var x, y *array.Array1
		if x, y, err = pair1(a, b); err == nil {
			out, err = apply1(toolID, x, y)
		}
	case 2:
		var x, y *array.Array2
		if x, y, err = pair2(a, b); err == nil {
			out, err = apply2(toolID, x, y)
		}
	default:
		var x, y *array.Array3
		if x, y, err = pair3(a, b); err == nil {
			out, err = apply3(toolID, x, y)
		}
	}
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": out.ToList()})
}

func pair1(a, b []interface{}) (*array.Array1, *array.Array1, error) {
	x, err := array.New1(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := array.New1(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func pair2(a, b []interface{}) (*array.Array2, *array.Array2, error) {
	x, err := array.New2(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := array.New2(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func pair3(a, b []interface{}) (*array.Array3, *array.Array3, error) {
	x, err := array.New3(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := array.New3(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func apply1(toolID string, x, y *array.Array1) (*array.Array1, error) {
	switch toolID {
	case "array.add":
		return x.Add(y)
	case "array.subtract":
		return x.Sub(y)
	case "array.multiply":
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func apply2(toolID string, x, y *array.Array2) (*array.Array2, error) {
	switch toolID {
	case "array.add":
		return x.Add(y)
	case "array.subtract":
		return x.Sub(y)
	case "array.multiply":
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func apply3(toolID string, x, y *array.Array3) (*array.Array3, error) {
	switch toolID {
	case "array.add":
		return x.Add(y)
	case "array.subtract":
		return x.Sub(y)
	case "array.multiply":
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func (p *Provider) scalar(toolID string, params map[string]interface{}) (*types.Result, error) {
	values, ok := getList(params, "values")
	if !ok {
		return common.Failure("values parameter required")
	}
	s, ok := params["scalar"]
	if !ok {
		return common.Failure("scalar parameter required")
	}

	var (
		out lister
		err error
	)
	switch rank(values) {
	case 1:
		var x *array.Array1
		if x, err = array.New1(values); err == nil {
			out, err = applyScalar1(toolID, x, s)
		}
	case 2:
		var x *array.Array2
		if x, err = array.New2(values); err == nil {
			out, err = applyScalar2(toolID, x, s)
		}
	default:
		var x *array.Array3
		if x, err = array.New3(values); err == nil {
			out, err = applyScalar3(toolID, x, s)
		}
	}
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": out.ToList()})
}

func applyScalar1(toolID string, x *array.Array1, s interface{}) (*array.Array1, error) {
	switch toolID {
	case "array.scale.add":
		return x.AddScalar(s)
	case "array.scale.subtract":
		return x.SubScalar(s)
	case "array.scale.multiply":
		return x.MulScalar(s)
	default:
		return x.DivScalar(s)
	}
}

func applyScalar2(toolID string, x *array.Array2, s interface{}) (*array.Array2, error) {
	switch toolID {
	case "array.scale.add":
		return x.AddScalar(s)
	case "array.scale.subtract":
		return x.SubScalar(s)
	case "array.scale.multiply":
		return x.MulScalar(s)
	default:
		return x.DivScalar(s)
	}
}

func applyScalar3(toolID string, x *array.Array3, s interface{}) (*array.Array3, error) {
	switch toolID {
	case "array.scale.add":
		return x.AddScalar(s)
	case "array.scale.subtract":
		return x.SubScalar(s)
	case "array.scale.multiply":
		return x.MulScalar(s)
	default:
		return x.DivScalar(s)
	}
}

func (p *Provider) tolist(params map[string]interface{}) (*types.Result, error) {
	values, ok := getList(params, "values")
	if !ok {
		return common.Failure("values parameter required")
	}

	var (
		out lister
		err error
	)
	switch rank(values) {
	case 1:
		out, err = array.New1(values)
	case 2:
		out, err = array.New2(values)
	default:
		out, err = array.New3(values)
	}
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": out.ToList()})
}

// flat parses a params list that must be rank 1.
func flat(params map[string]interface{}, key string) (*array.Array1, error) {
	values, ok := getList(params, key)
	if !ok {
		return nil, fmt.Errorf("%s parameter required", key)
	}
	if rank(values) != 1 {
		return nil, fmt.Errorf("%s must be a flat array", key)
	}
	return array.New1(values)
}

func (p *Provider) reduce(params map[string]interface{}, op func(*array.Array1) (*apd.Decimal, error)) (*types.Result, error) {
	x, err := flat(params, "values")
	if err != nil {
		return common.Failure(err.Error())
	}
	res, err := op(x)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

func (p *Provider) cumsum(params map[string]interface{}) (*types.Result, error) {
	x, err := flat(params, "values")
	if err != nil {
		return common.Failure(err.Error())
	}
	res, err := x.CumSum()
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": res.ToList()})
}

func (p *Provider) dot(params map[string]interface{}) (*types.Result, error) {
	x, err := flat(params, "a")
	if err != nil {
		return common.Failure(err.Error())
	}
	y, err := flat(params, "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	res, err := x.Dot(y)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(common.Render(res))
}

func (p *Provider) equal(params map[string]interface{}) (*types.Result, error) {
	a, ok := getList(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	b, ok := getList(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	if rank(a) != rank(b) {
		return common.Success(map[string]interface{}{"result": false})
	}

	var (
		eq  bool
		err error
	)
	switch rank(a) {
	case 1:
		var x, y *array.Array1
		if x, y, err = pair1(a, b); err == nil {
			eq = x.Equal(y)
		}
	case 2:
		var x, y *array.Array2
		if x, y, err = pair2(a, b); err == nil {
			eq = x.Equal(y)
		}
	default:
		var x, y *array.Array3
		if x, y, err = pair3(a, b); err == nil {
			eq = x.Equal(y)
		}
	}
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": eq})
}
