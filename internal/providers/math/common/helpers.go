package common

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/decikit/decikit/internal/decimal"
	"github.com/decikit/decikit/internal/types"
)

// MathOps carries the shared arithmetic context across math modules.
type MathOps struct {
	Ctx *apd.Context
}

// NewMathOps creates the shared helper with the given decimal precision.
func NewMathOps(precision uint32) *MathOps {
	return &MathOps{Ctx: decimal.Context(precision)}
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// Failuref creates a failed result with formatting
func Failuref(format string, args ...interface{}) (*types.Result, error) {
	return Failure(fmt.Sprintf(format, args...))
}

// GetDecimal extracts an exact decimal from params, accepting numbers and
// numeric strings alike.
func GetDecimal(params map[string]interface{}, key string) (*apd.Decimal, bool) {
	val, ok := params[key]
	if !ok {
		return nil, false
	}
	d, err := decimal.Coerce(val)
	if err != nil {
		return nil, false
	}
	return d, true
}

// GetDecimals extracts an array of exact decimals with type coercion.
func GetDecimals(params map[string]interface{}, key string) ([]*apd.Decimal, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	out := make([]*apd.Decimal, 0, len(arr))
	for _, v := range arr {
		d, err := decimal.Coerce(v)
		if err != nil {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}

// GetInt extracts a whole number from params. Fractional values fail.
func GetInt(params map[string]interface{}, key string) (int64, bool) {
	d, ok := GetDecimal(params, key)
	if !ok {
		return 0, false
	}
	i, err := d.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetNumbers extracts array of float64 with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		switch num := v.(type) {
		case float64:
			numbers = append(numbers, num)
		case int:
			numbers = append(numbers, float64(num))
		case int64:
			numbers = append(numbers, float64(num))
		case float32:
			numbers = append(numbers, float64(num))
		default:
			return nil, false
		}
	}
	return numbers, true
}

// ValidateNumber checks a float for NaN and infinity
func ValidateNumber(x float64, name string) error {
	if x != x { // NaN check
		return fmt.Errorf("%s is NaN", name)
	}
	if x > 1e308 || x < -1e308 { // Infinity check
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// Render converts an exact decimal into the result payload: the native
// number plus the exact text, so callers never depend on float rounding.
func Render(d *apd.Decimal) map[string]interface{} {
	return map[string]interface{}{
		"result": decimal.Native(d),
		"exact":  decimal.String(d),
	}
}
