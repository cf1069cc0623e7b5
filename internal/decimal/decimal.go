package decimal

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the number of significant decimal digits carried by
// the shared context. It matches the precision the toolkit guarantees for
// series approximations (sin, cos, ln) before rounding.
const DefaultPrecision = 50

// BaseContext is the shared arithmetic context used across the toolkit.
// Callers needing a different precision derive their own via Context.
var BaseContext = Context(DefaultPrecision)

// Context returns an apd context with the given significant-digit precision.
func Context(precision uint32) *apd.Context {
	return apd.BaseContext.WithPrecision(precision)
}

// Well-known constants, carried at sufficient width for DefaultPrecision math.
var (
	Pi   = MustParse("3.1415926535897932384626433832795028841971")
	E    = MustParse("2.7182818284590452353602874713527")
	Zero = apd.New(0, 0)
	One  = apd.New(1, 0)
)

// Parse converts decimal text into an exact value. Inputs that are not
// plain numeric literals (NaN, Infinity, garbage) are rejected.
func Parse(s string) (*apd.Decimal, error) {
	d, _, err := BaseContext.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid numeric literal %q", s)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("non-finite numeric literal %q", s)
	}
	return d, nil
}

// MustParse parses a numeric literal and panics on failure. Reserved for
// package-level constants.
func MustParse(s string) *apd.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Coerce converts a dynamically-typed leaf value into an exact decimal.
// Accepted kinds: integers, float64, numeric strings, json.Number and
// already-exact *apd.Decimal values (copied, never aliased).
func Coerce(v any) (*apd.Decimal, error) {
	switch x := v.(type) {
	case *apd.Decimal:
		if x == nil {
			return nil, fmt.Errorf("nil decimal value")
		}
		return new(apd.Decimal).Set(x), nil
	case apd.Decimal:
		return new(apd.Decimal).Set(&x), nil
	case int:
		return apd.New(int64(x), 0), nil
	case int32:
		return apd.New(int64(x), 0), nil
	case int64:
		return apd.New(x, 0), nil
	case uint:
		return Parse(fmt.Sprintf("%d", x))
	case float32:
		return floatToDecimal(float64(x))
	case float64:
		return floatToDecimal(x)
	case json.Number:
		return Parse(x.String())
	case string:
		return Parse(x)
	default:
		return nil, fmt.Errorf("unsupported numeric type %T", v)
	}
}

// floatToDecimal round-trips through the shortest decimal text so 0.1
// arrives as the literal "0.1", not its binary expansion.
func floatToDecimal(f float64) (*apd.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-finite float %v", f)
	}
	return Parse(fmt.Sprintf("%g", f))
}

// Native renders an exact decimal as a plain Go number: values that are
// whole and fit int64 come back as int64, everything else as float64.
func Native(d *apd.Decimal) any {
	if i, err := d.Int64(); err == nil {
		return i
	}
	f, _ := d.Float64()
	return f
}

// NativeList renders a slice of decimals via Native.
func NativeList(ds []*apd.Decimal) []any {
	out := make([]any, len(ds))
	for i, d := range ds {
		out[i] = Native(d)
	}
	return out
}

// Equal reports exact numeric equality.
func Equal(a, b *apd.Decimal) bool {
	return a.Cmp(b) == 0
}

// String renders the exact decimal text of d.
func String(d *apd.Decimal) string {
	return d.Text('f')
}
