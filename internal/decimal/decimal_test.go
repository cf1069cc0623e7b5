package decimal

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]string{
		"1":       "1",
		"  2.5 ":  "2.5",
		"-0.001":  "-0.001",
		"3e2":     "300",
		"1.23e-4": "0.000123",
	}
	for in, want := range cases {
		d, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, d.Text('f'), in)
	}

	for _, bad := range []string{"", "abc", "1.2.3", "NaN", "Infinity", "--1"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestCoerce(t *testing.T) {
	t.Run("integer kinds stay whole", func(t *testing.T) {
		for _, v := range []any{int(7), int32(7), int64(7)} {
			d, err := Coerce(v)
			require.NoError(t, err)
			assert.Equal(t, "7", d.Text('f'))
		}
	})

	t.Run("float arrives as decimal literal", func(t *testing.T) {
		d, err := Coerce(0.1)
		require.NoError(t, err)
		assert.Equal(t, "0.1", d.Text('f'))
	})

	t.Run("json number", func(t *testing.T) {
		d, err := Coerce(json.Number("12.50"))
		require.NoError(t, err)
		assert.Equal(t, "12.5", d.Text('f'))
	})

	t.Run("decimal input is copied", func(t *testing.T) {
		src := apd.New(5, 0)
		d, err := Coerce(src)
		require.NoError(t, err)
		d.SetInt64(9)
		assert.Equal(t, "5", src.Text('f'))
	})

	t.Run("extreme finite floats are accepted", func(t *testing.T) {
		d, err := Coerce(math.MaxFloat64)
		require.NoError(t, err)
		assert.Positive(t, d.Sign())
	})

	t.Run("non-finite floats are rejected", func(t *testing.T) {
		for _, v := range []any{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := Coerce(v)
			assert.Error(t, err)
		}
	})

	t.Run("unsupported kinds", func(t *testing.T) {
		for _, v := range []any{nil, true, []int{1}, map[string]int{}} {
			_, err := Coerce(v)
			assert.Error(t, err)
		}
	})
}

func TestNative(t *testing.T) {
	t.Run("whole values become int64", func(t *testing.T) {
		assert.Equal(t, int64(3), Native(MustParse("3")))
		assert.Equal(t, int64(3), Native(MustParse("3.000")))
		assert.Equal(t, int64(-40), Native(MustParse("-4e1")))
	})

	t.Run("fractions become float64", func(t *testing.T) {
		assert.Equal(t, 2.5, Native(MustParse("2.5")))
	})

	t.Run("overflowing integers fall back to float64", func(t *testing.T) {
		v := Native(MustParse("1e30"))
		assert.Equal(t, 1e30, v)
	})

	t.Run("list", func(t *testing.T) {
		ds := []*apd.Decimal{MustParse("1"), MustParse("0.5")}
		assert.Equal(t, []any{int64(1), 0.5}, NativeList(ds))
	})
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "3.14159265", Pi.Text('f')[:10])
	assert.Equal(t, "2.71828182", E.Text('f')[:10])
	assert.True(t, Zero.IsZero())
	assert.True(t, Equal(One, MustParse("1.000")))
}

func TestContextPrecision(t *testing.T) {
	narrow := Context(5)
	res := new(apd.Decimal)
	_, err := narrow.Quo(res, MustParse("1"), MustParse("3"))
	require.NoError(t, err)
	assert.Equal(t, "0.33333", res.Text('f'))
}
