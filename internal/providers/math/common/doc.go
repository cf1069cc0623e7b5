// Package math provides exact-decimal mathematical operations.
//
// This package is organized into specialized modules:
//   - arithmetic: Basic operations (add, subtract, multiply, divide, power, sqrt, cbrt)
//   - number: Integer functions (factorial, fibonacci, triangular, collatz)
//   - trig: Series-based trigonometric functions and logarithms
//   - geometry: Plane and solid geometry formulas
//   - finance: Percentages and interest
//   - stats: Floating-point statistics on gonum
//   - constants: Mathematical constants (pi, e, tau, phi)
//
// All exact modules compute on cockroachdb/apd decimals so results are
// reproducible base-10 values, never binary floating point. The stats
// module is the deliberate exception: aggregate descriptive statistics
// use gonum and IEEE 754 semantics.
//
// Example Usage:
//
//	ops := common.NewMathOps(50)
//	arithmetic := &operations.ArithmeticOps{MathOps: ops}
//	result, err := arithmetic.Add(ctx, params, callCtx)
package common
