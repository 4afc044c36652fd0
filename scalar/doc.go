// Package scalar defines the numeric traits shared by the four element
// kinds supported throughout the library: float32, float64, complex64 and
// complex128.
//
// The Scalar constraint gives algorithms the arithmetic operators directly;
// this package supplies only what the operators cannot express:
//
//   - AbsSqr — the magnitude squared |x|² (for complex: re²+im²), the
//     quantity every pivot search and stopping criterion is phrased in.
//   - RealPart / Conj / FromFloat — projections between T and float64.
//   - IsNaN — NaN detection that recurses into real/imaginary parts.
//   - Code — the stable type code persisted in matrix dump headers.
//   - MulOps / AddOps — flop weights for the operation counter (a complex
//     multiply costs 4 real multiplies and 2 real adds).
//
// All helpers are pure, allocation-free and O(1); they monomorphize under
// the compiler so BLAS-shaped call sites keep their shape.
package scalar
