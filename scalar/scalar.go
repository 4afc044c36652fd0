// Package scalar: the Scalar constraint and its trait helpers.
//
// Implementation note: every helper type-switches on the concrete element
// kind. The switch is resolved at monomorphization time for the hot kinds,
// so none of these show up in profiles of the compression loops.

package scalar

import "math"

// Scalar is the set of element types supported by the library.
// Arithmetic (+ − * /), comparison with ==, and conversion from untyped
// constants come from the language; everything else lives below.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Real is the subset of Scalar with no imaginary part.
type Real interface {
	float32 | float64
}

// Persisted type codes, one per element kind. These match the on-disk
// header of the matrix dump format and must never be renumbered.
const (
	CodeFloat32    int32 = 0
	CodeFloat64    int32 = 1
	CodeComplex64  int32 = 2
	CodeComplex128 int32 = 3
)

// AbsSqr returns |x|²: x·x for real kinds, re²+im² for complex kinds.
// Pivot searches and stopping criteria compare magnitudes through this
// helper so complex blocks order the same way real ones do.
func AbsSqr[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(v) * float64(v)
	case float64:
		return v * v
	case complex64:
		re, im := float64(real(v)), float64(imag(v))

		return re*re + im*im
	case complex128:
		re, im := real(v), imag(v)

		return re*re + im*im
	}

	return 0 // unreachable: the constraint admits no other kind
}

// RealPart projects x onto the reals, discarding any imaginary part.
func RealPart[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case complex64:
		return float64(real(v))
	case complex128:
		return real(v)
	}

	return 0
}

// Conj returns the complex conjugate of x; real kinds are returned as-is.
func Conj[T Scalar](x T) T {
	switch v := any(x).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	}

	return x
}

// FromFloat converts a float64 into T (imaginary part zero for complex
// kinds). It is the single bridge used to inject real quantities — singular
// values, inverted pivots — back into generic element arithmetic.
func FromFloat[T Scalar](f float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(f)).(T)
	case float64:
		return any(f).(T)
	case complex64:
		return any(complex(float32(f), 0)).(T)
	case complex128:
		return any(complex(f, 0)).(T)
	}

	return zero
}

// IsNaN reports whether x is NaN; complex kinds are NaN when either the
// real or the imaginary part is.
func IsNaN[T Scalar](x T) bool {
	switch v := any(x).(type) {
	case float32:
		return math.IsNaN(float64(v))
	case float64:
		return math.IsNaN(v)
	case complex64:
		return math.IsNaN(float64(real(v))) || math.IsNaN(float64(imag(v)))
	case complex128:
		return math.IsNaN(real(v)) || math.IsNaN(imag(v))
	}

	return false
}

// IsComplex reports whether T is one of the complex kinds.
func IsComplex[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return true
	}

	return false
}

// Code returns the persisted type code for T (see the Code* constants).
func Code[T Scalar]() int32 {
	var zero T
	switch any(zero).(type) {
	case float32:
		return CodeFloat32
	case float64:
		return CodeFloat64
	case complex64:
		return CodeComplex64
	}

	return CodeComplex128
}

// Size returns the storage size of one element of T in bytes.
func Size[T Scalar]() int {
	var zero T
	switch any(zero).(type) {
	case float32:
		return 4
	case float64, complex64:
		return 8
	}

	return 16
}

// MulOps returns the flop weight of one multiplication in T:
// 4 for complex kinds, 1 otherwise.
func MulOps[T Scalar]() int64 {
	if IsComplex[T]() {
		return 4
	}

	return 1
}

// AddOps returns the flop weight of one addition in T:
// 2 for complex kinds, 1 otherwise.
func AddOps[T Scalar]() int64 {
	if IsComplex[T]() {
		return 2
	}

	return 1
}
