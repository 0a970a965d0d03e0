package curve

import "errors"

var (
	// ErrNilConfig is returned when a nil config is provided
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrInvalidModulus is returned when the field modulus is not a positive
	// odd integer
	ErrInvalidModulus = errors.New("modulus must be a positive odd integer")

	// ErrInvalidCoefficients is returned when a curve coefficient is missing
	ErrInvalidCoefficients = errors.New("curve coefficients cannot be nil")

	// ErrInvalidPoint is returned when an affine point is missing a coordinate
	ErrInvalidPoint = errors.New("invalid point: missing coordinates")

	// ErrPointNotOnCurve is returned when generator validation is requested
	// and the generator does not satisfy the curve equation
	ErrPointNotOnCurve = errors.New("generator is not on the curve")

	// ErrInvalidOrder is returned when a supplied generator order is not positive
	ErrInvalidOrder = errors.New("order must be positive")

	// ErrNoFiniteOrder is returned when the order walk exceeds its limit
	// without the running sum returning to the point at infinity
	ErrNoFiniteOrder = errors.New("no finite order found within walk limit")

	// ErrZeroInverse is returned when the modular inverse of a zero residue
	// is requested; zero has no inverse and the Fermat formula would silently
	// yield 0
	ErrZeroInverse = errors.New("no modular inverse for zero residue")

	// ErrHashToPointFailed is returned when no curve point could be derived
	// from the input within the attempt bound
	ErrHashToPointFailed = errors.New("could not map input to a curve point")

	// ErrOrderTooSmall is returned when the generator order leaves no room
	// for a nonzero random scalar
	ErrOrderTooSmall = errors.New("generator order too small for random scalars")
)
