package curve

import (
	"fmt"
	"math/big"
)

// Point is a point on a short Weierstrass curve: either the point at
// infinity (the group identity) or an affine coordinate pair. The two cases
// are distinguished by an explicit tag, never by a sentinel coordinate value,
// so infinity can never be confused with (0, 0).
//
// Points are immutable values. Arithmetic never mutates an input point; it
// produces a new one. A Point carries no reference to the curve that produced
// it; the curve is passed explicitly to every operation that needs it.
type Point struct {
	x, y     *big.Int
	infinity bool
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{infinity: true}
}

// NewPoint creates an affine point from the given coordinates. Both
// coordinates are copied. Coordinates are expected to lie in [0, p) for the
// curve the point will be used with; NewPoint does not reduce them.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// IsInfinity reports whether the point is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// X returns a copy of the affine x coordinate. It is nil for the point at
// infinity, which has no coordinates.
func (p Point) X() *big.Int {
	if p.infinity || p.x == nil {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the affine y coordinate. It is nil for the point at
// infinity, which has no coordinates.
func (p Point) Y() *big.Int {
	if p.infinity || p.y == nil {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether two points are the same: both at infinity, or both
// affine with equal coordinates.
func (p Point) Equal(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// String renders the point for logs and examples.
func (p Point) String() string {
	if p.infinity {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

// valid reports whether an affine point has both coordinates present.
func (p Point) valid() bool {
	return p.infinity || (p.x != nil && p.y != nil)
}
