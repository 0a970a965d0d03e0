// Package curve implements point arithmetic over short Weierstrass elliptic
// curves y² = x³ + ax + b defined over a prime field.
//
// The generic constructor derives the generator's order by brute-force
// repeated addition, so its cost is proportional to the order itself. That is
// only tractable for small toy curves; curves of cryptographic size must
// supply their published order through Config.Order, as the named-curve
// presets do.
package curve

import (
	"math/big"
	"time"

	"github.com/Caqil/ecclab/internal/math"
	"github.com/Caqil/ecclab/pkg/logger"
)

// DefaultWalkLimit bounds the number of multiples the order walk examines
// before construction fails with ErrNoFiniteOrder. Curves whose generator
// order exceeds it must supply the order through Config.Order.
const DefaultWalkLimit = 1 << 24

// walkLogInterval is how often walk progress is logged at debug level.
const walkLogInterval = 1 << 16

var three = big.NewInt(3)

// Config holds the parameters for constructing a Curve.
type Config struct {
	// Name identifies the curve in logs. Optional.
	Name string

	// A, B are the curve equation coefficients, interpreted mod P.
	A, B *big.Int

	// P is the field modulus. It is treated as prime; primality is a caller
	// precondition and is not validated here. A composite modulus yields
	// mathematically meaningless but non-crashing arithmetic.
	P *big.Int

	// G is the generator point.
	G Point

	// Order is the order of G. When nil it is computed by the brute-force
	// walk, which costs O(order) point additions and blocks until done.
	// A supplied order is trusted as-is.
	Order *big.Int

	// WalkLimit caps the multiples examined by the order walk. Zero means
	// DefaultWalkLimit. Ignored when Order is supplied.
	WalkLimit uint64

	// ValidateGenerator rejects a generator that does not satisfy the curve
	// equation. Off by default: the library deliberately accepts off-curve
	// points and leaves validation to the caller.
	ValidateGenerator bool

	// Logger receives construction and order-walk progress events.
	// Nil disables logging.
	Logger *logger.Logger
}

// Curve is an immutable short Weierstrass curve together with a generator
// and the generator's order. All state is read-only after construction and
// all methods are pure, so a Curve is safe for concurrent use from multiple
// goroutines without locking.
type Curve struct {
	name  string
	a, b  *big.Int
	p     *big.Int
	g     Point
	order *big.Int
	log   *logger.Logger
}

// New constructs a curve over the field of size p with coefficients a and b
// and generator g. The generator's order is derived eagerly by repeated
// addition of g to itself until the running sum returns to the point at
// infinity, so construction cost is proportional to the order. Use
// NewWithConfig to supply a known order instead.
func New(a, b, p *big.Int, g Point) (*Curve, error) {
	return NewWithConfig(&Config{A: a, B: b, P: p, G: g})
}

// NewWithConfig constructs a curve from the full configuration.
func NewWithConfig(cfg *Config) (*Curve, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.P == nil || cfg.P.Sign() <= 0 || cfg.P.Bit(0) == 0 {
		return nil, ErrInvalidModulus
	}
	if cfg.A == nil || cfg.B == nil {
		return nil, ErrInvalidCoefficients
	}
	if !cfg.G.valid() {
		return nil, ErrInvalidPoint
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Name != "" {
		log = log.With("curve", cfg.Name)
	}

	c := &Curve{
		name: cfg.Name,
		a:    math.Normalize(cfg.A, cfg.P),
		b:    math.Normalize(cfg.B, cfg.P),
		p:    new(big.Int).Set(cfg.P),
		log:  log,
	}
	if cfg.G.IsInfinity() {
		c.g = Infinity()
	} else {
		c.g = Point{
			x: math.Normalize(cfg.G.x, cfg.P),
			y: math.Normalize(cfg.G.y, cfg.P),
		}
	}

	if cfg.ValidateGenerator && !c.IsOnCurve(c.g) {
		return nil, ErrPointNotOnCurve
	}

	if cfg.Order != nil {
		if cfg.Order.Sign() <= 0 {
			return nil, ErrInvalidOrder
		}
		c.order = new(big.Int).Set(cfg.Order)
		return c, nil
	}

	limit := cfg.WalkLimit
	if limit == 0 {
		limit = DefaultWalkLimit
	}

	start := time.Now()
	order, err := c.walkOrder(limit)
	if err != nil {
		c.log.ErrorEvent().Err(err).Uint64("walk_limit", limit).Msg("order walk gave up")
		return nil, err
	}
	c.order = order
	c.log.InfoEvent().
		Str("order", order.String()).
		Dur("elapsed", time.Since(start)).
		Msg("generator order computed")

	return c, nil
}

// walkOrder derives the generator's order by repeated addition: the running
// sum starts at G and gains one G per step until it returns to the point at
// infinity. The order is the number of additions performed plus one, i.e. the
// count of distinct multiples of G including the identity. A generator of
// infinite order (malformed input) would never terminate, so the walk gives
// up after limit steps.
func (c *Curve) walkOrder(limit uint64) (*big.Int, error) {
	sum := c.g
	order := uint64(1)
	for !sum.IsInfinity() {
		if order >= limit {
			return nil, ErrNoFiniteOrder
		}
		sum = c.Add(sum, c.g)
		order++
		if order%walkLogInterval == 0 {
			c.log.DebugEvent().Uint64("multiples", order).Msg("order walk in progress")
		}
	}
	return new(big.Int).SetUint64(order), nil
}

// Name returns the curve's configured name, which may be empty.
func (c *Curve) Name() string {
	return c.name
}

// A returns a copy of the a coefficient.
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns a copy of the b coefficient.
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// P returns a copy of the field modulus.
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// Generator returns the generator point G.
func (c *Curve) Generator() Point {
	return c.g
}

// Order returns a copy of the generator's order.
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

// Add computes the group law P1 + P2 in affine coordinates. It is a pure
// function of its inputs and the curve parameters; inputs are never mutated.
// Off-curve points are not rejected and produce meaningless results.
func (c *Curve) Add(p1, p2 Point) Point {
	// The point at infinity is the identity.
	if p1.IsInfinity() {
		return p2
	}
	if p2.IsInfinity() {
		return p1
	}

	x1, y1 := p1.x, p1.y
	x2, y2 := p2.x, p2.y

	var lambda *big.Int
	if x1.Cmp(x2) == 0 && y1.Cmp(y2) == 0 {
		// Doubling. A point with y = 0 has a vertical tangent: 2P = O.
		if y1.Sign() == 0 {
			return Infinity()
		}
		// lambda = (3*x1² + a) / (2*y1)
		num := new(big.Int).Mul(x1, x1)
		num.Mul(num, three)
		num.Add(num, c.a)
		den := new(big.Int).Lsh(y1, 1)
		lambda = num.Mul(num, c.mustInverse(den))
	} else {
		// Points sharing an x coordinate are additive inverses: P + (-P) = O.
		if x1.Cmp(x2) == 0 {
			return Infinity()
		}
		// lambda = (y2 - y1) / (x2 - x1), the chord through the two points
		num := math.Normalize(new(big.Int).Sub(y2, y1), c.p)
		den := new(big.Int).Sub(x2, x1)
		lambda = num.Mul(num, c.mustInverse(den))
	}
	lambda.Mod(lambda, c.p)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3 = math.Normalize(x3, c.p)

	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(lambda, y3)
	y3.Sub(y3, y1)
	y3 = math.Normalize(y3, c.p)

	return Point{x: x3, y: y3}
}

// Double computes 2*P.
func (c *Curve) Double(p1 Point) Point {
	return c.Add(p1, p1)
}

// Negate computes -P, the reflection (x, p-y). The point at infinity is its
// own negation.
func (c *Curve) Negate(p1 Point) Point {
	if p1.IsInfinity() {
		return p1
	}
	negY := new(big.Int).Sub(c.p, p1.y)
	negY.Mod(negY, c.p)
	return Point{
		x: new(big.Int).Set(p1.x),
		y: negY,
	}
}

// ScalarMult computes k*P by double-and-add. Multiplication by the generator
// is cyclic with period equal to the order, so k may be any integer,
// negative or larger than the order; it is reduced into [0, order) first.
// The cost is about two point additions per bit of the reduced scalar.
func (c *Curve) ScalarMult(k *big.Int, p1 Point) Point {
	// big.Int.Mod with a positive modulus is already non-negative, which
	// handles negative scalars.
	n := new(big.Int).Mod(k, c.order)

	q := Infinity()
	r := p1
	for n.Sign() > 0 {
		if n.Bit(0) == 1 {
			q = c.Add(q, r)
		}
		r = c.Add(r, r)
		n.Rsh(n, 1)
	}
	return q
}

// ScalarBaseMult computes k*G for the curve's generator.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(k, c.g)
}

// ModularInverse returns the multiplicative inverse of n mod p, computed via
// Fermat's little theorem. A residue of zero has no inverse and yields
// ErrZeroInverse; silently returning the Fermat formula's 0 would propagate
// a wrong point through any caller that divided by it.
func (c *Curve) ModularInverse(n *big.Int) (*big.Int, error) {
	inv, err := math.FermatInverse(n, c.p)
	if err != nil {
		return nil, ErrZeroInverse
	}
	return inv, nil
}

// IsOnCurve reports whether the point satisfies y² = x³ + ax + b mod p.
// The point at infinity is on every curve.
func (c *Curve) IsOnCurve(p1 Point) bool {
	if p1.IsInfinity() {
		return true
	}
	lhs := new(big.Int).Mul(p1.y, p1.y)
	lhs.Mod(lhs, c.p)

	rhs := new(big.Int).Mul(p1.x, p1.x)
	rhs.Mul(rhs, p1.x)
	ax := new(big.Int).Mul(c.a, p1.x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)

	return lhs.Cmp(rhs) == 0
}

// mustInverse is the inverse used inside the group law, where the preceding
// guards make the divisor provably nonzero: doubling has already returned
// infinity for y1 = 0, and the chord case has already returned infinity for
// x1 = x2. A zero residue here is a broken contract, not a recoverable
// condition, so it fails fast instead of producing a wrong point.
func (c *Curve) mustInverse(n *big.Int) *big.Int {
	inv, err := math.FermatInverse(n, c.p)
	if err != nil {
		panic("curve: modular inverse of zero residue inside group law")
	}
	return inv
}
