package curve

import (
	"math/big"
	"sync"
	"testing"
)

// newToyCurve builds the textbook curve y² = x³ + 2x + 2 over F_17 with
// generator (5, 1), whose order is 19.
func newToyCurve(t *testing.T) *Curve {
	t.Helper()

	c, err := New(big.NewInt(2), big.NewInt(2), big.NewInt(17), NewPoint(big.NewInt(5), big.NewInt(1)))
	if err != nil {
		t.Fatalf("failed to construct toy curve: %v", err)
	}
	return c
}

// toyPoints returns every multiple of G from 1·G through (order-1)·G.
func toyPoints(c *Curve) []Point {
	points := make([]Point, 0)
	p := c.Generator()
	for !p.IsInfinity() {
		points = append(points, p)
		p = c.Add(p, c.Generator())
	}
	return points
}

func TestToyCurveOrder(t *testing.T) {
	c := newToyCurve(t)

	if c.Order().Int64() != 19 {
		t.Errorf("order of (5,1) on y²=x³+2x+2 over F_17 = %s, want 19", c.Order())
	}
}

func TestAddIdentity(t *testing.T) {
	c := newToyCurve(t)
	inf := Infinity()

	for _, p := range append(toyPoints(c), inf) {
		if got := c.Add(p, inf); !got.Equal(p) {
			t.Errorf("Add(%s, O) = %s, want %s", p, got, p)
		}
		if got := c.Add(inf, p); !got.Equal(p) {
			t.Errorf("Add(O, %s) = %s, want %s", p, got, p)
		}
	}
}

func TestAddInversePair(t *testing.T) {
	c := newToyCurve(t)

	for _, p := range toyPoints(c) {
		neg := c.Negate(p)
		if got := c.Add(p, neg); !got.IsInfinity() {
			t.Errorf("Add(%s, %s) = %s, want O", p, neg, got)
		}
	}
}

func TestAddCommutative(t *testing.T) {
	c := newToyCurve(t)
	points := append(toyPoints(c), Infinity())

	for _, p := range points {
		for _, q := range points {
			pq := c.Add(p, q)
			qp := c.Add(q, p)
			if !pq.Equal(qp) {
				t.Errorf("Add(%s, %s) = %s but Add(%s, %s) = %s", p, q, pq, q, p, qp)
			}
		}
	}
}

func TestAddAssociative(t *testing.T) {
	c := newToyCurve(t)
	points := append(toyPoints(c), Infinity())

	for _, p := range points {
		for _, q := range points {
			for _, r := range points {
				left := c.Add(c.Add(p, q), r)
				right := c.Add(p, c.Add(q, r))
				if !left.Equal(right) {
					t.Errorf("(%s + %s) + %s = %s but %s + (%s + %s) = %s",
						p, q, r, left, p, q, r, right)
				}
			}
		}
	}
}

func TestDoubleGenerator(t *testing.T) {
	c := newToyCurve(t)

	// Hand computation: lambda = (3·25 + 2)·(2·1)⁻¹ = 9·9 = 13 mod 17,
	// x3 = 13² - 5 - 5 = 6, y3 = 13·(5 - 6) - 1 = 3 mod 17.
	want := NewPoint(big.NewInt(6), big.NewInt(3))

	got := c.Add(c.Generator(), c.Generator())
	if !got.Equal(want) {
		t.Errorf("G + G = %s, want %s", got, want)
	}

	if d := c.Double(c.Generator()); !d.Equal(want) {
		t.Errorf("Double(G) = %s, want %s", d, want)
	}
}

func TestDoubleYZeroIsInfinity(t *testing.T) {
	// On y² = x³ + x over F_17 the point (0, 0) has y = 0, so its tangent is
	// vertical and doubling yields the point at infinity.
	c, err := New(big.NewInt(1), big.NewInt(0), big.NewInt(17), NewPoint(big.NewInt(0), big.NewInt(0)))
	if err != nil {
		t.Fatalf("failed to construct curve: %v", err)
	}

	if !c.IsOnCurve(c.Generator()) {
		t.Fatal("(0, 0) should lie on y² = x³ + x")
	}

	if got := c.Double(c.Generator()); !got.IsInfinity() {
		t.Errorf("2·(0,0) = %s, want O", got)
	}

	// The walk sees exactly two multiples: G and O
	if c.Order().Int64() != 2 {
		t.Errorf("order of (0,0) = %s, want 2", c.Order())
	}
}

func TestScalarMultMatchesRepeatedAddition(t *testing.T) {
	c := newToyCurve(t)

	sum := Infinity()
	for k := int64(0); k <= 25; k++ {
		got := c.ScalarBaseMult(big.NewInt(k))
		if !got.Equal(sum) {
			t.Errorf("ScalarBaseMult(%d) = %s, want %s from repeated addition", k, got, sum)
		}
		sum = c.Add(sum, c.Generator())
	}
}

func TestScalarMultExplicitPoint(t *testing.T) {
	c := newToyCurve(t)
	twoG := c.Double(c.Generator())

	// 3·(2G) = 6·G
	got := c.ScalarMult(big.NewInt(3), twoG)
	want := c.ScalarBaseMult(big.NewInt(6))
	if !got.Equal(want) {
		t.Errorf("3·(2G) = %s, want 6·G = %s", got, want)
	}
}

func TestScalarMultPeriodicity(t *testing.T) {
	c := newToyCurve(t)
	order := c.Order()

	if got := c.ScalarBaseMult(order); !got.IsInfinity() {
		t.Errorf("order·G = %s, want O", got)
	}

	for _, k := range []int64{0, 1, 2, 7, 18, -1, -5} {
		shifted := new(big.Int).Add(order, big.NewInt(k))
		got := c.ScalarBaseMult(shifted)
		want := c.ScalarBaseMult(big.NewInt(k))
		if !got.Equal(want) {
			t.Errorf("(order%+d)·G = %s, want %s", k, got, want)
		}
	}
}

func TestScalarMultNegative(t *testing.T) {
	c := newToyCurve(t)

	// -1·G reduces to (order-1)·G, which is -G
	got := c.ScalarBaseMult(big.NewInt(-1))
	want := c.Negate(c.Generator())
	if !got.Equal(want) {
		t.Errorf("-1·G = %s, want -G = %s", got, want)
	}
}

func TestModularInverse(t *testing.T) {
	c := newToyCurve(t)
	p := c.P()

	for n := int64(1); n < 17; n++ {
		inv, err := c.ModularInverse(big.NewInt(n))
		if err != nil {
			t.Fatalf("ModularInverse(%d) returned error: %v", n, err)
		}

		product := new(big.Int).Mul(big.NewInt(n), inv)
		product.Mod(product, p)
		if product.Int64() != 1 {
			t.Errorf("%d * %s mod 17 = %s, want 1", n, inv, product)
		}
	}
}

func TestModularInverseZeroResidue(t *testing.T) {
	c := newToyCurve(t)

	for _, n := range []int64{0, 17, -17, 34} {
		if _, err := c.ModularInverse(big.NewInt(n)); err != ErrZeroInverse {
			t.Errorf("ModularInverse(%d): expected ErrZeroInverse, got %v", n, err)
		}
	}
}

func TestIsOnCurve(t *testing.T) {
	c := newToyCurve(t)

	for _, p := range toyPoints(c) {
		if !c.IsOnCurve(p) {
			t.Errorf("%s should be on the curve", p)
		}
	}
	if !c.IsOnCurve(Infinity()) {
		t.Error("the point at infinity should be on every curve")
	}
	if c.IsOnCurve(NewPoint(big.NewInt(5), big.NewInt(2))) {
		t.Error("(5, 2) should not be on the curve")
	}
}

func TestNewValidation(t *testing.T) {
	valid := &Config{
		A: big.NewInt(2),
		B: big.NewInt(2),
		P: big.NewInt(17),
		G: NewPoint(big.NewInt(5), big.NewInt(1)),
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "valid",
			modify:  func(cfg *Config) {},
			wantErr: nil,
		},
		{
			name:    "nil modulus",
			modify:  func(cfg *Config) { cfg.P = nil },
			wantErr: ErrInvalidModulus,
		},
		{
			name:    "even modulus",
			modify:  func(cfg *Config) { cfg.P = big.NewInt(16) },
			wantErr: ErrInvalidModulus,
		},
		{
			name:    "negative modulus",
			modify:  func(cfg *Config) { cfg.P = big.NewInt(-17) },
			wantErr: ErrInvalidModulus,
		},
		{
			name:    "nil coefficient",
			modify:  func(cfg *Config) { cfg.A = nil },
			wantErr: ErrInvalidCoefficients,
		},
		{
			name:    "point with missing coordinates",
			modify:  func(cfg *Config) { cfg.G = Point{} },
			wantErr: ErrInvalidPoint,
		},
		{
			name:    "non-positive supplied order",
			modify:  func(cfg *Config) { cfg.Order = big.NewInt(0) },
			wantErr: ErrInvalidOrder,
		},
		{
			name: "off-curve generator with validation",
			modify: func(cfg *Config) {
				cfg.G = NewPoint(big.NewInt(5), big.NewInt(2))
				cfg.ValidateGenerator = true
			},
			wantErr: ErrPointNotOnCurve,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.modify(&cfg)

			_, err := NewWithConfig(&cfg)
			if err != tt.wantErr {
				t.Errorf("NewWithConfig: got error %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := NewWithConfig(nil); err != ErrNilConfig {
		t.Errorf("NewWithConfig(nil): expected ErrNilConfig, got %v", err)
	}
}

func TestSuppliedOrderSkipsWalk(t *testing.T) {
	// With a supplied order even WalkLimit 1 must not matter.
	c, err := NewWithConfig(&Config{
		A:         big.NewInt(2),
		B:         big.NewInt(2),
		P:         big.NewInt(17),
		G:         NewPoint(big.NewInt(5), big.NewInt(1)),
		Order:     big.NewInt(19),
		WalkLimit: 1,
	})
	if err != nil {
		t.Fatalf("construction with supplied order failed: %v", err)
	}

	if !c.ScalarBaseMult(big.NewInt(19)).IsInfinity() {
		t.Error("19·G should be O under the supplied order")
	}
}

func TestWalkLimitExceeded(t *testing.T) {
	_, err := NewWithConfig(&Config{
		A:         big.NewInt(2),
		B:         big.NewInt(2),
		P:         big.NewInt(17),
		G:         NewPoint(big.NewInt(5), big.NewInt(1)),
		WalkLimit: 5,
	})
	if err != ErrNoFiniteOrder {
		t.Errorf("expected ErrNoFiniteOrder with WalkLimit 5, got %v", err)
	}
}

func TestInfinityGenerator(t *testing.T) {
	c, err := New(big.NewInt(2), big.NewInt(2), big.NewInt(17), Infinity())
	if err != nil {
		t.Fatalf("construction with infinity generator failed: %v", err)
	}

	// The identity generates the trivial subgroup.
	if c.Order().Int64() != 1 {
		t.Errorf("order of O = %s, want 1", c.Order())
	}
	if !c.ScalarBaseMult(big.NewInt(12345)).IsInfinity() {
		t.Error("every multiple of O should be O")
	}
}

func TestGeneratorCoordinatesReduced(t *testing.T) {
	// Generator coordinates outside [0, p) are normalized at construction:
	// (22, -16) ≡ (5, 1) mod 17.
	c, err := New(big.NewInt(2), big.NewInt(2), big.NewInt(17), NewPoint(big.NewInt(22), big.NewInt(-16)))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	want := NewPoint(big.NewInt(5), big.NewInt(1))
	if !c.Generator().Equal(want) {
		t.Errorf("generator = %s, want %s", c.Generator(), want)
	}
	if c.Order().Int64() != 19 {
		t.Errorf("order = %s, want 19", c.Order())
	}
}

func TestAddDoesNotMutateInputs(t *testing.T) {
	c := newToyCurve(t)
	g := c.Generator()
	twoG := c.Double(g)

	before := NewPoint(g.X(), g.Y())
	c.Add(g, twoG)
	c.Add(g, g)
	c.ScalarMult(big.NewInt(7), g)

	if !g.Equal(before) {
		t.Errorf("arithmetic mutated its input: %s, want %s", g, before)
	}
}

func TestRandomScalar(t *testing.T) {
	c := newToyCurve(t)

	for i := 0; i < 64; i++ {
		k, err := c.RandomScalar()
		if err != nil {
			t.Fatalf("RandomScalar returned error: %v", err)
		}
		if k.Sign() <= 0 || k.Cmp(c.Order()) >= 0 {
			t.Errorf("RandomScalar() = %s, want value in [1, %s)", k, c.Order())
		}
	}
}

func TestRandomScalarTrivialOrder(t *testing.T) {
	c, err := New(big.NewInt(2), big.NewInt(2), big.NewInt(17), Infinity())
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	if _, err := c.RandomScalar(); err != ErrOrderTooSmall {
		t.Errorf("expected ErrOrderTooSmall for order 1, got %v", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	c := newToyCurve(t)
	want := c.ScalarBaseMult(big.NewInt(7))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := c.ScalarBaseMult(big.NewInt(7)); !got.Equal(want) {
					t.Errorf("concurrent ScalarBaseMult(7) = %s, want %s", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
