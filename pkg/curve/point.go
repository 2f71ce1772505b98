package curve

import (
	"errors"
	"math/big"
)

// ErrPointNotOnCurve is returned when coordinates or a compressed
// encoding do not describe a point on secp256k1.
var ErrPointNotOnCurve = errors.New("curve: point not on curve")

// CompressedSize is the length of a compressed point encoding:
// one parity prefix byte followed by the 32-byte x coordinate.
const CompressedSize = 33

// Point is an affine point on secp256k1, or the point at infinity.
// Points are immutable values: every operation returns a new Point
// and never mutates its receiver or arguments.
type Point struct {
	x, y     *big.Int
	infinity bool
}

// Infinity returns the point at infinity, the group identity.
func Infinity() Point {
	return Point{infinity: true}
}

// Generator returns the standard base point G.
func Generator() Point {
	return Point{x: new(big.Int).Set(gx), y: new(big.Int).Set(gy)}
}

// NewPoint builds an affine point from coordinates, rejecting
// coordinate pairs that do not satisfy the curve equation.
func NewPoint(x, y *big.Int) (Point, error) {
	p := Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
	if !p.OnCurve() {
		return Point{}, ErrPointNotOnCurve
	}
	return p, nil
}

// X returns a copy of the x coordinate. Nil for infinity.
func (p Point) X() *big.Int {
	if p.infinity {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate. Nil for infinity.
func (p Point) Y() *big.Int {
	if p.infinity {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// OnCurve reports whether p satisfies y^2 ≡ x^3 + 7 (mod P).
// The point at infinity is on the curve.
func (p Point) OnCurve() bool {
	if p.infinity {
		return true
	}
	lhs := new(big.Int).Mul(p.y, p.y)
	lhs.Mod(lhs, P)
	rhs := rhsOf(p.x)
	return lhs.Cmp(rhs) == 0
}

// rhsOf computes x^3 + 7 mod P.
func rhsOf(x *big.Int) *big.Int {
	rhs := new(big.Int).Exp(x, big.NewInt(3), P)
	rhs.Add(rhs, B)
	rhs.Mod(rhs, P)
	return rhs
}

// Add returns p + q using the affine chord rule. Infinity acts as the
// identity; adding a point to its negation yields infinity; adding a
// point to itself delegates to Double.
func (p Point) Add(q Point) Point {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.x.Cmp(q.x) == 0 {
		if p.y.Cmp(q.y) == 0 {
			return p.Double()
		}
		// Equal x, opposite y: vertical chord.
		return Infinity()
	}

	// lambda = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(q.y, p.y)
	den := new(big.Int).Sub(q.x, p.x)
	den.Mod(den, P)
	denInv, err := Inverse(den, P)
	if err != nil {
		// den != 0 is guaranteed by the x comparison above and P is prime.
		panic("curve: add: " + err.Error())
	}
	lambda := num.Mul(num, denInv)
	lambda.Mod(lambda, P)

	return p.chord(lambda, q.x)
}

// Double returns 2p using the affine tangent rule. Doubling infinity or
// a point with y = 0 yields infinity.
func (p Point) Double() Point {
	if p.infinity || p.y.Sign() == 0 {
		return Infinity()
	}

	// lambda = 3*x^2 / 2*y
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))
	den := new(big.Int).Lsh(p.y, 1)
	den.Mod(den, P)
	denInv, err := Inverse(den, P)
	if err != nil {
		panic("curve: double: " + err.Error())
	}
	lambda := num.Mul(num, denInv)
	lambda.Mod(lambda, P)

	return p.chord(lambda, p.x)
}

// chord finishes an addition given the chord/tangent slope lambda and
// the x coordinate of the second point.
func (p Point) chord(lambda, x2 *big.Int) Point {
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, x2)
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, P)

	return Point{x: x3, y: y3}
}

// ScalarMult returns k*p via a Montgomery ladder over a fixed 256-bit
// schedule. Both ladder branches perform one add and one double per bit
// regardless of the bit value, so the operation sequence does not depend
// on the scalar. The scalar is reduced mod N first.
func (p Point) ScalarMult(k *big.Int) Point {
	kr := new(big.Int).Mod(k, N)
	r0 := Infinity()
	r1 := p
	for i := 255; i >= 0; i-- {
		if kr.Bit(i) == 1 {
			r0 = r0.Add(r1)
			r1 = r1.Double()
		} else {
			r1 = r0.Add(r1)
			r0 = r0.Double()
		}
	}
	return r0
}

// BaseMult returns k*G.
func BaseMult(k *big.Int) Point {
	return Generator().ScalarMult(k)
}

// Negate returns -p, the point with the same x and negated y.
func (p Point) Negate() Point {
	if p.infinity {
		return p
	}
	y := new(big.Int).Sub(P, p.y)
	y.Mod(y, P)
	return Point{x: new(big.Int).Set(p.x), y: y}
}

// Compress encodes p in 33-byte compressed form: a 0x02 or 0x03 prefix
// selecting the parity of y, followed by the big-endian x coordinate.
// Compressing infinity is a caller bug and panics.
func (p Point) Compress() [CompressedSize]byte {
	if p.infinity {
		panic("curve: cannot compress point at infinity")
	}
	var out [CompressedSize]byte
	out[0] = 0x02 | byte(p.y.Bit(0))
	p.x.FillBytes(out[1:])
	return out
}

// Decompress decodes a 33-byte compressed point. The y coordinate is
// recovered as a square root of x^3 + 7 and flipped to match the parity
// encoded in the prefix byte. Returns ErrPointNotOnCurve when the prefix
// is unknown, x is out of range, or x^3 + 7 has no square root.
func Decompress(data []byte) (Point, error) {
	if len(data) != CompressedSize {
		return Point{}, ErrPointNotOnCurve
	}
	prefix := data[0]
	if prefix != 0x02 && prefix != 0x03 {
		return Point{}, ErrPointNotOnCurve
	}
	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(P) >= 0 {
		return Point{}, ErrPointNotOnCurve
	}

	rhs := rhsOf(x)
	y := SqrtModP(rhs)
	check := new(big.Int).Mul(y, y)
	check.Mod(check, P)
	if check.Cmp(rhs) != 0 {
		return Point{}, ErrPointNotOnCurve
	}
	if byte(y.Bit(0)) != prefix&1 {
		y.Sub(P, y)
	}
	return Point{x: x, y: y}, nil
}
