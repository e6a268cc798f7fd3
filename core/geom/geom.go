package geom

import (
	"Geometry/config"
	"math"
	"strconv"
)

// Point2D is a 2D coordinate value. The zero value is the origin.
type Point2D struct{ x, y float64 }

func NewPoint2D(x, y float64) Point2D {
	return Point2D{x, y}
}

func (p Point2D) X() float64 { return p.x }

func (p Point2D) Y() float64 { return p.y }

func (p Point2D) Coord() (float64, float64) {
	return p.x, p.y
}

func (p *Point2D) SetX(x float64) { p.x = x }

func (p *Point2D) SetY(y float64) { p.y = y }

func (p Point2D) Add(other Point2D) Point2D {
	return NewPoint2D(p.x+other.x, p.y+other.y)
}

func (p Point2D) Sub(other Point2D) Point2D {
	return NewPoint2D(p.x-other.x, p.y-other.y)
}

// AddInPlace adds other to p and returns p, so calls can be chained.
func (p *Point2D) AddInPlace(other Point2D) *Point2D {
	p.x += other.x
	p.y += other.y
	return p
}

// SubInPlace subtracts other from p and returns p.
func (p *Point2D) SubInPlace(other Point2D) *Point2D {
	p.x -= other.x
	p.y -= other.y
	return p
}

func (p Point2D) Mul(by float64) Point2D {
	return NewPoint2D(p.x*by, p.y*by)
}

// Div divides both coordinates by by. Division by zero yields ±Inf or NaN.
func (p Point2D) Div(by float64) Point2D {
	return NewPoint2D(p.x/by, p.y/by)
}

// Equal reports exact equality of both coordinates. It agrees with ==.
func (p Point2D) Equal(other Point2D) bool {
	return p.x == other.x && p.y == other.y
}

func (p Point2D) NotEqual(other Point2D) bool {
	return p.x != other.x || p.y != other.y
}

// ApproxEqual compares coordinates with a tolerance scaled by their magnitude,
// so tol acts as an absolute bound near zero and a relative one elsewhere.
// An infinite coordinate only matches the same infinity.
func (p Point2D) ApproxEqual(other Point2D, tol float64) bool {
	return approx(p.x, other.x, tol) && approx(p.y, other.y, tol)
}

// Near is ApproxEqual with the default tolerance.
func (p Point2D) Near(other Point2D) bool {
	return p.ApproxEqual(other, config.Tolerance)
}

func approx(a, b, tol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol*scale
}

// DistTo returns the euclidean distance between p and other.
func (p Point2D) DistTo(other Point2D) float64 {
	dx := p.x - other.x
	dy := p.y - other.y
	return math.Sqrt(dx*dx + dy*dy)
}

func Distance(a, b Point2D) float64 {
	return a.DistTo(b)
}

func (p Point2D) String() string {
	return "(" + strconv.FormatFloat(p.x, 'g', -1, 64) + ", " + strconv.FormatFloat(p.y, 'g', -1, 64) + ")"
}
