package geom

import (
	"github.com/golang/geo/r2"
	"github.com/paulmach/orb"
)

func FromR2(p r2.Point) Point2D {
	return NewPoint2D(p.X, p.Y)
}

// R2 converts p to the golang/geo planar point type.
func (p Point2D) R2() r2.Point {
	return r2.Point{X: p.x, Y: p.y}
}

func FromOrb(p orb.Point) Point2D {
	return NewPoint2D(p.X(), p.Y())
}

// Orb converts p to an orb.Point, which stores coordinates as [x, y].
func (p Point2D) Orb() orb.Point {
	return orb.Point{p.x, p.y}
}
