package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Ray is a half line starting at Origin and travelling along Direction. Direction need not be
// normalized.
type Ray struct {
	Origin    r3.Vector
	Direction r3.Vector
}

// NewRay returns a Ray, rejecting directions that are zero length or not finite.
func NewRay(origin, direction r3.Vector) (Ray, error) {
	if !vectorIsFinite(origin) {
		return Ray{}, newBadRayError("origin", origin)
	}
	if !vectorIsFinite(direction) || direction.Norm2() == 0 {
		return Ray{}, newBadRayError("direction", direction)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// PointAt returns the point at parameter t along the ray.
func (r Ray) PointAt(t float64) r3.Vector {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Class returns the class a RayBoxTester bound to r reports, including OOO for rays it treats as
// degenerate.
func (r Ray) Class() RayClass {
	var tester RayBoxTester
	tester.BindRay(r)
	return tester.Class()
}

// String returns a human readable string that represents the ray.
func (r Ray) String() string {
	return fmt.Sprintf("Origin: X:%.3f, Y:%.3f, Z:%.3f | Direction: X:%.3f, Y:%.3f, Z:%.3f",
		r.Origin.X, r.Origin.Y, r.Origin.Z, r.Direction.X, r.Direction.Y, r.Direction.Z)
}

func vectorIsFinite(v r3.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}
