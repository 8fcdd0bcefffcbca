package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// RayClass packs the sign of each ray direction component into two bits per axis: x in bits 0-1,
// y in bits 2-3 and z in bits 4-5. A negative component is stored as 0, zero as 1, positive as 2.
type RayClass uint8

// degenerateClass is the class of a ray with no direction.
var degenerateClass = classOf(0, 0, 0)

func classOf(sx, sy, sz int) RayClass {
	return RayClass(sx+1) | RayClass(sy+1)<<2 | RayClass(sz+1)<<4
}

// Signs returns the sign (-1, 0 or 1) of the x, y and z direction components encoded in the class.
func (c RayClass) Signs() (int, int, int) {
	return int(c&3) - 1, int(c>>2&3) - 1, int(c>>4&3) - 1
}

// Degenerate reports whether the class describes a ray that can never hit a box.
func (c RayClass) Degenerate() bool {
	return c == degenerateClass || c&3 == 3 || c>>2&3 == 3 || c>>4&3 == 3 || c>>6 != 0
}

// String returns the class name, one letter per axis: M for a negative, O for a zero and P for a
// positive direction component. "MPO" is a ray travelling towards -x and +y within a z plane.
func (c RayClass) String() string {
	const letters = "MOP?"
	return string([]byte{letters[c&3], letters[c>>2&3], letters[c>>4&3]})
}

// Sign returns -1, 0 or 1 depending on the sign of v. NaN and both zeros report 0.
func Sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// boxPredicate decides whether the bound ray meets the box spanned by the given corners.
type boxPredicate func(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool

// boxPredicates maps every class to its predicate. Padding classes and the direction-less class
// never hit.
var boxPredicates = func() [64]boxPredicate {
	var table [64]boxPredicate
	for i := range table {
		table[i] = miss
	}
	table[classOf(-1, -1, -1)] = testMMM
	table[classOf(0, -1, -1)] = testOMM
	table[classOf(1, -1, -1)] = testPMM
	table[classOf(-1, 0, -1)] = testMOM
	table[classOf(0, 0, -1)] = testOOM
	table[classOf(1, 0, -1)] = testPOM
	table[classOf(-1, 1, -1)] = testMPM
	table[classOf(0, 1, -1)] = testOPM
	table[classOf(1, 1, -1)] = testPPM
	table[classOf(-1, -1, 0)] = testMMO
	table[classOf(0, -1, 0)] = testOMO
	table[classOf(1, -1, 0)] = testPMO
	table[classOf(-1, 0, 0)] = testMOO
	table[classOf(1, 0, 0)] = testPOO
	table[classOf(-1, 1, 0)] = testMPO
	table[classOf(0, 1, 0)] = testOPO
	table[classOf(1, 1, 0)] = testPPO
	table[classOf(-1, -1, 1)] = testMMP
	table[classOf(0, -1, 1)] = testOMP
	table[classOf(1, -1, 1)] = testPMP
	table[classOf(-1, 0, 1)] = testMOP
	table[classOf(0, 0, 1)] = testOOP
	table[classOf(1, 0, 1)] = testPOP
	table[classOf(-1, 1, 1)] = testMPP
	table[classOf(0, 1, 1)] = testOPP
	table[classOf(1, 1, 1)] = testPPP
	return table
}()

// RayBoxTester answers whether a single bound ray overlaps axis aligned boxes. Binding precomputes
// the slopes of the ray projected onto the three coordinate planes along with a classification of
// its direction, after which every box query costs only comparisons and multiply-adds.
//
// Test only reads the tester, so one bound tester may be shared by any number of goroutines as
// long as nobody calls Bind concurrently. Workers that rebind should each own a copy.
//
// The zero value is unbound and reports no hits.
type RayBoxTester struct {
	x, y, z    float64
	dx, dy, dz float64

	// sab is the slope of the ray projected onto the ab plane, b as a function of a, and cab is the
	// matching intercept. Slopes are only meaningful when neither component is zero.
	sxy, syx, szy, syz, sxz, szx float64
	cxy, cyx, czy, cyz, cxz, czx float64

	class RayClass
	test  boxPredicate
}

// NewRayBoxTester returns a tester bound to the ray starting at origin travelling along direction.
func NewRayBoxTester(origin, direction r3.Vector) *RayBoxTester {
	r := &RayBoxTester{}
	r.Bind(origin.X, origin.Y, origin.Z, direction.X, direction.Y, direction.Z)
	return r
}

// BindRay binds the tester to the given ray.
func (r *RayBoxTester) BindRay(ray Ray) {
	r.Bind(ray.Origin.X, ray.Origin.Y, ray.Origin.Z, ray.Direction.X, ray.Direction.Y, ray.Direction.Z)
}

// Bind replaces the bound ray. Direction components may be zero; if all of them are, or any
// origin or direction component is NaN or infinite, every subsequent Test returns false.
//
// The direction is scaled by its largest magnitude, which leaves the ray unchanged. A component
// that is still too small for its slopes and intercepts to fit in a float64, such as a subnormal
// next to a unit component, is treated as zero: the ray is taken as parallel to that axis.
func (r *RayBoxTester) Bind(ox, oy, oz, dx, dy, dz float64) {
	if !finite(ox) || !finite(oy) || !finite(oz) || !finite(dx) || !finite(dy) || !finite(dz) {
		*r = RayBoxTester{x: ox, y: oy, z: oz, dx: dx, dy: dy, dz: dz, class: degenerateClass, test: miss}
		return
	}

	b := RayBoxTester{x: ox, y: oy, z: oz, dx: dx, dy: dy, dz: dz}
	n := [3]float64{dx, dy, dz}
	if m := math.Max(math.Abs(dx), math.Max(math.Abs(dy), math.Abs(dz))); m > 0 {
		n = [3]float64{dx / m, dy / m, dz / m}
	}
	for done := false; !done; {
		done = b.precompute(&n)
	}

	b.class = classOf(Sign(n[0]), Sign(n[1]), Sign(n[2]))
	b.test = boxPredicates[b.class]
	*r = b
}

// precompute derives the slopes and intercepts from the scaled direction n. When a pair of moving
// axes yields a slope or intercept outside the float64 range, the slower of the two is zeroed and
// false is returned so the caller recomputes. Each retry zeroes one more axis.
func (r *RayBoxTester) precompute(n *[3]float64) bool {
	for i, v := range n {
		if v != 0 && !finite(1/v) {
			n[i] = 0
		}
	}

	// A zero component gives an infinite reciprocal. Slopes built from it are never read by the
	// predicate selected for that direction.
	ix, iy, iz := 1/n[0], 1/n[1], 1/n[2]
	r.sxy, r.syx = n[1]*ix, n[0]*iy
	r.szy, r.syz = n[1]*iz, n[2]*iy
	r.sxz, r.szx = n[2]*ix, n[0]*iz
	r.cxy, r.cyx = r.y-r.sxy*r.x, r.x-r.syx*r.y
	r.czy, r.cyz = r.y-r.szy*r.z, r.z-r.syz*r.y
	r.cxz, r.czx = r.z-r.sxz*r.x, r.x-r.szx*r.z

	pairs := [...]struct {
		a, b     int
		sab, cab float64
		sba, cba float64
	}{
		{0, 1, r.sxy, r.cxy, r.syx, r.cyx},
		{1, 2, r.syz, r.cyz, r.szy, r.czy},
		{0, 2, r.sxz, r.cxz, r.szx, r.czx},
	}
	for _, p := range pairs {
		if n[p.a] == 0 || n[p.b] == 0 {
			continue
		}
		if finite(p.sab) && finite(p.cab) && finite(p.sba) && finite(p.cba) {
			continue
		}
		if math.Abs(n[p.a]) < math.Abs(n[p.b]) {
			n[p.a] = 0
		} else {
			n[p.b] = 0
		}
		return false
	}
	return true
}

// Test reports whether the bound ray meets the closed box [min, max]. Contact with the boundary
// counts as a hit up to rounding: the intercepts are computed apart from the face coordinates, so
// exact tangency may go either way. Boxes with min > max on some axis are not rejected explicitly.
func (r *RayBoxTester) Test(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	if r.test == nil {
		return false
	}
	return r.test(r, minX, minY, minZ, maxX, maxY, maxZ)
}

// TestAABB is Test for an AABB value.
func (r *RayBoxTester) TestAABB(b AABB) bool {
	return r.Test(b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

// Class returns the classification of the bound direction.
func (r *RayBoxTester) Class() RayClass {
	if r.test == nil {
		return degenerateClass
	}
	return r.class
}

// Ray returns the bound ray.
func (r *RayBoxTester) Ray() Ray {
	return Ray{
		Origin:    r3.Vector{X: r.x, Y: r.y, Z: r.z},
		Direction: r3.Vector{X: r.dx, Y: r.dy, Z: r.dz},
	}
}

func miss(*RayBoxTester, float64, float64, float64, float64, float64, float64) bool {
	return false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
