package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// AABB is an axis aligned bounding box spanning Min to Max, boundary included.
type AABB struct {
	Min r3.Vector
	Max r3.Vector
}

// NewAABB instantiates a new AABB. Min must not exceed max on any axis. Zero extents are allowed.
func NewAABB(min, max r3.Vector) (AABB, error) {
	if math.IsNaN(min.X) || math.IsNaN(min.Y) || math.IsNaN(min.Z) ||
		math.IsNaN(max.X) || math.IsNaN(max.Y) || math.IsNaN(max.Z) {
		return AABB{}, newBadAABBError(min, max)
	}
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return AABB{}, newBadAABBError(min, max)
	}
	return AABB{Min: min, Max: max}, nil
}

// NewAABBFromCenter instantiates an AABB centered on center with the given full dimensions.
func NewAABBFromCenter(center, dims r3.Vector) (AABB, error) {
	// Negative dimensions not allowed. Zero dimensions are allowed for degenerate boxes, etc.
	if dims.X < 0 || dims.Y < 0 || dims.Z < 0 {
		return AABB{}, newBadAABBDimensionsError(dims)
	}
	half := dims.Mul(0.5)
	return NewAABB(center.Sub(half), center.Add(half))
}

// Center returns the center point of the box.
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Dims returns the full extents of the box along each axis.
func (b AABB) Dims() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Union returns the smallest box containing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: r3.Vector{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y), Z: math.Min(b.Min.Z, other.Min.Z)},
		Max: r3.Vector{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y), Z: math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Expand grows the box by margin on every side.
func (b AABB) Expand(margin float64) AABB {
	m := r3.Vector{X: margin, Y: margin, Z: margin}
	return AABB{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// ContainsPoint reports whether pt lies inside the box or on its boundary.
func (b AABB) ContainsPoint(pt r3.Vector) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Intersects reports whether the two boxes overlap, touching included.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// String returns a human readable string that represents the box.
func (b AABB) String() string {
	return fmt.Sprintf("Min: X:%.3f, Y:%.3f, Z:%.3f | Max: X:%.3f, Y:%.3f, Z:%.3f",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

func (b AABB) axisCenter(axis int) float64 {
	switch axis {
	case 0:
		return 0.5 * (b.Min.X + b.Max.X)
	case 1:
		return 0.5 * (b.Min.Y + b.Max.Y)
	default:
		return 0.5 * (b.Min.Z + b.Max.Z)
	}
}
