package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

func newBadAABBError(min, max r3.Vector) error {
	return errors.Errorf("invalid bounding box: min %v must not exceed max %v on any axis", min, max)
}

func newBadAABBDimensionsError(dims r3.Vector) error {
	return errors.Errorf("invalid bounding box dimensions %v: dimensions must be non-negative", dims)
}

func newBadRayError(field string, v r3.Vector) error {
	return errors.Errorf("invalid ray %s %v: must be finite and non-zero", field, v)
}

func newBadVectorStringError(s string) error {
	return errors.Errorf("cannot parse %q as a vector: expected three space delimited numbers", s)
}
