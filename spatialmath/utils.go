package spatialmath

import (
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// spaceDelimitedStringToSlice splits up space-delimited numbers such as "1 2.5 -3". Fields that do
// not parse become NaN.
func spaceDelimitedStringToSlice(s string) []float64 {
	var converted []float64
	for _, field := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			value = math.NaN()
		}
		converted = append(converted, value)
	}
	return converted
}

// ParseVector parses a vector written as three space or comma delimited numbers.
func ParseVector(s string) (r3.Vector, error) {
	values := spaceDelimitedStringToSlice(s)
	if len(values) != 3 {
		return r3.Vector{}, newBadVectorStringError(s)
	}
	for _, v := range values {
		if math.IsNaN(v) {
			return r3.Vector{}, newBadVectorStringError(s)
		}
	}
	return r3.Vector{X: values[0], Y: values[1], Z: values[2]}, nil
}
