// Package math provides the small vector type used for furniture placement data.
package math

import (
	"math"
	"strconv"
)

// Vec3 is a 3D vector in block units.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// MaxComponent returns the largest of X, Y and Z.
func (v Vec3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// String formats the vector as "x,y,z" using the shortest %g form
// (six significant digits), e.g. "0,0.5,-1".
func (v Vec3) String() string {
	return FormatFloat(v.X) + "," + FormatFloat(v.Y) + "," + FormatFloat(v.Z)
}

// MarshalYAML writes the vector in its "x,y,z" string form.
func (v Vec3) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}


// FormatFloat formats f like %g: six significant digits, trailing zeros
// dropped.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
