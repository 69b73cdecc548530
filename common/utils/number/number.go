package number

import "math"

const epsilon = 1e-9

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func FloatEquals(a, b float64) bool {
	return IsZero(a - b)
}
