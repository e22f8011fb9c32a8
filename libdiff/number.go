package libdiff

import (
	"math"
	"strconv"
)

// doublesWithin compares two double literal texts under a relative-error
// tolerance.  Texts that do not parse, or parse to non-finite values, fall
// back to exact text comparison: the tolerance formula is undefined for
// NaN and unbounded for Inf.
func doublesWithin(a, b string, tol float64) bool {
	if tol < 0 {
		tol = 0
	}
	x, errA := strconv.ParseFloat(a, 64)
	y, errB := strconv.ParseFloat(b, 64)
	if errA != nil || errB != nil {
		return a == b
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return a == b
	}
	scale := math.Max(math.Max(math.Abs(x), math.Abs(y)), 1)
	return math.Abs(x-y) <= tol*scale
}
