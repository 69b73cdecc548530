package rewards

import (
	"github.com/rodoshi16/UTMIST-AI2/common/utils/vector"
)

// Distance returns the Euclidean distance between two points.
func Distance(a vector.Vector2, b vector.Vector2) float64 {
	return b.Sub(a).Mag()
}

// PotentialGain returns the change in distance to a reference point between
// two successive positions of a moving point. Positive when the point got
// closer to the reference, negative when it moved away, exactly 0 when it
// did not move. Continuous everywhere; shaping terms built on it cannot
// exhibit the sign-flip discontinuity of axis-multiplier formulations.
func PotentialGain(prev vector.Vector2, curr vector.Vector2, reference vector.Vector2) float64 {
	if prev.Equals(curr) {
		return 0
	}
	return Distance(prev, reference) - Distance(curr, reference)
}
