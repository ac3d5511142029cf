package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Angle returns the unsigned angle in degrees between from and to.
// Degenerate (near zero length) inputs give 0.
func Angle(from, to mgl32.Vec3) float32 {
	denom := math.Sqrt(float64(from.LenSqr()) * float64(to.LenSqr()))
	if denom < 1e-15 {
		return 0
	}
	cos := float64(from.Dot(to)) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return float32(math.Acos(cos) * 180 / math.Pi)
}
