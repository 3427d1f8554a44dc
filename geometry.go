package videoslider

import "math"

// positionScale fixes the precision of a normalized position at five
// decimal digits. Rounding here keeps float jitter from feeding back
// into layout when a position round-trips through pixel space.
const positionScale = 1e5

// Rect describes the content area of the comparison surface in pixel
// space, as measured by the host on mount and on every resize.
//
// The zero Rect is a valid "not yet laid out" state: conversions through
// a zero-width Rect degrade to safe defaults and self-correct on the
// next measurement.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Right returns the right edge of the rect in pixel space.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// ClampPosition constrains a normalized position to [0, 1].
func ClampPosition(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// RoundPosition rounds a normalized position to five decimal digits.
func RoundPosition(p float64) float64 {
	return math.Round(p*positionScale) / positionScale
}

// PixelToNormalized converts a pointer x coordinate into a normalized
// divider position relative to the content rect. The result is always
// clamped to [0, 1] and rounded, even for pointers outside the rect.
//
// A zero-width rect returns 0; callers are expected to guard and retry
// on the next geometry observation.
func PixelToNormalized(x float64, r Rect) float64 {
	if r.Width == 0 {
		return 0
	}
	return RoundPosition(ClampPosition((x - r.Left) / r.Width))
}

// NormalizedToPixel converts a normalized divider position into the
// pixel x coordinate of the handle, clamped to [0, containerWidth].
//
// The normalized position is the source of truth; the pixel value is
// always derived from it, never the other way around.
func NormalizedToPixel(p float64, r Rect, containerWidth float64) float64 {
	if containerWidth == 0 {
		return 0
	}
	x := r.Width*p + r.Left
	if x < 0 {
		return 0
	}
	if x > containerWidth {
		return containerWidth
	}
	return x
}
