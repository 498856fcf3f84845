package zoneplate

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Pixel-space tuning constants. The thinnest zone is rendered at least
// minRingThicknessPx pixels wide when the resolution is chosen
// automatically. Aperture spacing along the ring circumference is
// expressed as a multiple of the aperture radius; 3.5 matches the average
// dot spacing of the reference masks.
const (
	minRingThicknessPx      = 8
	gridMarginPx            = 1
	DefaultApertureRadiusPx = 3
	DefaultArcSpacingFactor = 3.5
)

// Rasterizer maps a physical zone-radius sequence onto a finite pixel
// grid. The zero value is ready to use; all fields are optional.
type Rasterizer struct {
	ApertureRadiusPx int     // Photon sieve aperture radius in pixels (0 = DefaultApertureRadiusPx)
	ArcSpacingFactor float64 // Aperture spacing along the ring, in aperture radii (0 = DefaultArcSpacingFactor)

	// Progress, when non-nil, is called once per completed ring with the
	// 1-based ring index. It must not retain the mask under construction.
	Progress func(ring int)

	// Rand supplies the angular positions for the randomized photon sieve.
	// When nil, a time-seeded source is created per call, so repeated runs
	// produce different masks unless the caller injects a seeded source.
	Rand *rand.Rand
}

func (rz *Rasterizer) apertureRadius() int {
	if rz.ApertureRadiusPx > 0 {
		return rz.ApertureRadiusPx
	}
	return DefaultApertureRadiusPx
}

func (rz *Rasterizer) arcSpacingFactor() float64 {
	if rz.ArcSpacingFactor > 0 {
		return rz.ArcSpacingFactor
	}
	return DefaultArcSpacingFactor
}

func (rz *Rasterizer) reportRing(ring int) {
	if rz.Progress != nil {
		rz.Progress(ring)
	}
}

// GridScale returns the pixel-per-meter scale that places the outermost
// zone boundary gridMarginPx pixels inside the image half-width, so the
// whole pattern is visible regardless of the input magnitude.
func GridScale(outerRadius float64, resolution int) (float64, error) {
	if outerRadius <= 0 || math.IsNaN(outerRadius) || math.IsInf(outerRadius, 0) {
		return 0, fmt.Errorf("%w: outer radius %g cannot be rasterized", ErrDegenerateGeometry, outerRadius)
	}
	if resolution <= 2*gridMarginPx+1 {
		return 0, fmt.Errorf("%w: resolution %d leaves no usable grid", ErrDegenerateGeometry, resolution)
	}
	scale := (float64(resolution)/2.0 - gridMarginPx) / outerRadius
	if scale <= 0 || math.IsInf(scale, 0) {
		return 0, fmt.Errorf("%w: grid scale is unusable for outer radius %g", ErrDegenerateGeometry, outerRadius)
	}
	return scale, nil
}

// AutoResolution returns the side length (pixels) at which the thinnest
// zone of the radius sequence spans minRingThicknessPx pixels. Returns 0
// for an empty or non-increasing sequence.
func AutoResolution(radii []float64) int {
	if len(radii) == 0 {
		return 0
	}
	// For a single ring the central disk is the thinnest feature.
	minThickness := radii[0]
	if len(radii) > 1 {
		diffs := make([]float64, len(radii)-1)
		floats.SubTo(diffs, radii[1:], radii[:len(radii)-1])
		minThickness = floats.Min(diffs)
	}
	if minThickness <= 0 {
		return 0
	}
	return int(minRingThicknessPx / minThickness * OuterDiameter(radii))
}

// Fresnel rasterizes the alternating-ring zone plate mask. Every pixel
// whose physical distance from the center falls in an odd-indexed zone
// (zone k spans [radii[k-1], radii[k]) with radii[0] == 0) is transparent.
// The exact center classifies as zone 0 and stays opaque, as do all pixels
// beyond the outermost boundary. A resolution of 0 selects AutoResolution.
func (rz *Rasterizer) Fresnel(radii []float64, resolution int) (*Mask, error) {
	if len(radii) == 0 {
		return nil, fmt.Errorf("%w: no zone radii", ErrInvalidParameter)
	}
	if resolution <= 0 {
		resolution = AutoResolution(radii)
	}
	scale, err := GridScale(radii[len(radii)-1], resolution)
	if err != nil {
		return nil, err
	}

	mask := NewMask(resolution)
	center := mask.Center()

	inner := 0.0
	for k, outer := range radii {
		if (k+1)%2 == 1 {
			paintAnnulus(mask, center, inner*scale, outer*scale)
		}
		inner = outer
		rz.reportRing(k + 1)
	}

	mask.blackenBorder()
	return mask, nil
}

// paintAnnulus marks transparent every pixel whose center distance d from
// (center, center) satisfies rIn <= d < rOut. The d == 0 pixel is the
// pattern center (zone 0) and is never painted.
func paintAnnulus(mask *Mask, center int, rIn, rOut float64) {
	bound := int(math.Ceil(rOut))
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			d := math.Hypot(float64(dx), float64(dy))
			if d > 0 && d >= rIn && d < rOut {
				mask.setTransparent(center+dx, center+dy)
			}
		}
	}
}

// PhotonSieve rasterizes the photon sieve mask: for each zone boundary, a
// set of small filled disks placed around the boundary circle on an
// otherwise opaque background. The aperture count per ring is
// max(1, floor(circumference / (ArcSpacingFactor * apertureRadius))), so
// larger rings receive proportionally more apertures. In deterministic
// mode the apertures are evenly spaced in angle; in randomized mode the
// same number of angles is drawn uniformly from [0, 2pi). Overlapping
// apertures union idempotently. A resolution of 0 selects AutoResolution.
func (rz *Rasterizer) PhotonSieve(radii []float64, resolution int, randomize bool) (*Mask, error) {
	if len(radii) == 0 {
		return nil, fmt.Errorf("%w: no zone radii", ErrInvalidParameter)
	}
	if resolution <= 0 {
		resolution = AutoResolution(radii)
	}
	scale, err := GridScale(radii[len(radii)-1], resolution)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if randomize {
		rng = rz.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}

	mask := NewMask(resolution)
	center := mask.Center()
	apRadius := rz.apertureRadius()
	spacing := rz.arcSpacingFactor() * float64(apRadius)

	for k, r := range radii {
		rPx := r * scale
		count := ApertureCount(rPx, spacing)
		for j := 0; j < count; j++ {
			angle := 2.0 * math.Pi * float64(j) / float64(count)
			if randomize {
				angle = rng.Float64() * 2.0 * math.Pi
			}
			x := center + int(math.Round(rPx*math.Cos(angle)))
			y := center + int(math.Round(rPx*math.Sin(angle)))
			mask.fillDisk(x, y, apRadius)
		}
		rz.reportRing(k + 1)
	}

	mask.blackenBorder()
	return mask, nil
}

// ApertureCount returns the number of apertures placed on a boundary
// circle of the given pixel radius, keeping the density per unit arc
// length roughly constant. Every ring receives at least one aperture.
func ApertureCount(ringRadiusPx, spacingPx float64) int {
	count := int(2.0 * math.Pi * ringRadiusPx / spacingPx)
	if count < 1 {
		count = 1
	}
	return count
}
