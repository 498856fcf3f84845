package zoneplate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRadii(t *testing.T, ringCount int) []float64 {
	t.Helper()
	radii, err := ZoneRadii(Params{Wavelength: 500e-9, FocalLength: 0.1, RingCount: ringCount})
	require.NoError(t, err)
	return radii
}

func TestGridScaleMarginPolicy(t *testing.T) {
	const outerRadius = 0.01
	const resolution = 1000

	scale, err := GridScale(outerRadius, resolution)
	require.NoError(t, err)

	// The outermost boundary lands one pixel inside the image half-width.
	assert.InDelta(t, float64(resolution)/2.0-1.0, outerRadius*scale, 1e-9)
}

func TestGridScaleDegenerate(t *testing.T) {
	cases := []struct {
		name        string
		outerRadius float64
		resolution  int
	}{
		{"zero outer radius", 0, 500},
		{"negative outer radius", -0.01, 500},
		{"NaN outer radius", math.NaN(), 500},
		{"infinite outer radius", math.Inf(1), 500},
		{"tiny grid", 0.01, 3},
		{"zero resolution", 0.01, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GridScale(tc.outerRadius, tc.resolution)
			assert.ErrorIs(t, err, ErrDegenerateGeometry)
		})
	}
}

func TestAutoResolutionThinnestRing(t *testing.T) {
	radii := testRadii(t, 50)

	res := AutoResolution(radii)
	require.Greater(t, res, 0)

	scale, err := GridScale(radii[len(radii)-1], res)
	require.NoError(t, err)

	// The thinnest zone (the outermost one, since the diffs shrink with n)
	// spans about 8 pixels at the automatic resolution.
	thinnest := radii[len(radii)-1] - radii[len(radii)-2]
	assert.InDelta(t, 8.0, thinnest*scale, 0.2)
}

func TestAutoResolutionSingleRing(t *testing.T) {
	radii := testRadii(t, 1)

	res := AutoResolution(radii)
	// 8 px across the disk radius, doubled for the diameter (truncation may
	// lose a pixel).
	assert.InDelta(t, 16.0, float64(res), 1.0)
}

func TestFresnelCenterPixelOpaque(t *testing.T) {
	var rz Rasterizer
	mask, err := rz.Fresnel(testRadii(t, 10), 401)
	require.NoError(t, err)

	c := mask.Center()
	assert.EqualValues(t, 0, mask.At(c, c), "the exact center classifies as zone 0 and stays opaque")
	assert.EqualValues(t, 1, mask.At(c+1, c), "zone 1 next to the center is transparent")
}

func TestFresnelSingleRingDisk(t *testing.T) {
	var rz Rasterizer
	radii := testRadii(t, 1)

	mask, err := rz.Fresnel(radii, 101)
	require.NoError(t, err)

	scale, err := GridScale(radii[0], 101)
	require.NoError(t, err)
	diskRadius := radii[0] * scale

	c := mask.Center()
	for y := 0; y < mask.Size; y++ {
		for x := 0; x < mask.Size; x++ {
			d := math.Hypot(float64(x-c), float64(y-c))
			switch {
			case d == 0:
				assert.EqualValues(t, 0, mask.At(x, y), "center pixel")
			case d < diskRadius-1e-9:
				assert.EqualValues(t, 1, mask.At(x, y), "inside the disk at (%d,%d)", x, y)
			case d >= diskRadius:
				assert.EqualValues(t, 0, mask.At(x, y), "outside the disk at (%d,%d)", x, y)
			}
		}
	}
}

func TestFresnelZoneAlternation(t *testing.T) {
	var rz Rasterizer
	radii := testRadii(t, 4)
	const resolution = 800

	mask, err := rz.Fresnel(radii, resolution)
	require.NoError(t, err)

	scale, err := GridScale(radii[len(radii)-1], resolution)
	require.NoError(t, err)

	c := mask.Center()
	inner := 0.0
	for k, outer := range radii {
		mid := (inner + outer) / 2.0 * scale
		want := uint8(0)
		if (k+1)%2 == 1 {
			want = 1
		}
		assert.EqualValues(t, want, mask.At(c+int(mid), c), "midpoint of zone %d", k+1)
		inner = outer
	}

	// Beyond the outermost boundary everything is opaque.
	assert.EqualValues(t, 0, mask.At(c+int(radii[len(radii)-1]*scale)+1, c))
	assert.EqualValues(t, 0, mask.At(0, 0))
}

func TestFresnelBorderOpaque(t *testing.T) {
	var rz Rasterizer
	mask, err := rz.Fresnel(testRadii(t, 3), 200)
	require.NoError(t, err)

	last := mask.Size - 1
	for i := 0; i < mask.Size; i++ {
		assert.EqualValues(t, 0, mask.At(i, 0))
		assert.EqualValues(t, 0, mask.At(i, last))
		assert.EqualValues(t, 0, mask.At(0, i))
		assert.EqualValues(t, 0, mask.At(last, i))
	}
}

// transparentAreaError returns the relative deviation of the transparent
// pixel count from the theoretical odd-zone annulus area at the given
// resolution.
func transparentAreaError(t *testing.T, radii []float64, resolution int) float64 {
	t.Helper()
	var rz Rasterizer

	mask, err := rz.Fresnel(radii, resolution)
	require.NoError(t, err)

	scale, err := GridScale(radii[len(radii)-1], resolution)
	require.NoError(t, err)

	theory := 0.0
	inner := 0.0
	for k, outer := range radii {
		if (k+1)%2 == 1 {
			theory += math.Pi * (outer*outer - inner*inner) * scale * scale
		}
		inner = outer
	}

	return math.Abs(float64(mask.TransparentCount())-theory) / theory
}

func TestFresnelAreaConvergence(t *testing.T) {
	radii := testRadii(t, 5)

	// Average a few nearby resolutions so quantization luck at a single
	// grid size cannot mask the trend.
	avgError := func(resolutions ...int) float64 {
		sum := 0.0
		for _, res := range resolutions {
			sum += transparentAreaError(t, radii, res)
		}
		return sum / float64(len(resolutions))
	}

	errCoarse := avgError(140, 150, 160)
	errFine := avgError(1150, 1200, 1250)

	assert.Less(t, errFine, errCoarse, "pixel area must approach the theoretical ring area as resolution grows")
	assert.Less(t, errFine, 0.02)
}

func TestPhotonSieveDeterministicReproducible(t *testing.T) {
	var rz Rasterizer
	radii := testRadii(t, 5)

	first, err := rz.PhotonSieve(radii, 400, false)
	require.NoError(t, err)
	second, err := rz.PhotonSieve(radii, 400, false)
	require.NoError(t, err)

	assert.Equal(t, first.Pix, second.Pix, "deterministic mode must reproduce the mask exactly")
	assert.Greater(t, first.TransparentCount(), 0)
}

func TestPhotonSieveSeededRandomReproducible(t *testing.T) {
	radii := testRadii(t, 5)

	rzA := Rasterizer{Rand: rand.New(rand.NewSource(7))}
	rzB := Rasterizer{Rand: rand.New(rand.NewSource(7))}

	first, err := rzA.PhotonSieve(radii, 400, true)
	require.NoError(t, err)
	second, err := rzB.PhotonSieve(radii, 400, true)
	require.NoError(t, err)

	assert.Equal(t, first.Pix, second.Pix, "identical seeds must reproduce the mask")
}

func TestPhotonSieveRandomizedVaries(t *testing.T) {
	radii := testRadii(t, 5)

	rzA := Rasterizer{Rand: rand.New(rand.NewSource(1))}
	rzB := Rasterizer{Rand: rand.New(rand.NewSource(2))}

	first, err := rzA.PhotonSieve(radii, 400, true)
	require.NoError(t, err)
	second, err := rzB.PhotonSieve(radii, 400, true)
	require.NoError(t, err)

	assert.NotEqual(t, first.Pix, second.Pix, "different seeds should place apertures differently")
	assert.Greater(t, first.TransparentCount(), 0)
	assert.Greater(t, second.TransparentCount(), 0)
}

func TestPhotonSieveCenterOpaque(t *testing.T) {
	var rz Rasterizer
	mask, err := rz.PhotonSieve(testRadii(t, 5), 400, false)
	require.NoError(t, err)

	// Apertures sit on the zone boundaries; the background, including the
	// pattern center, stays opaque.
	c := mask.Center()
	assert.EqualValues(t, 0, mask.At(c, c))
}

func TestApertureCount(t *testing.T) {
	const spacing = DefaultArcSpacingFactor * DefaultApertureRadiusPx

	assert.Equal(t, 1, ApertureCount(0.5, spacing), "tiny rings still receive one aperture")

	small := ApertureCount(50, spacing)
	large := ApertureCount(200, spacing)
	assert.Greater(t, large, small, "larger rings receive more apertures")

	// Density per unit arc length stays roughly constant.
	assert.InDelta(t, 4.0, float64(large)/float64(small), 0.2)
}

func TestProgressReportedOncePerRing(t *testing.T) {
	const ringCount = 12
	radii := testRadii(t, ringCount)

	var rings []int
	rz := Rasterizer{Progress: func(ring int) { rings = append(rings, ring) }}

	_, err := rz.Fresnel(radii, 300)
	require.NoError(t, err)
	require.Len(t, rings, ringCount)
	for i, ring := range rings {
		assert.Equal(t, i+1, ring)
	}

	rings = nil
	_, err = rz.PhotonSieve(radii, 300, false)
	require.NoError(t, err)
	assert.Len(t, rings, ringCount)
}

func TestGenerateValidatesBeforeRasterizing(t *testing.T) {
	var rz Rasterizer

	_, err := rz.Generate(Params{Wavelength: 0, FocalLength: 1e-3, RingCount: 100}, ModeFresnel, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = rz.Generate(Params{Wavelength: 9.8e-7, FocalLength: 1e-3, RingCount: 100}, Mode(99), 500)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGenerateResult(t *testing.T) {
	var rz Rasterizer
	p := Params{Wavelength: 9.80e-7, FocalLength: 1e-3, RingCount: 100}

	result, err := rz.Generate(p, ModeFresnel, 600)
	require.NoError(t, err)
	require.NotNil(t, result.Mask)

	assert.Equal(t, 600, result.Mask.Size)
	assert.InEpsilon(t, 6.337223366743515e-04, result.OuterDiameter, 1e-12)
}

func TestGenerateModeIndependence(t *testing.T) {
	var rz Rasterizer
	p := Params{Wavelength: 9.80e-7, FocalLength: 1e-3, RingCount: 20}

	// A degenerate resolution fails one request without affecting another
	// with the same rasterizer.
	_, err := rz.Generate(p, ModeFresnel, 2)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	result, err := rz.Generate(p, ModePhotonSieve, 500)
	require.NoError(t, err)
	assert.Greater(t, result.Mask.TransparentCount(), 0)
}
