// Package zoneplate computes Fresnel zone radii and rasterizes binary masks
// for Fresnel Zone Plates and Photon Sieves from physical parameters
// (wavelength, focal length, ring count).
package zoneplate

import (
	"errors"
	"fmt"
	"math"
)

// Params holds the physical parameters of a zone plate. Wavelength and
// FocalLength are in meters. The zone-radius formula assumes the wavelength
// is much smaller than the focal length; this is not enforced, but masks
// generated outside that regime are not optically meaningful.
type Params struct {
	Wavelength  float64 // Wavelength of the incident light (meters)
	FocalLength float64 // Design focal length of the plate (meters)
	RingCount   int     // Number of zone boundaries to compute (>= 1)
}

// ErrInvalidParameter is returned when a physical parameter is non-positive
// or a generation-mode token is not recognized.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrDegenerateGeometry is returned when the computed geometry is too small
// to rasterize at the requested resolution.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Validate checks the physical parameters.
func (p Params) Validate() error {
	if p.Wavelength <= 0 {
		return fmt.Errorf("%w: wavelength must be positive, got %g", ErrInvalidParameter, p.Wavelength)
	}
	if p.FocalLength <= 0 {
		return fmt.Errorf("%w: focal length must be positive, got %g", ErrInvalidParameter, p.FocalLength)
	}
	if p.RingCount < 1 {
		return fmt.Errorf("%w: ring count must be at least 1, got %d", ErrInvalidParameter, p.RingCount)
	}
	return nil
}

// Radius returns the boundary radius (meters) of the n-th Fresnel zone:
//
//	r_n = sqrt(n*lambda*f + (n*lambda/2)^2)
//
// The first term is the paraxial zone-plate relation; the second corrects
// for the exact (non-paraxial) path-length difference. Ring indices start
// at 1.
func Radius(n int, wavelength, focalLength float64) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: ring index must be at least 1, got %d", ErrInvalidParameter, n)
	}
	if wavelength <= 0 {
		return 0, fmt.Errorf("%w: wavelength must be positive, got %g", ErrInvalidParameter, wavelength)
	}
	if focalLength <= 0 {
		return 0, fmt.Errorf("%w: focal length must be positive, got %g", ErrInvalidParameter, focalLength)
	}
	nf := float64(n)
	return math.Sqrt(nf*wavelength*focalLength + nf*nf*wavelength*wavelength/4.0), nil
}

// ZoneRadii returns the boundary radii (meters) of zones 1..RingCount.
// The sequence is strictly increasing.
func ZoneRadii(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	radii := make([]float64, p.RingCount)
	for n := 1; n <= p.RingCount; n++ {
		r, err := Radius(n, p.Wavelength, p.FocalLength)
		if err != nil {
			return nil, err
		}
		radii[n-1] = r
	}
	return radii, nil
}

// OuterDiameter returns twice the radius of the outermost zone boundary,
// in the same unit as the radii.
func OuterDiameter(radii []float64) float64 {
	if len(radii) == 0 {
		return 0
	}
	return 2.0 * radii[len(radii)-1]
}
