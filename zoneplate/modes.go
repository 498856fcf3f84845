package zoneplate

import "fmt"

// Mode selects which mask variant to generate.
type Mode int

const (
	ModeFresnel Mode = iota
	ModePhotonSieve
	ModeRandomPhotonSieve
)

// String returns the file-friendly name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFresnel:
		return "fresnel_zone_plate"
	case ModePhotonSieve:
		return "photon_sieve"
	case ModeRandomPhotonSieve:
		return "random_photon_sieve"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseModes interprets a generation selector string: 'f' for the Fresnel
// zone plate, 'p' for the photon sieve, 'r' for the randomized photon
// sieve. Letters combine, so "fp" requests both the Fresnel and photon
// sieve masks. Duplicate letters are ignored; an unrecognized letter is an
// invalid parameter.
func ParseModes(selector string) ([]Mode, error) {
	if selector == "" {
		return nil, fmt.Errorf("%w: empty generation selector", ErrInvalidParameter)
	}
	seen := make(map[Mode]bool)
	var modes []Mode
	for _, c := range selector {
		var m Mode
		switch c {
		case 'f':
			m = ModeFresnel
		case 'p':
			m = ModePhotonSieve
		case 'r':
			m = ModeRandomPhotonSieve
		default:
			return nil, fmt.Errorf("%w: unknown generation token %q (want f, p, or r)", ErrInvalidParameter, string(c))
		}
		if !seen[m] {
			seen[m] = true
			modes = append(modes, m)
		}
	}
	return modes, nil
}

// Result is the outcome of one mask generation: the rasterized mask and
// the physical diameter of the outermost zone boundary, in the same unit
// the caller supplied (meters).
type Result struct {
	Mask          *Mask
	OuterDiameter float64
}

// Generate computes the zone radii for the given parameters and
// rasterizes the mask for one mode. A resolution of 0 selects the
// automatic grid size. Parameters are validated before any pixel work
// begins; a failed generation yields no mask.
func (rz *Rasterizer) Generate(p Params, mode Mode, resolution int) (*Result, error) {
	radii, err := ZoneRadii(p)
	if err != nil {
		return nil, err
	}

	var mask *Mask
	switch mode {
	case ModeFresnel:
		mask, err = rz.Fresnel(radii, resolution)
	case ModePhotonSieve:
		mask, err = rz.PhotonSieve(radii, resolution, false)
	case ModeRandomPhotonSieve:
		mask, err = rz.PhotonSieve(radii, resolution, true)
	default:
		return nil, fmt.Errorf("%w: unknown generation mode %d", ErrInvalidParameter, int(mode))
	}
	if err != nil {
		return nil, err
	}

	return &Result{Mask: mask, OuterDiameter: OuterDiameter(radii)}, nil
}
