package main

import "fmt"

// ConvertUnits converts a length value tagged with one of the accepted
// unit strings (m, cm, mm, um, nm) to meters.
func ConvertUnits(value float64, unit string) (float64, error) {
	switch unit {
	case "m":
		return value, nil
	case "cm":
		return value / 100, nil
	case "mm":
		return value / 1000, nil
	case "um":
		return value / 1e6, nil
	case "nm":
		return value / 1e9, nil
	default:
		return 0, fmt.Errorf("unknown unit: %q", unit)
	}
}

// FormatDiameter renders a diameter given in meters with an automatically
// chosen unit, e.g. 0.0123 -> "1.23cm".
func FormatDiameter(diameterM float64) string {
	switch {
	case diameterM >= 1:
		return fmt.Sprintf("%.2fm", diameterM)
	case diameterM >= 1e-2:
		return fmt.Sprintf("%.2fcm", diameterM*1e2)
	case diameterM >= 1e-3:
		return fmt.Sprintf("%.2fmm", diameterM*1e3)
	case diameterM >= 1e-6:
		return fmt.Sprintf("%.2fµm", diameterM*1e6)
	case diameterM >= 1e-9:
		return fmt.Sprintf("%.2fnm", diameterM*1e9)
	default:
		return fmt.Sprintf("%.2fpm", diameterM*1e12)
	}
}
