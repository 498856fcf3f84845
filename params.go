package main

import (
	"os"

	json "github.com/KevinWang15/go-json5"
)

func getLeafValue(jsonTable map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = jsonTable
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// validateJsonFileAndFillOptions copies recognized fields from the parsed
// parameter file into opt. Fields already set on the command line keep
// their flag values. Returns a problem description and false on the first
// badly typed field.
func validateJsonFileAndFillOptions(jsonTable map[string]interface{}, opt *Options) (string, bool) {
	msg := "No problem found in json file" // Initialize msg to presumed success.

	wavelength, ok := getLeafValue(jsonTable, "wavelength")
	if ok && opt.Wavelength == 0 {
		w, ok := wavelength.(float64)
		if !ok {
			return "wavelength: is not a float64", false
		}
		opt.Wavelength = w
	}

	wavelengthUnit, ok := getLeafValue(jsonTable, "wavelength_unit")
	if ok && opt.WavelengthUnit == "" {
		u, ok := wavelengthUnit.(string)
		if !ok {
			return "wavelength_unit: is not a string", false
		}
		opt.WavelengthUnit = u
	}

	focalLength, ok := getLeafValue(jsonTable, "focal_length")
	if ok && opt.FocalLength == 0 {
		f, ok := focalLength.(float64)
		if !ok {
			return "focal_length: is not a float64", false
		}
		opt.FocalLength = f
	}

	focalLengthUnit, ok := getLeafValue(jsonTable, "focal_length_unit")
	if ok && opt.FocalLengthUnit == "" {
		u, ok := focalLengthUnit.(string)
		if !ok {
			return "focal_length_unit: is not a string", false
		}
		opt.FocalLengthUnit = u
	}

	numRings, ok := getLeafValue(jsonTable, "num_rings")
	if ok && opt.NumRings == 0 {
		n, ok := numRings.(float64)
		if !ok {
			return "num_rings: is not a number", false
		}
		opt.NumRings = int(n)
	}

	generate, ok := getLeafValue(jsonTable, "generate")
	if ok && opt.Generate == "" {
		g, ok := generate.(string)
		if !ok {
			return "generate: is not a string", false
		}
		opt.Generate = g
	}

	resolution, ok := getLeafValue(jsonTable, "resolution")
	if ok && opt.Resolution == 0 {
		r, ok := resolution.(float64)
		if !ok {
			return "resolution: is not a number", false
		}
		opt.Resolution = int(r)
	}

	display, ok := getLeafValue(jsonTable, "display_bool")
	if ok && !opt.Display {
		d, ok := display.(bool)
		if !ok {
			return "display_bool: is not a bool", false
		}
		opt.Display = d
	}

	save, ok := getLeafValue(jsonTable, "save_bool")
	if ok && !opt.Save {
		s, ok := save.(bool)
		if !ok {
			return "save_bool: is not a bool", false
		}
		opt.Save = s
	}

	return msg, true
}

// mergeParameterFile reads a JSON5 (or plain JSON) parameter file and fills
// any options the command line left unset.
func mergeParameterFile(path string, opt *Options) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "could not read parameter file: " + err.Error(), false
	}

	var jsonTable map[string]interface{}
	if err := json.Unmarshal(data, &jsonTable); err != nil {
		return "format error in parameter file: " + err.Error(), false
	}

	return validateJsonFileAndFillOptions(jsonTable, opt)
}
