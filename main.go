package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/photonworks/fresnelier/zoneplate"
)

func main() {

	programStart := time.Now()

	fs := NewFlagSet("fresnelier")
	opt, err := ParseArgs(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if opt.Version {
		fmt.Printf("fresnelier version %s\n", version)
		os.Exit(0)
	}

	// A JSON5 parameter file fills in anything the command line left unset.
	if opt.ParamFile != "" {
		msg, ok := mergeParameterFile(opt.ParamFile, &opt)
		if !ok {
			fmt.Printf("\n\t%s\n", msg)
			os.Exit(3)
		}
	}

	if err := ValidateOptions(opt); err != nil {
		fmt.Printf("\n\t%v\n\n", err)
		fs.Usage()
		os.Exit(4)
	}

	if !opt.Display && !opt.Save {
		fmt.Println("Warning: output is neither displayed nor saved.")
	}

	wavelength, err := ConvertUnits(opt.Wavelength, opt.WavelengthUnit)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tBad wavelength unit: %w", err))
		os.Exit(5)
	}

	focalLength, err := ConvertUnits(opt.FocalLength, opt.FocalLengthUnit)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tBad focal length unit: %w", err))
		os.Exit(6)
	}

	modes, err := zoneplate.ParseModes(opt.Generate)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tBad generation selector %q: %w", opt.Generate, err))
		os.Exit(7)
	}

	params := zoneplate.Params{
		Wavelength:  wavelength,
		FocalLength: focalLength,
		RingCount:   opt.NumRings,
	}
	if err := params.Validate(); err != nil {
		fmt.Println(fmt.Errorf("\n\tBad physical parameters: %w", err))
		os.Exit(8)
	}

	fmt.Printf("\nVersion %s\n\n", version)

	// Report per-ring progress, roughly ten lines per generation.
	progressStep := opt.NumRings / 10
	if progressStep < 1 {
		progressStep = 1
	}
	rz := &zoneplate.Rasterizer{
		Progress: func(ring int) {
			if ring%progressStep == 0 || ring == opt.NumRings {
				fmt.Printf("  completed ring %d of %d\n", ring, opt.NumRings)
			}
		},
	}

	var generated []displayItem
	failures := 0

	for _, mode := range modes {
		title := titleForMode(mode)
		fmt.Printf("Generating %s...\n", title)

		start := time.Now()
		result, err := rz.Generate(params, mode, opt.Resolution)
		if err != nil {
			fmt.Println(fmt.Errorf("generation of the %s failed: %w", title, err))
			failures++
			continue
		}
		elapsed := time.Since(start)
		fmt.Printf("Generation of the %s (%d x %d pixels) took %s\n",
			title, result.Mask.Size, result.Mask.Size, elapsed)

		if opt.Save {
			filename := maskFileName(mode.String(), opt)
			fmt.Printf("Saving %s as %q\n", title, filename)
			if err := SaveGrayPNG(filename, result.Mask.ToGray()); err != nil {
				fmt.Println(fmt.Errorf("writing of %q failed: %w", filename, err))
				os.Exit(9)
			}

			profileName := strings.TrimSuffix(filename, ".png") + "_profile.png"
			if err := SaveProfilePlot(profileName, result.Mask, result.OuterDiameter, title); err != nil {
				fmt.Println(fmt.Errorf("writing of %q failed: %w", profileName, err))
				os.Exit(10)
			}
		}

		generated = append(generated, displayItem{
			Title:         title,
			Mask:          result.Mask,
			OuterDiameter: result.OuterDiameter,
		})
	}

	// The outer-ring diameter depends only on the physical parameters, so
	// it is reported even when a rasterization failed.
	outerRadius, err := zoneplate.Radius(opt.NumRings, wavelength, focalLength)
	if err != nil {
		fmt.Println(fmt.Errorf("computation of the outer radius failed: %w", err))
		os.Exit(11)
	}
	fmt.Printf("\nLens diameter %s\n", FormatDiameter(2.0*outerRadius))

	elapsed := time.Since(programStart)
	fmt.Printf("\nTotal program run time is %s\n", elapsed)

	if opt.Display && len(generated) > 0 {
		showMasks(generated)
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func titleForMode(mode zoneplate.Mode) string {
	switch mode {
	case zoneplate.ModeFresnel:
		return "Fresnel Zone Plate"
	case zoneplate.ModePhotonSieve:
		return "Photon Sieve"
	case zoneplate.ModeRandomPhotonSieve:
		return "Random Photon Sieve"
	default:
		return mode.String()
	}
}
