package main

import (
	"flag"
	"fmt"
)

const version = "1_0_0"

// Options holds all CLI flags and arguments.
type Options struct {
	Wavelength      float64
	WavelengthUnit  string
	FocalLength     float64
	FocalLengthUnit string
	NumRings        int

	Generate   string // combination of 'f', 'p', 'r'
	Resolution int    // 0 = automatic sizing from the minimum ring thickness

	Display bool
	Save    bool

	ParamFile string
	Version   bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: generate Fresnel Zone Plate and Photon Sieve mask images
for a given wavelength, focal length and number of rings.

Version: %s

Usage of %s:
`, name, version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Physical parameters
	fs.Float64Var(&opt.Wavelength, "w", 0, "wavelength value (shorthand) [*]")
	fs.Float64Var(&opt.Wavelength, "wavelength", 0, "wavelength value [*]")
	fs.StringVar(&opt.WavelengthUnit, "wu", "", "wavelength unit: m | cm | mm | um | nm (shorthand) [*]")
	fs.StringVar(&opt.WavelengthUnit, "wavelength-unit", "", "wavelength unit: m | cm | mm | um | nm [*]")
	fs.Float64Var(&opt.FocalLength, "f", 0, "focal length value (shorthand) [*]")
	fs.Float64Var(&opt.FocalLength, "focal-length", 0, "focal length value [*]")
	fs.StringVar(&opt.FocalLengthUnit, "fu", "", "focal length unit: m | cm | mm | um | nm (shorthand) [*]")
	fs.StringVar(&opt.FocalLengthUnit, "focal-length-unit", "", "focal length unit: m | cm | mm | um | nm [*]")
	fs.IntVar(&opt.NumRings, "n", 0, "number of rings to generate (values between 10 and 1000 are recommended) [*]")
	fs.IntVar(&opt.NumRings, "num-rings", 0, "number of rings to generate [*]")

	// Generation
	fs.StringVar(&opt.Generate, "g", "", "what to generate: f = Fresnel, p = photon sieve, r = random photon sieve (combine letters, e.g. -g fp) [*]")
	fs.StringVar(&opt.Generate, "generate", "", "what to generate: f | p | r, letters combine [*]")
	fs.IntVar(&opt.Resolution, "r", 0, "image resolution hint in pixels (0 = automatic sizing) [0]")
	fs.IntVar(&opt.Resolution, "resolution", 0, "image resolution hint in pixels (0 = automatic sizing) [0]")

	// Output
	fs.BoolVar(&opt.Display, "d", false, "display the generated images in windows [false]")
	fs.BoolVar(&opt.Display, "display", false, "display the generated images in windows [false]")
	fs.BoolVar(&opt.Save, "s", false, "save the generated images as PNG files in the current directory [false]")
	fs.BoolVar(&opt.Save, "save", false, "save the generated images as PNG files in the current directory [false]")

	fs.StringVar(&opt.ParamFile, "p", "", "JSON5 parameter file (flags on the command line take precedence) [\"\"]")
	fs.StringVar(&opt.ParamFile, "params", "", "JSON5 parameter file [\"\"]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	return opt, nil
}

// ValidateOptions checks that the merged flag/parameter-file options form a
// complete generation request.
func ValidateOptions(opt Options) error {
	if opt.Wavelength <= 0 {
		return fmt.Errorf("a positive wavelength is required (-w)")
	}
	if opt.WavelengthUnit == "" {
		return fmt.Errorf("a wavelength unit is required (-wu)")
	}
	if opt.FocalLength <= 0 {
		return fmt.Errorf("a positive focal length is required (-f)")
	}
	if opt.FocalLengthUnit == "" {
		return fmt.Errorf("a focal length unit is required (-fu)")
	}
	if opt.NumRings < 1 {
		return fmt.Errorf("the number of rings must be at least 1 (-n)")
	}
	if opt.Generate == "" {
		return fmt.Errorf("a generation selector is required (-g)")
	}
	return nil
}
