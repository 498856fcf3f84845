package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SaveGrayPNG writes an 8-bit grayscale image to a PNG file.
func SaveGrayPNG(filename string, img *image.Gray) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// maskFileName builds the output file name for one generated mask, e.g.
// photon_sieve_f1mm_w980nm_n100.png, encoding the generation parameters
// the mask was computed from.
func maskFileName(kind string, opt Options) string {
	return fmt.Sprintf("%s_f%g%s_w%g%s_n%d.png",
		kind, opt.FocalLength, opt.FocalLengthUnit, opt.Wavelength, opt.WavelengthUnit, opt.NumRings)
}
