package zoneplate

import "image"

// Mask is a square binary pixel grid. A value of 1 marks a transparent
// pixel, 0 an opaque one. The coordinate origin of the pattern is the
// geometric center pixel (Size/2, Size/2); x grows rightward and y grows
// downward, matching image.Gray.
type Mask struct {
	Size int     // Side length in pixels
	Pix  []uint8 // Row-major pixel values, 0 or 1
}

// NewMask returns an all-opaque mask of the given side length.
func NewMask(size int) *Mask {
	return &Mask{Size: size, Pix: make([]uint8, size*size)}
}

// Center returns the pixel index of the pattern center on either axis.
func (m *Mask) Center() int { return m.Size / 2 }

// At returns the pixel value at (x, y). Out-of-bounds coordinates read
// as opaque.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.Size || y < 0 || y >= m.Size {
		return 0
	}
	return m.Pix[y*m.Size+x]
}

func (m *Mask) setTransparent(x, y int) {
	if x < 0 || x >= m.Size || y < 0 || y >= m.Size {
		return
	}
	m.Pix[y*m.Size+x] = 1
}

// fillDisk marks transparent every pixel within radius r of (cx, cy),
// clipped to the mask bounds. Overlapping disks union idempotently since
// pixels are only ever set to 1.
func (m *Mask) fillDisk(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				m.setTransparent(cx+dx, cy+dy)
			}
		}
	}
}

// blackenBorder forces the outermost pixel rows and columns opaque, so the
// pattern never bleeds into the image edge.
func (m *Mask) blackenBorder() {
	if m.Size == 0 {
		return
	}
	last := m.Size - 1
	for i := 0; i < m.Size; i++ {
		m.Pix[i] = 0             // top row
		m.Pix[last*m.Size+i] = 0 // bottom row
		m.Pix[i*m.Size] = 0      // left column
		m.Pix[i*m.Size+last] = 0 // right column
	}
}

// TransparentCount returns the number of transparent pixels.
func (m *Mask) TransparentCount() int {
	count := 0
	for _, v := range m.Pix {
		if v != 0 {
			count++
		}
	}
	return count
}

// ToGray converts the mask to an 8-bit grayscale image with transparent
// pixels white (255) and opaque pixels black (0), suitable for PNG export.
func (m *Mask) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Size, m.Size))
	for y := 0; y < m.Size; y++ {
		row := y * img.Stride
		for x := 0; x < m.Size; x++ {
			if m.Pix[y*m.Size+x] != 0 {
				img.Pix[row+x] = 255
			}
		}
	}
	return img
}
