package haldclut

import (
	"errors"
	"fmt"
	"math"
)

// LUT is a sampled Hald CLUT: a size³ color cube (size = level²) laid out
// row-major in a square RGBA image of side level³.
type LUT struct {
	Level int
	Width int    // width == height == level³
	Pix   []byte // RGBA, 4 bytes per pixel, alpha always 0xFF
}

// SampleCube runs every cell of the color cube through transform and
// returns the resulting Hald CLUT image buffer.
//
// Cells are enumerated in the canonical Hald order, red fastest: cell i has
// cube coordinates (i mod size, i/size mod size, i/size²), each normalized
// by size-1. Because the image side is level·size, writing cell i at pixel
// (i mod width, i/width) tiles the cube into the square exactly, so the
// buffer offset collapses to i*4. Cells are independent and the index range
// is partitioned across workers.
func SampleCube(transform Transform, level int) (*LUT, error) {
	if transform == nil {
		return nil, errors.New("transform is nil")
	}
	if level < 2 {
		return nil, fmt.Errorf("hald level %d out of range, need at least 2", level)
	}
	size := level * level
	width := level * size
	total := size * size * size
	pix := make([]byte, width*width*4)
	denom := float64(size - 1)

	parallelFor(total, func(start, end int) {
		for i := start; i < end; i++ {
			out := transform(RGB{
				R: float64(i%size) / denom,
				G: float64(i/size%size) / denom,
				B: float64(i/(size*size)) / denom,
			})
			off := i * 4
			pix[off+0] = quantize8(out.R)
			pix[off+1] = quantize8(out.G)
			pix[off+2] = quantize8(out.B)
			pix[off+3] = 0xFF
		}
	})
	return &LUT{Level: level, Width: width, Pix: pix}, nil
}

// EncodePNG serializes the LUT with the package's PNG writer.
func (l *LUT) EncodePNG() ([]byte, error) {
	return EncodePNG(l.Pix, l.Width, l.Width)
}

func quantize8(v float64) byte {
	return byte(math.Round(clamp01(v) * 255))
}

// GenerateOptions controls stock LUT generation.
type GenerateOptions struct {
	Level int // Hald level; the image side is level³ pixels
}

// GenerateStock samples the named stock's transform over the color cube and
// encodes the result as a Hald CLUT PNG.
func GenerateStock(stock Stock, opts ...func(o *GenerateOptions)) ([]byte, error) {
	transform, ok := stock.Transform()
	if !ok {
		return nil, fmt.Errorf("unknown stock %q", stock)
	}

	opt := GenerateOptions{Level: DefaultLevel}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	lut, err := SampleCube(transform, opt.Level)
	if err != nil {
		return nil, fmt.Errorf("sample cube: %w", err)
	}
	data, err := lut.EncodePNG()
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return data, nil
}
