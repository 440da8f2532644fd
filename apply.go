package haldclut

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
)

// ApplyOptions controls Hald CLUT application.
type ApplyOptions struct {
	// MaxWidth downscales the source to at most this width (keeping aspect
	// ratio) before grading. 0 keeps the original size.
	MaxWidth int
}

// Apply grades src through a Hald CLUT image using trilinear interpolation
// over the color cube. The CLUT side length must be a Hald level cubed.
// Source alpha is preserved.
func Apply(clut, src image.Image, opts ...func(o *ApplyOptions)) (*image.NRGBA, error) {
	level, err := clutLevel(clut)
	if err != nil {
		return nil, fmt.Errorf("hald clut: %w", err)
	}

	opt := ApplyOptions{}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.MaxWidth > 0 && src.Bounds().Dx() > opt.MaxWidth {
		src = resize.Resize(uint(opt.MaxWidth), 0, src, resize.Lanczos3)
	}

	table := haldTable{size: level * level, pix: toNRGBA(clut).Pix}
	in := toNRGBA(src)
	w, h := in.Rect.Dx(), in.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	parallelFor(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				i := y*in.Stride + x*4
				c := table.lookup(RGB{
					R: float64(in.Pix[i]) / 255,
					G: float64(in.Pix[i+1]) / 255,
					B: float64(in.Pix[i+2]) / 255,
				})
				o := y*out.Stride + x*4
				out.Pix[o+0] = quantize8(c.R)
				out.Pix[o+1] = quantize8(c.G)
				out.Pix[o+2] = quantize8(c.B)
				out.Pix[o+3] = in.Pix[i+3]
			}
		}
	})
	return out, nil
}

// clutLevel derives the Hald level from the CLUT image dimensions.
func clutLevel(img image.Image) (int, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w != h {
		return 0, fmt.Errorf("image is %dx%d, want square", w, h)
	}
	level := int(math.Round(math.Cbrt(float64(w))))
	if level < 2 || level*level*level != w {
		return 0, fmt.Errorf("side %d is not a hald level cubed", w)
	}
	return level, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

// haldTable is a flat RGBA Hald CLUT indexed by cube coordinates. The image
// row-major order and the cube flat-index order coincide, so cell
// (r, g, b) lives at (r + g*size + b*size²)*4.
type haldTable struct {
	size int
	pix  []byte
}

func (t haldTable) at(r, g, b int) RGB {
	i := (r + g*t.size + b*t.size*t.size) * 4
	return RGB{
		R: float64(t.pix[i]) / 255,
		G: float64(t.pix[i+1]) / 255,
		B: float64(t.pix[i+2]) / 255,
	}
}

// lookup interpolates the cube trilinearly at an encoded color.
func (t haldTable) lookup(c RGB) RGB {
	max := float64(t.size - 1)
	fr := clamp01(c.R) * max
	fg := clamp01(c.G) * max
	fb := clamp01(c.B) * max
	r0, g0, b0 := int(fr), int(fg), int(fb)
	r1, g1, b1 := r0+1, g0+1, b0+1
	if r1 > t.size-1 {
		r1 = t.size - 1
	}
	if g1 > t.size-1 {
		g1 = t.size - 1
	}
	if b1 > t.size-1 {
		b1 = t.size - 1
	}
	dr, dg, db := fr-float64(r0), fg-float64(g0), fb-float64(b0)

	c00 := lerpRGB(t.at(r0, g0, b0), t.at(r1, g0, b0), dr)
	c10 := lerpRGB(t.at(r0, g1, b0), t.at(r1, g1, b0), dr)
	c01 := lerpRGB(t.at(r0, g0, b1), t.at(r1, g0, b1), dr)
	c11 := lerpRGB(t.at(r0, g1, b1), t.at(r1, g1, b1), dr)
	c0 := lerpRGB(c00, c10, dg)
	c1 := lerpRGB(c01, c11, dg)
	return lerpRGB(c0, c1, db)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}
