package haldclut

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Stock identifies a built-in film stock emulation.
type Stock string

const (
	Portra400     Stock = "portra400"
	Ektar100      Stock = "ektar100"
	Gold200       Stock = "gold200"
	CineStill800T Stock = "cinestill800t"
	Provia100F    Stock = "provia100f"
	Velvia50      Stock = "velvia50"
	TriX400       Stock = "trix400"
	HP5Plus       Stock = "hp5plus"
)

// stockPreset pairs a parameter record with an optional post-process stage
// applied to the encoded result of the common pipeline. Exactly one of
// grade/bw is set.
type stockPreset struct {
	grade *GradeParams
	bw    *BWParams
	post  func(RGB) RGB
}

var stockPresets = map[Stock]stockPreset{
	Portra400: {grade: &GradeParams{
		Saturation: 0.93, Contrast: 0.95, Gamma: 0.98,
		Lift: 0.010, Gain: 1.0, Warmth: 0.22,
	}},
	Ektar100: {grade: &GradeParams{
		Saturation: 1.26, Contrast: 1.12, Gamma: 1.02,
		Gain: 1.01, Warmth: 0.10,
	}},
	Gold200: {grade: &GradeParams{
		Saturation: 1.05, Contrast: 0.98, Gamma: 0.99,
		Lift: 0.014, Gain: 1.0, Warmth: 0.28,
	}},
	CineStill800T: {
		grade: &GradeParams{
			Saturation: 1.08, Contrast: 1.05, Gamma: 1.01,
			Lift: 0.006, Gain: 1.0, Cool: 0.24, ShadowTeal: 0.55,
		},
		post: warmHighlights,
	},
	Provia100F: {grade: &GradeParams{
		Saturation: 1.05, Contrast: 1.08, Gamma: 1.01,
		Gain: 1.0, Cool: 0.05,
	}},
	Velvia50: {grade: &GradeParams{
		Saturation: 1.36, Contrast: 1.18, Gamma: 1.04,
		Lift: -0.004, Gain: 1.02, Cool: 0.02,
	}},
	TriX400: {bw: &BWParams{
		Weights:  [3]float64{0.32, 0.56, 0.12},
		Contrast: 1.20, Gamma: 1.02, WarmTone: 0.06,
	}},
	HP5Plus: {bw: &BWParams{
		Weights:  [3]float64{0.28, 0.62, 0.10},
		Contrast: 1.08, Gamma: 0.99, WarmTone: 0.02,
	}},
}

// Stocks returns the known stock identifiers in sorted order.
func Stocks() []Stock {
	names := maps.Keys(stockPresets)
	slices.Sort(names)
	return names
}

// Transform returns the stock's color transform, or false for an unknown
// stock.
func (s Stock) Transform() (Transform, bool) {
	p, ok := stockPresets[s]
	if !ok {
		return nil, false
	}
	return p.transform(), true
}

func (p stockPreset) transform() Transform {
	return func(c RGB) RGB {
		switch {
		case p.grade != nil:
			c = GradeColor(c, *p.grade)
		case p.bw != nil:
			c = GradeBW(c, *p.bw)
		}
		if p.post != nil {
			c = p.post(c)
		}
		return c
	}
}

// warmHighlights shifts bright encoded values toward red, the highlight
// halation look layered on top of CineStill 800T's cool base grade.
func warmHighlights(c RGB) RGB {
	y := (c.R + c.G + c.B) / 3
	h := clamp01((y - 0.55) * 2)
	return RGB{
		R: clamp01(c.R + h*0.020),
		G: clamp01(c.G + h*0.004),
		B: clamp01(c.B - h*0.016),
	}
}
