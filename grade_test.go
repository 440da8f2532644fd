package haldclut

import (
	"math"
	"testing"
)

func TestGradeColorIdentity(t *testing.T) {
	p := NeutralGrade()
	const steps = 32
	for ri := 0; ri <= steps; ri++ {
		for gi := 0; gi <= steps; gi++ {
			for bi := 0; bi <= steps; bi++ {
				c := RGB{
					R: float64(ri) / steps,
					G: float64(gi) / steps,
					B: float64(bi) / steps,
				}
				got := GradeColor(c, p)
				if math.Abs(got.R-c.R) > 1e-3 || math.Abs(got.G-c.G) > 1e-3 || math.Abs(got.B-c.B) > 1e-3 {
					t.Fatalf("neutral grade %v = %v", c, got)
				}
			}
		}
	}
}

func TestGradeColorClampTotality(t *testing.T) {
	inputs := []RGB{
		{R: 5.0, G: -3.0, B: 1e9},
		{R: -1e9, G: 1e9, B: 0.5},
		{R: math.SmallestNonzeroFloat64, G: -math.SmallestNonzeroFloat64, B: 1e300},
	}
	params := []GradeParams{
		NeutralGrade(),
		{Saturation: -2, Contrast: 5, Gamma: 0.3, Lift: -0.5, Gain: 3, Warmth: 1, Cool: 1, ShadowTeal: 1},
		{Saturation: 1.5, Contrast: 0.5, Gamma: 2.2, Lift: 0.2, Gain: 0.1},
	}
	for _, c := range inputs {
		for _, p := range params {
			got := GradeColor(c, p)
			for _, v := range []float64{got.R, got.G, got.B} {
				if v < 0 || v > 1 || math.IsNaN(v) {
					t.Fatalf("GradeColor(%v, %+v) = %v, want components in [0,1]", c, p, got)
				}
			}
		}
	}
}

func TestGradeBWClampTotality(t *testing.T) {
	p := BWParams{Weights: [3]float64{0.32, 0.56, 0.12}, Contrast: 3, Gamma: 0.4, WarmTone: 2}
	for _, c := range []RGB{{R: 5, G: -3, B: 1e9}, {R: -1, G: -1, B: -1}} {
		got := GradeBW(c, p)
		for _, v := range []float64{got.R, got.G, got.B} {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("GradeBW(%v) = %v, want components in [0,1]", c, got)
			}
		}
	}
}

func TestGradeBWNeutralTone(t *testing.T) {
	p := BWParams{Weights: [3]float64{0.28, 0.62, 0.10}, Contrast: 1.08, Gamma: 0.99}
	for _, c := range []RGB{{}, {R: 0.2, G: 0.5, B: 0.9}, {R: 1, G: 1, B: 1}, {R: 0.7, G: 0.1, B: 0.3}} {
		got := GradeBW(c, p)
		if got.R != got.G || got.G != got.B {
			t.Fatalf("GradeBW(%v) with zero warm tone = %v, want R=G=B", c, got)
		}
	}
}

func TestGradeBWWarmTone(t *testing.T) {
	p := BWParams{Weights: [3]float64{0.32, 0.56, 0.12}, Contrast: 1.2, Gamma: 1.02, WarmTone: 0.06}
	got := GradeBW(RGB{R: 0.5, G: 0.5, B: 0.5}, p)
	if !(got.R > got.B) {
		t.Errorf("warm tone should tilt red over blue, got %v", got)
	}
}

func TestGradeColorShadowTealFadesInHighlights(t *testing.T) {
	p := NeutralGrade()
	p.ShadowTeal = 0.8

	// Bright input: shadow weight is zero, the grade degenerates to identity.
	bright := RGB{R: 0.9, G: 0.9, B: 0.9}
	got := GradeColor(bright, p)
	want := GradeColor(bright, NeutralGrade())
	if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.B-want.B) > 1e-9 {
		t.Errorf("shadow teal leaked into highlights: %v vs %v", got, want)
	}

	// Dark input: blue gains, red loses.
	dark := RGB{R: 0.15, G: 0.15, B: 0.15}
	got = GradeColor(dark, p)
	want = GradeColor(dark, NeutralGrade())
	if !(got.B > want.B) || !(got.R < want.R) {
		t.Errorf("shadow teal missing in shadows: %v vs %v", got, want)
	}
}

func TestGradeColorWarmth(t *testing.T) {
	p := NeutralGrade()
	p.Warmth = 0.3
	got := GradeColor(RGB{R: 0.5, G: 0.5, B: 0.5}, p)
	if !(got.R > got.B) {
		t.Errorf("warmth should tilt red over blue, got %v", got)
	}
}

func TestGradeColorSaturation(t *testing.T) {
	c := RGB{R: 0.8, G: 0.3, B: 0.2}

	p := NeutralGrade()
	p.Saturation = 0
	gray := GradeColor(c, p)
	if math.Abs(gray.R-gray.G) > 1e-6 || math.Abs(gray.G-gray.B) > 1e-6 {
		t.Errorf("zero saturation should desaturate fully, got %v", gray)
	}

	p.Saturation = 1.5
	vivid := GradeColor(c, p)
	base := GradeColor(c, NeutralGrade())
	if !(vivid.R-vivid.B > base.R-base.B) {
		t.Errorf("oversaturation should widen channel spread: %v vs %v", vivid, base)
	}
}

func TestGradeColorContrastPivot(t *testing.T) {
	// The encoded value of linear 0.18 is the fixed point of contrast.
	mid := linearToSRGB(contrastPivot)
	c := RGB{R: mid, G: mid, B: mid}
	p := NeutralGrade()
	p.Contrast = 1.5
	got := GradeColor(c, p)
	if math.Abs(got.R-mid) > 1e-3 {
		t.Errorf("contrast moved the pivot: %v -> %v", mid, got.R)
	}

	dark := GradeColor(RGB{R: 0.2, G: 0.2, B: 0.2}, p)
	darkBase := GradeColor(RGB{R: 0.2, G: 0.2, B: 0.2}, NeutralGrade())
	if !(dark.R < darkBase.R) {
		t.Errorf("contrast should push below-pivot values down: %v vs %v", dark, darkBase)
	}
}
