package haldclut

import "math"

// Transform maps a gamma-encoded sRGB color to a graded gamma-encoded color.
type Transform func(RGB) RGB

// GradeParams holds the knobs of a full-color grade. NeutralGrade returns
// the identity parameter set; presets are derived from it by changing only
// the knobs a stock needs.
type GradeParams struct {
	Saturation float64 // 1 = identity, 0 = grayscale, >1 = oversaturated
	Contrast   float64 // scale of deviation from the 18% gray pivot
	Gamma      float64 // power applied in linear light, 1 = identity
	Lift       float64 // additive offset, applied before gain
	Gain       float64 // multiplicative scale, 1 = identity
	Warmth     float64 // red/blue white-balance shift
	Cool       float64 // opposing blue/red shift
	ShadowTeal float64 // cyan/teal bias weighted into shadows
}

// NeutralGrade returns parameters that leave any color unchanged up to
// floating-point rounding.
func NeutralGrade() GradeParams {
	return GradeParams{Saturation: 1, Contrast: 1, Gamma: 1, Gain: 1}
}

// BWParams holds the knobs of a monochrome grade. Weights are the linear
// channel weights used to collapse color to a single tone; stocks may use
// panchromatic-style weights rather than BT.709.
type BWParams struct {
	Weights  [3]float64
	Contrast float64
	Gamma    float64
	WarmTone float64 // mild selenium/warm paper tone, 0 = strictly neutral
}

// GradeColor applies a full-color grade to a gamma-encoded sRGB color.
//
// The stage order is fixed: white balance, shadow teal, saturation,
// contrast, lift/gain, gamma. Out-of-range intermediate values are absorbed
// by clamping rather than reported; the function never fails for finite
// input.
func GradeColor(c RGB, p GradeParams) RGB {
	lr := srgbToLinear(c.R)
	lg := srgbToLinear(c.G)
	lb := srgbToLinear(c.B)
	lum := luma(lr, lg, lb)

	// White-balance style channel scaling.
	lr *= 1 + p.Warmth*0.12 - p.Cool*0.05
	lg *= 1 + p.Warmth*0.02 - p.Cool*0.01
	lb *= 1 - p.Warmth*0.10 + p.Cool*0.12

	// Cyan/teal bias in shadows for tungsten-style stocks. The weight
	// fades to zero above roughly 56% luma.
	sw := clamp01(1 - lum*1.8)
	lr -= p.ShadowTeal * 0.03 * sw
	lg += p.ShadowTeal * 0.01 * sw
	lb += p.ShadowTeal * 0.04 * sw

	// Saturation interpolates toward the luma of the shifted color.
	lum = luma(lr, lg, lb)
	lr = lum + (lr-lum)*p.Saturation
	lg = lum + (lg-lum)*p.Saturation
	lb = lum + (lb-lum)*p.Saturation

	lr = (lr-contrastPivot)*p.Contrast + contrastPivot
	lg = (lg-contrastPivot)*p.Contrast + contrastPivot
	lb = (lb-contrastPivot)*p.Contrast + contrastPivot

	lr = (lr + p.Lift) * p.Gain
	lg = (lg + p.Lift) * p.Gain
	lb = (lb + p.Lift) * p.Gain

	if math.Abs(p.Gamma-1) > 1e-6 {
		lr = math.Pow(math.Max(lr, 0), p.Gamma)
		lg = math.Pow(math.Max(lg, 0), p.Gamma)
		lb = math.Pow(math.Max(lb, 0), p.Gamma)
	}

	return RGB{
		R: clamp01(linearToSRGB(clamp01(lr))),
		G: clamp01(linearToSRGB(clamp01(lg))),
		B: clamp01(linearToSRGB(clamp01(lb))),
	}
}

// GradeBW applies a monochrome grade to a gamma-encoded sRGB color.
//
// The color is collapsed to a single weighted linear tone, contrast and
// gamma are applied, and the tone is re-expanded through three slightly
// different warm-tone multipliers. The multiplier coefficients are
// hand-tuned calibration constants. With WarmTone 0 the result is strictly
// neutral gray.
func GradeBW(c RGB, p BWParams) RGB {
	lr := srgbToLinear(c.R)
	lg := srgbToLinear(c.G)
	lb := srgbToLinear(c.B)
	lum := clamp01(lr*p.Weights[0] + lg*p.Weights[1] + lb*p.Weights[2])
	lum = clamp01((lum-contrastPivot)*p.Contrast + contrastPivot)
	lum = math.Pow(math.Max(lum, 0), p.Gamma)

	return RGB{
		R: clamp01(linearToSRGB(clamp01(lum * (1 + p.WarmTone*0.025)))),
		G: clamp01(linearToSRGB(clamp01(lum * (1 + p.WarmTone*0.008)))),
		B: clamp01(linearToSRGB(clamp01(lum * (1 - p.WarmTone*0.02)))),
	}
}
