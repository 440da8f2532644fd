package haldclut

import "math"

// RGB is an ordered triple of channel values. Whether the values are
// gamma-encoded sRGB or linear light depends on context; every function in
// this package documents which representation it expects.
type RGB struct {
	R, G, B float64
}

// srgbToLinear converts a gamma-encoded sRGB channel to linear light.
// The input is clamped to [0,1] first, so out-of-range values cannot feed a
// fractional power with a negative base.
func srgbToLinear(v float64) float64 {
	v = clamp01(v)
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a linear-light channel to gamma-encoded sRGB,
// clamping the input to [0,1] first.
func linearToSRGB(v float64) float64 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// luma returns the BT.709 luminance of a linear-light triple.
func luma(r, g, b float64) float64 {
	return r*lumaR + g*lumaG + b*lumaB
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
