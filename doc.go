// Package haldclut generates film-stock style color grading LUTs as Hald
// CLUT PNG images.
//
// Each built-in stock is a parametrized grade (saturation, contrast, gamma,
// lift/gain, white balance, shadow tint) applied in linear light. The package
// samples the full color cube through a stock's transform, lays the cube out
// as a square image and serializes it with a minimal self-contained PNG
// writer. LUTs can also be exported in the Adobe/Resolve .cube text format,
// and existing Hald CLUT images can be applied to photos with trilinear
// interpolation.
package haldclut
