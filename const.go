package haldclut

const (
	// DefaultLevel is the Hald level used for the built-in stock LUTs.
	// The cube side is level² and the image side is level³ pixels,
	// so level 8 produces a 512x512 PNG.
	DefaultLevel = 8

	// contrastPivot is the linear intensity contrast scaling is centered
	// on, matching the 18% gray card convention.
	contrastPivot = 0.18
)

// BT.709 luminance weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

const (
	defaultCubeSize  = 33
	defaultCubeTitle = "haldclut"
)
