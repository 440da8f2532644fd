package haldclut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// CubeOptions controls .cube export.
type CubeOptions struct {
	Size  int // lattice points per axis
	Title string
}

// WriteCube writes the transform as an Adobe/Resolve .cube 3D LUT with unit
// domain. Rows are emitted red fastest, as the format requires.
func WriteCube(w io.Writer, transform Transform, opts ...func(o *CubeOptions)) error {
	if transform == nil {
		return errors.New("transform is nil")
	}

	opt := CubeOptions{Size: defaultCubeSize, Title: defaultCubeTitle}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Size < 2 {
		return fmt.Errorf("cube size %d out of range, need at least 2", opt.Size)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "TITLE %q\n", opt.Title)
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", opt.Size)
	fmt.Fprintln(bw, "DOMAIN_MIN 0.0 0.0 0.0")
	fmt.Fprintln(bw, "DOMAIN_MAX 1.0 1.0 1.0")

	denom := float64(opt.Size - 1)
	for b := 0; b < opt.Size; b++ {
		for g := 0; g < opt.Size; g++ {
			for r := 0; r < opt.Size; r++ {
				c := transform(RGB{
					R: float64(r) / denom,
					G: float64(g) / denom,
					B: float64(b) / denom,
				})
				fmt.Fprintf(bw, "%.6f %.6f %.6f\n", c.R, c.G, c.B)
			}
		}
	}
	return bw.Flush()
}
