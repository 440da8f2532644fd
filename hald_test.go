package haldclut

import (
	"bytes"
	"testing"
)

func identity(c RGB) RGB { return c }

func TestSampleCubeDimensions(t *testing.T) {
	lut, err := SampleCube(identity, 2)
	if err != nil {
		t.Fatalf("sample cube: %v", err)
	}
	if lut.Width != 8 {
		t.Fatalf("width = %d, want 8", lut.Width)
	}
	if len(lut.Pix) != 8*8*4 {
		t.Fatalf("buffer = %d bytes, want %d", len(lut.Pix), 8*8*4)
	}
	for i := 3; i < len(lut.Pix); i += 4 {
		if lut.Pix[i] != 0xFF {
			t.Fatalf("alpha at pixel %d = %d, want 255", i/4, lut.Pix[i])
		}
	}
}

func TestSampleCubeOrdering(t *testing.T) {
	// At level 2 (size 4) index 5 decodes to cube cell (1, 1, 0):
	// 5 = 1 + 1*4 + 0*16. With the identity transform that cell holds
	// (1/3, 1/3, 0), which quantizes to (85, 85, 0).
	lut, err := SampleCube(identity, 2)
	if err != nil {
		t.Fatalf("sample cube: %v", err)
	}
	off := 5 * 4
	got := [4]byte{lut.Pix[off], lut.Pix[off+1], lut.Pix[off+2], lut.Pix[off+3]}
	want := [4]byte{85, 85, 0, 255}
	if got != want {
		t.Fatalf("pixel 5 = %v, want %v", got, want)
	}
}

func TestSampleCubeBijection(t *testing.T) {
	// Every cube cell maps to a distinct pixel and all 64 pixels of the
	// level-2 image are covered.
	const size, width = 4, 8
	seen := make(map[int]bool, 64)
	for idx := 0; idx < size*size*size; idx++ {
		x := idx % width
		y := idx / width
		if x < 0 || x >= width || y < 0 || y >= width {
			t.Fatalf("index %d maps outside the image: (%d, %d)", idx, x, y)
		}
		pos := y*width + x
		if seen[pos] {
			t.Fatalf("pixel (%d, %d) written twice", x, y)
		}
		seen[pos] = true
	}
	if len(seen) != 64 {
		t.Fatalf("covered %d pixels, want 64", len(seen))
	}
}

func TestSampleCubeMatchesSerialReference(t *testing.T) {
	transform, ok := Velvia50.Transform()
	if !ok {
		t.Fatal("velvia50 transform missing")
	}
	lut, err := SampleCube(transform, 3)
	if err != nil {
		t.Fatalf("sample cube: %v", err)
	}

	size := 9
	want := make([]byte, len(lut.Pix))
	denom := float64(size - 1)
	for i := 0; i < size*size*size; i++ {
		c := transform(RGB{
			R: float64(i%size) / denom,
			G: float64(i/size%size) / denom,
			B: float64(i/(size*size)) / denom,
		})
		off := i * 4
		want[off+0] = quantize8(c.R)
		want[off+1] = quantize8(c.G)
		want[off+2] = quantize8(c.B)
		want[off+3] = 0xFF
	}
	if !bytes.Equal(lut.Pix, want) {
		t.Fatal("parallel sampling differs from serial reference")
	}
}

func TestSampleCubeArguments(t *testing.T) {
	if _, err := SampleCube(nil, 4); err == nil {
		t.Error("nil transform should fail")
	}
	if _, err := SampleCube(identity, 1); err == nil {
		t.Error("level 1 should fail")
	}
	if _, err := SampleCube(identity, 0); err == nil {
		t.Error("level 0 should fail")
	}
}

func TestGenerateStockUnknown(t *testing.T) {
	if _, err := GenerateStock(Stock("kodachrome")); err == nil {
		t.Error("unknown stock should fail")
	}
}

func TestGenerateStockLevelOption(t *testing.T) {
	data, err := GenerateStock(Portra400, func(o *GenerateOptions) {
		o.Level = 2
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, pngSignature) {
		t.Fatal("generated data is not a PNG")
	}
}
