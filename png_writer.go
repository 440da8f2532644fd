package haldclut

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// EncodePNG serializes an RGBA pixel buffer as an 8-bit truecolor-with-alpha
// PNG: signature, IHDR, a single IDAT, IEND. No ancillary chunks, no
// interlacing, filter type 0 on every scanline.
func EncodePNG(pix []byte, width, height int) ([]byte, error) {
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("rgba buffer is %d bytes, want %d for %dx%d", len(pix), width*height*4, width, height)
	}

	// Each scanline carries a leading filter-type byte even with filtering
	// disabled.
	stride := width * 4
	raw := make([]byte, 0, height*(stride+1))
	for y := 0; y < height; y++ {
		raw = append(raw, 0)
		raw = append(raw, pix[y*stride:(y+1)*stride]...)
	}

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: RGBA
	// Compression method, filter method and interlace stay zero.

	var out bytes.Buffer
	out.Grow(len(pngSignature) + idat.Len() + 3*12 + 13)
	out.Write(pngSignature)
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", idat.Bytes())
	writeChunk(&out, "IEND", nil)
	return out.Bytes(), nil
}

// writeChunk emits length, tag, payload and a CRC-32 over tag plus payload,
// lengths and CRC big-endian.
func writeChunk(out *bytes.Buffer, tag string, payload []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(payload)))
	copy(hdr[4:8], tag)
	out.Write(hdr[:])
	out.Write(payload)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:8])
	crc.Write(payload)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	out.Write(sum[:])
}
