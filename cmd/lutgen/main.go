package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder.
	"image/png"
	"os"
	"path/filepath"

	"github.com/filmlab/haldclut"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "generate":
		if err := runGenerate(os.Args[2:]); err != nil {
			fail(err)
		}
	case "apply":
		if err := runApply(os.Args[2:]); err != nil {
			fail(err)
		}
	case "cube":
		if err := runCube(os.Args[2:]); err != nil {
			fail(err)
		}
	case "list":
		runList()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: lutgen <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  generate -out dir [-level 8] [-stock name]")
	fmt.Fprintln(os.Stderr, "  apply    -lut lut.png -in photo.jpg -out out.png [-w maxwidth]")
	fmt.Fprintln(os.Stderr, "  cube     -stock name -out file.cube [-size 33]")
	fmt.Fprintln(os.Stderr, "  list")
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	outDir := fs.String("out", "", "output directory for <stock>.png files")
	level := fs.Int("level", haldclut.DefaultLevel, "hald level")
	stock := fs.String("stock", "", "generate a single stock instead of all")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outDir == "" {
		return errors.New("missing required arguments")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	stocks := haldclut.Stocks()
	if *stock != "" {
		stocks = []haldclut.Stock{haldclut.Stock(*stock)}
	}
	for _, s := range stocks {
		data, err := haldclut.GenerateStock(s, func(o *haldclut.GenerateOptions) {
			o.Level = *level
		})
		if err != nil {
			return fmt.Errorf("generate %s: %w", s, err)
		}
		path := filepath.Join(*outDir, string(s)+".png")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Generated", path)
	}
	return nil
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	lutPath := fs.String("lut", "", "hald clut PNG")
	inPath := fs.String("in", "", "input image (PNG or JPEG)")
	outPath := fs.String("out", "", "output PNG")
	maxWidth := fs.Int("w", 0, "downscale input to at most this width")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *lutPath == "" || *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	clut, err := decodeImage(*lutPath)
	if err != nil {
		return fmt.Errorf("read lut: %w", err)
	}
	src, err := decodeImage(*inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	out, err := haldclut.Apply(clut, src, func(o *haldclut.ApplyOptions) {
		o.MaxWidth = *maxWidth
	})
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runCube(args []string) error {
	fs := flag.NewFlagSet("cube", flag.ContinueOnError)
	stock := fs.String("stock", "", "stock name")
	outPath := fs.String("out", "", "output .cube file")
	size := fs.Int("size", 33, "lattice points per axis")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *stock == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	transform, ok := haldclut.Stock(*stock).Transform()
	if !ok {
		return fmt.Errorf("unknown stock %q", *stock)
	}

	f, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	err = haldclut.WriteCube(f, transform, func(o *haldclut.CubeOptions) {
		o.Size = *size
		o.Title = *stock
	})
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runList() {
	for _, s := range haldclut.Stocks() {
		fmt.Fprintln(os.Stdout, s)
	}
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
