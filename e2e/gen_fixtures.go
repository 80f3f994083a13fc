//go:build ignore

// gen_fixtures creates a small storefront image tree for a manual smoke run.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	for _, sub := range []string{"slides", "categories", "brands", "avatars"} {
		os.MkdirAll(filepath.Join(dir, sub), 0o755)
	}

	// Hero (JPEG, 3000x1500): resized to 1920 wide, webp budgeted.
	writeJPEG(filepath.Join(dir, "Hero1.jpg"), noisyGradient(3000, 1500, 1))
	writeJPEG(filepath.Join(dir, "slides", "slide-1-summer.jpg"), noisyGradient(2400, 900, 2))

	// Categories (PNG, 1200x800 each): resized to 800 wide.
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("category-%d.png", i)
		writePNG(filepath.Join(dir, "categories", name), noisyGradient(1200, 800, int64(10+i)))
	}

	// Brand logo (PNG, 600x300): resized to 400 wide.
	writePNG(filepath.Join(dir, "brands", "bosch.png"), noisyGradient(600, 300, 20))

	// Avatar (PNG, 120x120, tiny): skipped.
	writePNG(filepath.Join(dir, "avatars", "user-1.png"), solid(120, 120))

	// Not an image despite its extension: fails per file.
	os.WriteFile(filepath.Join(dir, "broken.jpg"), make([]byte, 64*1024), 0o644)

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 8 fixtures in %s\n", dir)
}

// noisyGradient is a gradient with per-pixel noise so the files stay large.
func noisyGradient(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := uint8(rng.Intn(48))
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x*200/w) + n,
				G: uint8(y*200/h) + n,
				B: 128 + n,
				A: 255,
			})
		}
	}
	return img
}

func solid(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 220, G: 60, B: 30, A: 255})
		}
	}
	return img
}

func writePNG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 92}); err != nil {
		panic(err)
	}
}
