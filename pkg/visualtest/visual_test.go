package visualtest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCompareImages_Identical(t *testing.T) {
	img := solid(10, 10, color.RGBA{255, 0, 0, 255})

	result, err := CompareImages(img, solid(10, 10, color.RGBA{255, 0, 0, 255}), ExactOptions())
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}

	if !result.Match {
		t.Errorf("expected images to match")
	}
	if result.DifferentPixels != 0 {
		t.Errorf("expected 0 different pixels, got %d", result.DifferentPixels)
	}
	if result.TotalPixels != 100 {
		t.Errorf("expected 100 total pixels, got %d", result.TotalPixels)
	}
}

func TestCompareImages_Different(t *testing.T) {
	red := solid(10, 10, color.RGBA{255, 0, 0, 255})
	blue := solid(10, 10, color.RGBA{0, 0, 255, 255})

	opts := ExactOptions()
	opts.Diff = true
	result, err := CompareImages(red, blue, opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}

	if result.Match {
		t.Errorf("expected images to not match")
	}
	if result.DifferentPixels != 100 {
		t.Errorf("expected 100 different pixels, got %d", result.DifferentPixels)
	}
	if result.MaxDifference != 255 {
		t.Errorf("expected max difference 255, got %d", result.MaxDifference)
	}
	if result.Diff == nil || result.Diff.RGBAAt(3, 3) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("diff image should mark differing pixels red")
	}
}

func TestCompareImages_SinglePixel(t *testing.T) {
	a := solid(10, 10, color.RGBA{255, 255, 255, 255})
	b := solid(10, 10, color.RGBA{255, 255, 255, 255})
	b.SetRGBA(4, 6, color.RGBA{0x80, 0x80, 0x80, 0xff})

	opts := ExactOptions()
	opts.Diff = true
	result, err := CompareImages(a, b, opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if result.Match || result.DifferentPixels != 1 {
		t.Fatalf("expected exactly one differing pixel, got %+v", result)
	}
	if result.Diff.RGBAAt(4, 6) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("differing pixel not marked")
	}
	if result.Diff.RGBAAt(0, 0) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("matching pixel should stay gray, got %v", result.Diff.RGBAAt(0, 0))
	}

	// One pixel in a hundred is 1%.
	opts.MaxDifferentPercent = 1
	result, err = CompareImages(a, b, opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !result.Match {
		t.Errorf("expected match within 1%% different pixels")
	}
}

func TestCompareImages_WithTolerance(t *testing.T) {
	img1 := solid(10, 10, color.RGBA{100, 100, 100, 255})
	img2 := solid(10, 10, color.RGBA{102, 102, 102, 255})

	// Compare with tolerance=2 (should match)
	opts := ExactOptions()
	opts.Tolerance = 2
	result, err := CompareImages(img1, img2, opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !result.Match {
		t.Errorf("expected images to match with tolerance=2")
	}

	// Compare with tolerance=0 (should not match)
	opts.Tolerance = 0
	result, err = CompareImages(img1, img2, opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if result.Match {
		t.Errorf("expected images to not match with tolerance=0")
	}
}

func TestCompareImages_Fuzzy(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	a := solid(5, 5, white)
	b := solid(5, 5, white)
	a.SetRGBA(2, 2, black)
	b.SetRGBA(3, 2, black)

	result, err := CompareImages(a, b, ExactOptions())
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if result.Match {
		t.Fatalf("shifted pixel should not match exactly")
	}

	opts := ExactOptions()
	opts.FuzzyRadius = 1
	result, err = CompareImages(a, b, opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !result.Match {
		t.Errorf("expected fuzzy match within radius 1, %d pixels differ", result.DifferentPixels)
	}
}

func TestCompareImages_Offset(t *testing.T) {
	c := color.RGBA{10, 20, 30, 255}
	a := solid(4, 4, c)
	b := solid(8, 8, c).SubImage(image.Rect(4, 4, 8, 8))

	result, err := CompareImages(a, b, ExactOptions())
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !result.Match {
		t.Errorf("sub-images with a different origin should compare by position")
	}
}

func TestCompareImages_DifferentDimensions(t *testing.T) {
	img1 := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img2 := image.NewRGBA(image.Rect(0, 0, 20, 20))

	// Compare - should error or return mismatch
	result, err := CompareImages(img1, img2, ExactOptions())
	if err == nil {
		t.Errorf("expected error for different dimensions")
	}
	if result != nil && result.Match {
		t.Errorf("expected images with different dimensions to not match")
	}
}

func TestCompareFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path1 := filepath.Join(tmpDir, "img1.png")
	path2 := filepath.Join(tmpDir, "img2.png")
	saveTestImage(t, solid(10, 10, color.RGBA{255, 0, 0, 255}), path1)
	saveTestImage(t, solid(10, 10, color.RGBA{0, 0, 255, 255}), path2)

	opts := ExactOptions()
	opts.DiffImagePath = filepath.Join(tmpDir, "diff.png")

	result, err := CompareFiles(path1, path2, opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if result.Match {
		t.Errorf("expected images to not match")
	}

	// Verify diff image was created
	if _, err := os.Stat(opts.DiffImagePath); os.IsNotExist(err) {
		t.Errorf("diff image was not created")
	}

	if _, err := CompareFiles(filepath.Join(tmpDir, "missing.png"), path2, opts); err == nil {
		t.Errorf("expected error for missing file")
	}
}

// Helper function to save test images
func saveTestImage(t *testing.T, img image.Image, path string) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}
