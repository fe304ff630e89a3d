package visualtest

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// CompareResult contains the results of an image comparison
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // Max color channel difference found
	// Diff marks differing pixels in red over a grayscale copy of the
	// actual image. Only set when CompareOptions.Diff is true.
	Diff *image.RGBA
}

// CompareOptions configures the image comparison
type CompareOptions struct {
	// Tolerance: maximum allowed difference per color channel (0-255).
	// Scrollbar chrome is drawn without smoothing, so 0 is the norm.
	Tolerance int

	// FuzzyRadius: if > 0, a pixel matches if it matches any pixel within this radius
	FuzzyRadius int

	// MaxDifferentPercent: if > 0, pass if the percentage of different pixels is <= this value
	MaxDifferentPercent float64

	// Diff: if true, build a diff image highlighting differences
	Diff bool
	// DiffImagePath: if set and the images differ, the diff image is saved here
	DiffImagePath string
}

// ExactOptions requires pixel-identical images.
func ExactOptions() CompareOptions {
	return CompareOptions{}
}

// TextOptions tolerates small glyph antialiasing differences in header
// text between platforms.
func TextOptions() CompareOptions {
	return CompareOptions{Tolerance: 2, MaxDifferentPercent: 0.1}
}

// CompareFiles compares two PNG files pixel by pixel
func CompareFiles(actualPath, expectedPath string, opts CompareOptions) (*CompareResult, error) {
	actualImg, err := loadPNG(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expectedImg, err := loadPNG(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	return CompareImages(actualImg, expectedImg, opts)
}

// CompareImages compares two images pixel by pixel
func CompareImages(actualImg, expectedImg image.Image, opts CompareOptions) (*CompareResult, error) {
	actualBounds := actualImg.Bounds()
	expectedBounds := expectedImg.Bounds()
	if actualBounds.Size() != expectedBounds.Size() {
		return &CompareResult{
			Match: false,
		}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", actualBounds, expectedBounds)
	}
	// Expected pixels are addressed relative to the actual image.
	shift := expectedBounds.Min.Sub(actualBounds.Min)

	result := &CompareResult{
		Match:       true,
		TotalPixels: actualBounds.Dx() * actualBounds.Dy(),
	}

	var diffImg *image.RGBA
	if opts.Diff || opts.DiffImagePath != "" {
		diffImg = image.NewRGBA(actualBounds)
	}

	for y := actualBounds.Min.Y; y < actualBounds.Max.Y; y++ {
		for x := actualBounds.Min.X; x < actualBounds.Max.X; x++ {
			diff := pixelDiff(actualImg.At(x, y), expectedImg.At(x+shift.X, y+shift.Y))
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}

			gray := grayOf(actualImg.At(x, y))
			if diff > opts.Tolerance {
				matched := false
				if opts.FuzzyRadius > 0 {
					matched = fuzzyMatch(actualImg, expectedImg, x, y, shift, opts.FuzzyRadius, opts.Tolerance)
				}

				if !matched {
					result.Match = false
					result.DifferentPixels++
					if diffImg != nil {
						diffImg.Set(x, y, color.RGBA{255, 0, 0, 255})
					}
					continue
				}
			}
			if diffImg != nil {
				diffImg.Set(x, y, color.RGBA{gray, gray, gray, 255})
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	if opts.Diff {
		result.Diff = diffImg
	}
	if !result.Match && opts.DiffImagePath != "" {
		if err := savePNG(diffImg, opts.DiffImagePath); err != nil {
			return result, fmt.Errorf("failed to save diff image: %w", err)
		}
	}

	return result, nil
}

// pixelDiff is the largest 8-bit channel difference between a and b.
func pixelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return maxInt(
		absInt(int(ar>>8)-int(br>>8)),
		absInt(int(ag>>8)-int(bg>>8)),
		absInt(int(ab>>8)-int(bb>>8)),
		absInt(int(aa>>8)-int(ba>>8)),
	)
}

func grayOf(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

// fuzzyMatch checks if the actual pixel at (x, y) matches any expected pixel within radius
func fuzzyMatch(actual, expected image.Image, x, y int, shift image.Point, radius, tolerance int) bool {
	bounds := actual.Bounds()
	a := actual.At(x, y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if !(image.Point{nx, ny}).In(bounds) {
				continue
			}
			if pixelDiff(a, expected.At(nx+shift.X, ny+shift.Y)) <= tolerance {
				return true
			}
		}
	}
	return false
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return png.Decode(file)
}

// savePNG saves an image as PNG
func savePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(vals ...int) int {
	if len(vals) == 0 {
		return 0
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
