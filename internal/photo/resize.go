package photo

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ContainSize scales src so that it fills one side of dst exactly and does
// not exceed the other, keeping the aspect ratio. It upscales as well as
// downscales. Both results are at least 1.
func ContainSize(src, dst image.Point) image.Point {
	ratioX := float64(dst.X) / float64(src.X)
	ratioY := float64(dst.Y) / float64(src.Y)

	var size image.Point
	if ratioX < ratioY {
		size = image.Pt(dst.X, int(math.Round(float64(src.Y)*ratioX)))
	} else {
		size = image.Pt(int(math.Round(float64(src.X)*ratioY)), dst.Y)
	}
	return image.Pt(max(size.X, 1), max(size.Y, 1))
}

// Fit resamples img to its ContainSize within canvas with a Lanczos filter.
// Apply Orient first: a 90° correction changes which side is constrained.
func Fit(img image.Image, canvas image.Point) *image.NRGBA {
	size := ContainSize(img.Bounds().Size(), canvas)
	return imaging.Resize(img, size.X, size.Y, imaging.Lanczos)
}
