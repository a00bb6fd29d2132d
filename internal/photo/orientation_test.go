package photo

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// marked returns a 3×2 image with a white pixel at (0,0) and black elsewhere.
func marked() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func whitePixel(t *testing.T, img image.Image) image.Point {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r > 0x8000 {
				return image.Pt(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	t.Fatal("no white pixel")
	return image.Point{}
}

func TestParseOrientation(t *testing.T) {
	for code := 1; code <= 8; code++ {
		o, ok := ParseOrientation(code)
		require.True(t, ok, "code %d", code)
		assert.Equal(t, Orientation(code), o)
	}
	for _, code := range []int{-1, 0, 9, 65535} {
		_, ok := ParseOrientation(code)
		assert.False(t, ok, "code %d", code)
	}
}

func TestOrientation_Steps(t *testing.T) {
	tests := []struct {
		o    Orientation
		want []Step
	}{
		{Identity, nil},
		{FlipH, []Step{StepFlipH}},
		{Rotate180, []Step{StepRotate180}},
		{FlipV, []Step{StepFlipV}},
		{FlipHRotate90, []Step{StepFlipH, StepRotate90}},
		{Rotate270, []Step{StepRotate270}},
		{FlipHRotate270, []Step{StepFlipH, StepRotate270}},
		{Rotate90, []Step{StepRotate90}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.o.Steps(), "orientation %d", tt.o)
	}
}

func TestOrient(t *testing.T) {
	// The source is 3 wide, 2 high with the marker top-left. Rotations are
	// counter-clockwise.
	tests := []struct {
		o      Orientation
		size   image.Point
		marker image.Point
	}{
		{Identity, image.Pt(3, 2), image.Pt(0, 0)},
		{FlipH, image.Pt(3, 2), image.Pt(2, 0)},
		{Rotate180, image.Pt(3, 2), image.Pt(2, 1)},
		{FlipV, image.Pt(3, 2), image.Pt(0, 1)},
		{FlipHRotate90, image.Pt(2, 3), image.Pt(0, 0)},
		{Rotate270, image.Pt(2, 3), image.Pt(1, 0)},
		{FlipHRotate270, image.Pt(2, 3), image.Pt(1, 2)},
		{Rotate90, image.Pt(2, 3), image.Pt(0, 2)},
	}

	for _, tt := range tests {
		got := Orient(marked(), tt.o)
		assert.Equal(t, tt.size, got.Bounds().Size(), "orientation %d size", tt.o)
		assert.Equal(t, tt.marker, whitePixel(t, got), "orientation %d marker", tt.o)
	}
}

func TestOrient_IdentityReturnsSameImage(t *testing.T) {
	img := marked()
	assert.Same(t, img, Orient(img, Identity).(*image.NRGBA))
}
