package photo

import (
	"image"

	"github.com/disintegration/imaging"
)

// Orientation is the EXIF Orientation tag (0x0112) as a transform.
type Orientation int

const (
	Identity       Orientation = 1
	FlipH          Orientation = 2
	Rotate180      Orientation = 3
	FlipV          Orientation = 4
	FlipHRotate90  Orientation = 5
	Rotate270      Orientation = 6
	FlipHRotate270 Orientation = 7
	Rotate90       Orientation = 8
)

// Step is a single geometric operation. Rotations are counter-clockwise.
type Step int

const (
	StepFlipH Step = iota
	StepFlipV
	StepRotate90
	StepRotate180
	StepRotate270
)

// ParseOrientation maps an EXIF code to an Orientation. Codes outside 1..8,
// including the 0 some cameras write, report false.
func ParseOrientation(code int) (Orientation, bool) {
	if code < int(Identity) || code > int(Rotate90) {
		return 0, false
	}
	return Orientation(code), true
}

// Steps returns the operations that bring an image stored with orientation
// o upright, in the order they must be applied.
func (o Orientation) Steps() []Step {
	switch o {
	case FlipH:
		return []Step{StepFlipH}
	case Rotate180:
		return []Step{StepRotate180}
	case FlipV:
		return []Step{StepFlipV}
	case FlipHRotate90:
		return []Step{StepFlipH, StepRotate90}
	case Rotate270:
		return []Step{StepRotate270}
	case FlipHRotate270:
		return []Step{StepFlipH, StepRotate270}
	case Rotate90:
		return []Step{StepRotate90}
	default:
		return nil
	}
}

func (s Step) apply(img image.Image) image.Image {
	switch s {
	case StepFlipH:
		return imaging.FlipH(img)
	case StepFlipV:
		return imaging.FlipV(img)
	case StepRotate90:
		return imaging.Rotate90(img)
	case StepRotate180:
		return imaging.Rotate180(img)
	case StepRotate270:
		return imaging.Rotate270(img)
	}
	return img
}

// Orient applies the correction for o. Identity returns img as is.
func Orient(img image.Image, o Orientation) image.Image {
	for _, s := range o.Steps() {
		img = s.apply(img)
	}
	return img
}
