package photo

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// overlayMargin is the gap between the text box and the image corner.
	overlayMargin = 5
	// outlineRadius is how far the black outline extends around the glyphs.
	outlineRadius = 3
)

// Overlay draws the capture date onto converted images.
type Overlay struct {
	face font.Face
}

// NewOverlay loads the font at fontPath at size pixels. An empty fontPath
// selects the embedded Go Bold face.
func NewOverlay(fontPath string, size int) (*Overlay, error) {
	data := gobold.TTF
	if fontPath != "" {
		var err error
		data, err = os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", fontPath, err)
	}

	// 72 DPI makes Size a pixel size.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return &Overlay{face: face}, nil
}

// Close releases the font face.
func (o *Overlay) Close() error {
	return o.face.Close()
}

// TextSize returns the rendered width and line height of text.
func (o *Overlay) TextSize(text string) image.Point {
	m := o.face.Metrics()
	return image.Pt(font.MeasureString(o.face, text).Ceil(), (m.Ascent + m.Descent).Ceil())
}

// Draw writes text into the bottom-right corner of img: black at every
// offset within outlineRadius, then white on top. Empty text is a no-op.
func (o *Overlay) Draw(img draw.Image, text string) {
	if text == "" {
		return
	}

	size := o.TextSize(text)
	b := img.Bounds()
	x := b.Max.X - size.X - overlayMargin
	y := b.Max.Y - size.Y - overlayMargin

	for dx := -outlineRadius; dx <= outlineRadius; dx++ {
		for dy := -outlineRadius; dy <= outlineRadius; dy++ {
			o.drawString(img, text, image.Pt(x+dx, y+dy), image.Black)
		}
	}
	o.drawString(img, text, image.Pt(x, y), image.White)
}

// drawString draws text with its top-left corner at pt.
func (o *Overlay) drawString(dst draw.Image, text string, pt image.Point, src image.Image) {
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: o.face,
		Dot:  fixed.P(pt.X, pt.Y+o.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
