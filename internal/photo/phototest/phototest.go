// Package phototest builds JPEG fixtures with a minimal EXIF block for
// tests of the conversion pipeline.
package phototest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	tagOrientation      = 0x0112
	tagExifIFDPointer   = 0x8769
	tagDateTimeOriginal = 0x9003

	typeASCII = 2
	typeShort = 3
	typeLong  = 4
)

// Image returns a w×h image whose left half is red and right half is blue.
func Image(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if x >= w/2 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// JPEG encodes Image(w, h) and embeds an EXIF segment carrying the given
// orientation and DateTimeOriginal. A zero orientation or empty dateTime
// omits that tag; with both omitted no EXIF segment is written.
func JPEG(w, h, orientation int, dateTime string) []byte {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, Image(w, h), imaging.JPEG, imaging.JPEGQuality(95)); err != nil {
		panic(err)
	}
	data := buf.Bytes()
	if orientation == 0 && dateTime == "" {
		return data
	}

	seg := ExifSegment(orientation, dateTime)
	out := make([]byte, 0, len(data)+len(seg))
	out = append(out, data[:2]...) // SOI
	out = append(out, seg...)
	out = append(out, data[2:]...)
	return out
}

// ExifSegment returns a JPEG APP1 segment holding a big-endian TIFF block
// with IFD0 (Orientation, Exif pointer) and an Exif IFD (DateTimeOriginal).
func ExifSegment(orientation int, dateTime string) []byte {
	be := binary.BigEndian
	var t bytes.Buffer
	put16 := func(v uint16) { _ = binary.Write(&t, be, v) }
	put32 := func(v uint32) { _ = binary.Write(&t, be, v) }

	var n0 uint16
	if orientation != 0 {
		n0++
	}
	if dateTime != "" {
		n0++
	}

	const ifd0Off = 8
	exifOff := ifd0Off + 2 + 12*int(n0) + 4
	dataOff := exifOff + 2 + 12 + 4
	ascii := append([]byte(dateTime), 0)

	t.WriteString("MM")
	put16(0x002A)
	put32(ifd0Off)

	put16(n0)
	if orientation != 0 {
		put16(tagOrientation)
		put16(typeShort)
		put32(1)
		put16(uint16(orientation))
		put16(0)
	}
	if dateTime != "" {
		put16(tagExifIFDPointer)
		put16(typeLong)
		put32(1)
		put32(uint32(exifOff))
	}
	put32(0)

	if dateTime != "" {
		put16(1)
		put16(tagDateTimeOriginal)
		put16(typeASCII)
		put32(uint32(len(ascii)))
		put32(uint32(dataOff))
		put32(0)
		t.Write(ascii)
	}

	var seg bytes.Buffer
	seg.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(&seg, be, uint16(2+6+t.Len()))
	seg.WriteString("Exif\x00\x00")
	seg.Write(t.Bytes())
	return seg.Bytes()
}
