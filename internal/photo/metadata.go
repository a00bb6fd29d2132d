package photo

import (
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// Metadata is the subset of EXIF the pipeline consumes. Each value carries
// its own presence flag.
type Metadata struct {
	Orientation    Orientation
	HasOrientation bool

	DateTimeOriginal    string
	HasDateTimeOriginal bool
}

// OrientationOrDefault returns the recorded orientation, or Identity when
// none was recorded.
func (m Metadata) OrientationOrDefault() Orientation {
	if !m.HasOrientation {
		return Identity
	}
	return m.Orientation
}

// ReadMetadata extracts orientation and DateTimeOriginal from the EXIF
// block in r. Missing or unreadable EXIF yields an empty Metadata; it never
// fails.
func ReadMetadata(r io.Reader) (md Metadata) {
	// goexif can panic on corrupt IFD offsets.
	defer func() {
		if recover() != nil {
			md = Metadata{}
		}
	}()

	x, err := exif.Decode(r)
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		return Metadata{}
	}

	if tag, err := x.Get(exif.Orientation); err == nil {
		if code, err := tag.Int(0); err == nil {
			md.Orientation, md.HasOrientation = ParseOrientation(code)
		}
	}

	if tag, err := x.Get(exif.DateTimeOriginal); err == nil {
		if s, err := tag.StringVal(); err == nil {
			md.DateTimeOriginal = strings.TrimRight(s, "\x00")
			md.HasDateTimeOriginal = true
		}
	}

	return md
}
