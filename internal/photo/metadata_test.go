package photo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uraxy/gaaqoo/internal/photo/phototest"
)

func TestReadMetadata(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		orientation Orientation
		hasOri      bool
		date        string
		hasDate     bool
	}{
		{
			name:        "orientation and date",
			data:        phototest.JPEG(80, 48, 1, "2015:03:01 12:11:38"),
			orientation: Identity,
			hasOri:      true,
			date:        "2015:03:01 12:11:38",
			hasDate:     true,
		},
		{
			name:        "rotated without date",
			data:        phototest.JPEG(80, 48, 6, ""),
			orientation: Rotate270,
			hasOri:      true,
		},
		{
			name:    "date only",
			data:    phototest.JPEG(80, 48, 0, "2016:07:10 17:19:53"),
			date:    "2016:07:10 17:19:53",
			hasDate: true,
		},
		{
			name: "no exif",
			data: phototest.JPEG(80, 48, 0, ""),
		},
		{
			name: "not an image",
			data: []byte("just some text"),
		},
		{
			name: "empty",
			data: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := ReadMetadata(bytes.NewReader(tt.data))
			assert.Equal(t, tt.hasOri, md.HasOrientation)
			assert.Equal(t, tt.orientation, md.Orientation)
			assert.Equal(t, tt.hasDate, md.HasDateTimeOriginal)
			assert.Equal(t, tt.date, md.DateTimeOriginal)
		})
	}
}

func TestReadMetadata_OrientationOutOfRangeIsAbsent(t *testing.T) {
	md := ReadMetadata(bytes.NewReader(phototest.JPEG(16, 16, 9, "")))
	assert.False(t, md.HasOrientation, "out of range code must be treated as absent")
	assert.Equal(t, Identity, md.OrientationOrDefault())
}

func TestReadMetadata_TruncatedExif(t *testing.T) {
	data := phototest.JPEG(16, 16, 3, "2015:03:01 12:11:38")
	idx := bytes.Index(data, []byte("Exif"))
	assert.Positive(t, idx)

	md := ReadMetadata(bytes.NewReader(data[:idx+12]))
	assert.False(t, md.HasDateTimeOriginal)
}

func TestMetadata_OrientationOrDefault(t *testing.T) {
	assert.Equal(t, Identity, Metadata{}.OrientationOrDefault())
	assert.Equal(t, Rotate90, Metadata{Orientation: Rotate90, HasOrientation: true}.OrientationOrDefault())
}

func TestReadMetadata_ReaderIsNotRequiredToBeSeekable(t *testing.T) {
	data := phototest.JPEG(16, 16, 8, "")
	md := ReadMetadata(strings.NewReader(string(data)))
	assert.True(t, md.HasOrientation)
	assert.Equal(t, Rotate90, md.Orientation)
}
