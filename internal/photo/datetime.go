package photo

import (
	"fmt"
	"regexp"
)

var exifDateTime = regexp.MustCompile(`^(\d{4}):(\d{2}):(\d{2}) (\d{2}):(\d{2}):(\d{2})`)

// FormatCaptureDate turns an EXIF timestamp such as "2016:07:10 17:19:53"
// into the overlay text "2016/07/10 17:19". Seconds are dropped. Input that
// does not start with the EXIF layout gives "".
func FormatCaptureDate(raw string) string {
	m := exifDateTime.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s %s:%s", m[1], m[2], m[3], m[4], m[5])
}
