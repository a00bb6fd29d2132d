// Package photo holds the per-image steps of the frame pipeline: EXIF
// metadata extraction, orientation correction, contain-fit resizing and the
// capture-date overlay.
package photo
