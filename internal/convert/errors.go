package convert

import "errors"

var (
	// Fatal: the run stops before converting or pruning anything.
	ErrSourceNotDir  = errors.New("source is not a directory")
	ErrNoSourceFiles = errors.New("no image file found in source directory")

	// Per-file: reported in ConvertResult.Error, the run continues.
	ErrNotImage = errors.New("not an image file")
)
