// Package convert runs the frame conversion: the per-file pipeline and the
// synchronization of a source tree into a destination tree.
package convert

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/uraxy/gaaqoo/internal/config"
	"github.com/uraxy/gaaqoo/internal/fileutil"
	"github.com/uraxy/gaaqoo/internal/photo"
)

// JPEGQuality is the encoder quality of every output.
const JPEGQuality = 95

// ConvertResult is the outcome of one source file.
type ConvertResult struct {
	Source string
	// Output is empty only when the source could not be hashed.
	Output  string
	Skipped bool
	Reason  string
	// Size of the written image; zero for skipped or failed files.
	Size     image.Point
	Metadata photo.Metadata
	Error    error
}

// Converter turns one source photo into its frame-ready output.
type Converter struct {
	srcDir  string
	dstDir  string
	canvas  image.Point
	overlay *photo.Overlay
}

// NewConverter creates a converter for cfg. The overlay is owned by the
// caller.
func NewConverter(cfg *config.Config, overlay *photo.Overlay) *Converter {
	return &Converter{
		srcDir:  cfg.SourceDir,
		dstDir:  cfg.DestDir,
		canvas:  cfg.Canvas,
		overlay: overlay,
	}
}

// ConvertFile maps src to its content-addressed output and writes it unless
// it already exists. Failures are returned in the result.
func (c *Converter) ConvertFile(src string) ConvertResult {
	result := ConvertResult{
		Source: src,
	}

	dst, err := fileutil.DestinationPath(c.srcDir, c.dstDir, src)
	if err != nil {
		result.Error = fmt.Errorf("failed to name output: %w", err)
		return result
	}
	result.Output = dst

	// The hash is in the name, so an existing output is up to date.
	if info, err := os.Stat(dst); err == nil && info.Mode().IsRegular() {
		result.Skipped = true
		result.Reason = "already exists"
		return result
	}

	img, md, err := c.render(src)
	result.Metadata = md
	if err != nil {
		result.Error = err
		return result
	}

	if err := writeJPEG(dst, img); err != nil {
		result.Error = err
		return result
	}

	result.Size = img.Bounds().Size()
	return result
}

// render decodes src and applies orientation, fit and overlay. The source
// file is closed before render returns, whatever the outcome.
func (c *Converter) render(src string) (*image.NRGBA, photo.Metadata, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, photo.Metadata{}, fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	if mime := fileutil.DetectMimeType(f); !fileutil.IsImage(mime) {
		return nil, photo.Metadata{}, fmt.Errorf("%w: detected %q", ErrNotImage, mime)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, photo.Metadata{}, fmt.Errorf("failed to rewind source: %w", err)
	}

	md := photo.ReadMetadata(f)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, md, fmt.Errorf("failed to rewind source: %w", err)
	}

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, md, fmt.Errorf("failed to decode image: %w", err)
	}

	// Orientation must come first: rotating by 90° swaps the sides Fit
	// constrains.
	oriented := photo.Orient(img, md.OrientationOrDefault())
	fitted := photo.Fit(oriented, c.canvas)

	if md.HasDateTimeOriginal {
		c.overlay.Draw(fitted, photo.FormatCaptureDate(md.DateTimeOriginal))
	}

	return fitted, md, nil
}

// writeJPEG encodes img into a temporary file next to dst and renames it
// into place, so an interrupted run never leaves a partial file under a
// cache name.
func writeJPEG(dst string, img image.Image) (err error) {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gaaqoo-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to chmod output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("failed to rename output: %w", err)
	}
	return nil
}
