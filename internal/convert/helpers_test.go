package convert

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"github.com/uraxy/gaaqoo/internal/config"
	"github.com/uraxy/gaaqoo/internal/fileutil"
	"github.com/uraxy/gaaqoo/internal/logging"
	"github.com/uraxy/gaaqoo/internal/photo"
)

func newConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SourceDir = fileutil.NormalizeDir(t.TempDir())
	cfg.DestDir = fileutil.NormalizeDir(filepath.Join(t.TempDir(), "dst"))
	require.NoError(t, cfg.Validate())
	return cfg
}

func newConverter(t *testing.T, cfg *config.Config) *Converter {
	t.Helper()
	overlay, err := photo.NewOverlay(cfg.FontPath, cfg.FontSize)
	require.NoError(t, err)
	t.Cleanup(func() { _ = overlay.Close() })
	return NewConverter(cfg, overlay)
}

func newSyncer(t *testing.T, cfg *config.Config) *Syncer {
	t.Helper()
	return NewSyncer(cfg, newConverter(t, cfg), logging.Discard())
}

func writeFile(t *testing.T, path string, data []byte) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func expectedOutput(t *testing.T, cfg *config.Config, src string) string {
	t.Helper()
	dst, err := fileutil.DestinationPath(cfg.SourceDir, cfg.DestDir, src)
	require.NoError(t, err)
	return dst
}

func openImage(t *testing.T, path string) image.Image {
	t.Helper()
	img, err := imaging.Open(path)
	require.NoError(t, err)
	return img
}

// cornerContrast counts near-white and near-black pixels in the w×h box at
// the bottom-right corner of img.
func cornerContrast(img image.Image, w, h int) (white, black int) {
	b := img.Bounds()
	for y := b.Max.Y - h; y < b.Max.Y; y++ {
		for x := b.Max.X - w; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			switch {
			case r > 0xE000 && g > 0xE000 && bl > 0xE000:
				white++
			case r < 0x2000 && g < 0x2000 && bl < 0x2000:
				black++
			}
		}
	}
	return white, black
}

func saveImage(path string, img image.Image) error {
	return imaging.Save(img, path)
}
