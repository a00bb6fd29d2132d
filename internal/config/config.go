package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/uraxy/gaaqoo/internal/fileutil"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of one conversion run. It is built once by
// Load and treated as read-only afterwards.
type Config struct {
	// SourceDir and DestDir always end with a path separator.
	SourceDir string
	DestDir   string

	// Suffixes is the case-sensitive allow-list; empty allows every file.
	Suffixes []string
	// Excludes drops files whose path relative to SourceDir contains any entry.
	Excludes []string

	// Canvas is the frame resolution outputs are contain-fitted to.
	Canvas image.Point

	FontPath string
	FontSize int

	// KeepFailed retains earlier outputs of sources that failed to convert
	// during this run instead of pruning them.
	KeepFailed bool
}

// fileConfig is the YAML DTO. It is prefilled from defaults so that only
// keys present in the file override them.
type fileConfig struct {
	SrcDir     string   `yaml:"SRC_DIR"`
	DstDir     string   `yaml:"DST_DIR"`
	Suffix     []string `yaml:"SUFFIX"`
	Exclude    []string `yaml:"EXCLUDE"`
	DstImgSize []int    `yaml:"DST_IMG_SIZE"`
	Font       string   `yaml:"FONT"`
	FontSize   int      `yaml:"FONT_SIZE"`
	KeepFailed bool     `yaml:"KEEP_FAILED"`
}

// LoadDefaults populates c with the stock gaaqoo settings.
func (c *Config) LoadDefaults() {
	c.Suffixes = []string{".jpg", ".JPG", ".jpeg", ".JPEG"}
	c.Excludes = []string{"_EXCLUDE_", "_NG_"}
	c.Canvas = image.Pt(800, 480)
	c.FontPath = ""
	c.FontSize = 30
	c.KeepFailed = true
}

// DefaultPath returns the per-user config location.
func DefaultPath() string {
	return ExpandPath("~/.config/gaaqoo/default.yml")
}

// Load reads the YAML file at path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds a validated Config from YAML bytes, applying defaults for
// missing keys.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fc := fileConfig{
		Suffix:     cfg.Suffixes,
		Exclude:    cfg.Excludes,
		DstImgSize: []int{cfg.Canvas.X, cfg.Canvas.Y},
		FontSize:   cfg.FontSize,
		KeepFailed: cfg.KeepFailed,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if len(fc.DstImgSize) != 2 {
		return nil, fmt.Errorf("%w: DST_IMG_SIZE must have 2 values, got %d", ErrInvalidConfig, len(fc.DstImgSize))
	}

	cfg.SourceDir = fc.SrcDir
	cfg.DestDir = fc.DstDir
	cfg.Suffixes = fc.Suffix
	cfg.Excludes = fc.Exclude
	cfg.Canvas = image.Pt(fc.DstImgSize[0], fc.DstImgSize[1])
	cfg.FontPath = fc.Font
	cfg.FontSize = fc.FontSize
	cfg.KeepFailed = fc.KeepFailed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.SourceDir = fileutil.NormalizeDir(ExpandPath(cfg.SourceDir))
	cfg.DestDir = fileutil.NormalizeDir(ExpandPath(cfg.DestDir))
	if cfg.FontPath != "" {
		cfg.FontPath = ExpandPath(cfg.FontPath)
	}
	return cfg, nil
}

// Validate reports the first problem found in c.
func (c *Config) Validate() error {
	switch {
	case c.SourceDir == "":
		return fmt.Errorf("%w: SRC_DIR is required", ErrInvalidConfig)
	case c.DestDir == "":
		return fmt.Errorf("%w: DST_DIR is required", ErrInvalidConfig)
	case c.Canvas.X <= 0 || c.Canvas.Y <= 0:
		return fmt.Errorf("%w: DST_IMG_SIZE must be positive, got %dx%d", ErrInvalidConfig, c.Canvas.X, c.Canvas.Y)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: FONT_SIZE must be positive, got %d", ErrInvalidConfig, c.FontSize)
	}
	return nil
}

// ExpandPath expands a leading ~ to the home directory, then $VAR and
// ${VAR} references. Unset variables are left as written.
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return os.Expand(p, func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return "${" + name + "}"
	})
}
