package fileutil

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// OutputMarker separates the original file name from the content hash in
// every output name: <rel-path><ext>.gaaqoo_<hash>.jpg
const OutputMarker = ".gaaqoo_"

// OutputExt is appended after the hash.
const OutputExt = ".jpg"

// HashLen is the number of hex characters of the SHA-1 digest kept.
const HashLen = 8

// ErrOutsideRoot is returned when a path does not live under the given root.
var ErrOutsideRoot = errors.New("path is outside root")

// NormalizeDir makes dir end with a path separator.
func NormalizeDir(dir string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(dir, sep) {
		return dir
	}
	return dir + sep
}

// Hash returns the first HashLen hex characters of the SHA-1 digest of the
// file content. It depends on the bytes only, not on name or mtime.
func Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil))[:HashLen], nil
}

// relPath strips root (normalized) from path.
func relPath(root, path string) (string, error) {
	root = NormalizeDir(root)
	if !strings.HasPrefix(path, root) {
		return "", fmt.Errorf("%w: %q not under %q", ErrOutsideRoot, path, root)
	}
	return path[len(root):], nil
}

// OutputPrefix returns the name stem shared by every output of srcPath,
// whatever its content hash.
func OutputPrefix(srcRoot, dstRoot, srcPath string) (string, error) {
	rel, err := relPath(srcRoot, srcPath)
	if err != nil {
		return "", err
	}
	return NormalizeDir(dstRoot) + rel + OutputMarker, nil
}

// OutputPath maps srcPath to its output file for the given content hash.
// Roots may be given with or without a trailing separator.
func OutputPath(srcRoot, dstRoot, srcPath, hash string) (string, error) {
	prefix, err := OutputPrefix(srcRoot, dstRoot, srcPath)
	if err != nil {
		return "", err
	}
	return prefix + hash + OutputExt, nil
}

// DestinationPath hashes srcPath and returns its output file path.
func DestinationPath(srcRoot, dstRoot, srcPath string) (string, error) {
	hash, err := Hash(srcPath)
	if err != nil {
		return "", err
	}
	return OutputPath(srcRoot, dstRoot, srcPath, hash)
}

// SkipFunc is told about a directory below the walked root that could not
// be read. The walk continues without it.
type SkipFunc func(dir string, err error)

// readDir is replaced in tests to inject unreadable directories.
var readDir = os.ReadDir

// ListFiles walks root and returns the regular files whose path ends with
// one of suffixes (any file when suffixes is empty) and whose path relative
// to root contains none of excludes. Symlinked directories are followed;
// a link back to one of its own ancestors is not descended into again.
// Paths are returned in traversal order as root (normalized) + relative path.
//
// Only a root that cannot be read is an error. Unreadable subdirectories
// are skipped and reported to onSkip, which may be nil.
func ListFiles(root string, suffixes, excludes []string, onSkip SkipFunc) ([]string, error) {
	root = NormalizeDir(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", root)
	}

	var files []string
	w := walker{
		ancestors: make(map[string]struct{}),
		onSkip:    onSkip,
	}
	err = w.walk(root, func(path string) {
		if !hasAnySuffix(path, suffixes) {
			return
		}
		if containsAny(path[len(root):], excludes) {
			return
		}
		files = append(files, path)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", root, err)
	}

	return files, nil
}

type walker struct {
	ancestors map[string]struct{}
	onSkip    SkipFunc
}

// walk visits dir, which must end with a separator. Paths are built by
// concatenation so the caller's root prefix is preserved verbatim. The
// returned error concerns dir itself; failures further down go to onSkip.
func (w *walker) walk(dir string, visit func(path string)) error {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if _, ok := w.ancestors[real]; ok {
		return nil
	}
	w.ancestors[real] = struct{}{}
	defer delete(w.ancestors, real)

	entries, err := readDir(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		path := dir + e.Name()
		mode := e.Type()
		if mode&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				// dangling link
				continue
			}
			mode = target.Mode().Type()
		}

		switch {
		case mode.IsDir():
			sub := NormalizeDir(path)
			if err := w.walk(sub, visit); err != nil && w.onSkip != nil {
				w.onSkip(sub, err)
			}
		case mode.IsRegular():
			visit(path)
		}
	}
	return nil
}

func hasAnySuffix(path string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, s := range suffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}

func containsAny(path string, excludes []string) bool {
	for _, s := range excludes {
		if s != "" && strings.Contains(path, s) {
			return true
		}
	}
	return false
}

// DetectMimeType sniffs the MIME type from the leading bytes of r. It
// returns "" when the content is not recognized.
func DetectMimeType(r io.Reader) string {
	mtype, err := mimetype.DetectReader(r)
	if err != nil || mtype == nil {
		return ""
	}
	result := mtype.String()
	if result == "application/octet-stream" {
		return ""
	}
	return result
}

// IsImage reports whether mimeType names an image type.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
