package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Upload purposes. Profile pictures get a timestamp prefix so a new upload
// does not overwrite the previous one.
const (
	PurposeProfilePic = "profile_pic"
	PurposeUpload     = "upload"
)

// Domain errors for asset flows.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrMissingFile         = errors.New("no file provided")
	ErrInvalidAssetPath    = errors.New("invalid asset path")
)

// allowedExtensions is the fixed allow-set for uploads, matched
// case-insensitively against the suffix after the last dot.
var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"webp": {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// AssetService writes uploads under <root>/<accountID>/ and hands out paths
// relative to the root, never absolute filesystem paths.
type AssetService struct {
	root string
}

func NewAssetService(root string) *AssetService {
	return &AssetService{root: filepath.Clean(root)}
}

var _ Assets = (*AssetService)(nil)

// ValidExtension reports whether the filename carries an allowed image
// extension. A name without a dot is never accepted.
func (s *AssetService) ValidExtension(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(filename[i+1:])]
	return ok
}

// Store validates and sanitizes the original filename, creates the account
// directory if absent, and writes the bytes. The returned path is relative to
// the storage root and slash-separated, ready for persistence and URLs.
func (s *AssetService) Store(accountID int, r io.Reader, filename, purpose string) (string, error) {
	if r == nil || strings.TrimSpace(filename) == "" {
		return "", ErrMissingFile
	}
	if !s.ValidExtension(filename) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, filename)
	}

	name := sanitizeFilename(filename)
	if purpose == PurposeProfilePic {
		// Second-granularity prefix; collisions within the same second for
		// the same account are an accepted limitation.
		name = fmt.Sprintf("profile_%d_%s", time.Now().Unix(), name)
	}

	dir := filepath.Join(s.root, strconv.Itoa(accountID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create account dir: %w", err)
	}

	dst := filepath.Join(dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write asset file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close asset file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(strconv.Itoa(accountID), name)), nil
}

// Resolve maps a root-relative path back to an absolute one, refusing
// anything that would escape the storage root.
func (s *AssetService) Resolve(relPath string) (string, error) {
	if strings.TrimSpace(relPath) == "" {
		return "", ErrInvalidAssetPath
	}
	abs := filepath.Join(s.root, filepath.FromSlash(relPath))
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetPath, relPath)
	}
	return abs, nil
}

// Enhance is the enhancement pipeline entry point. No transformation is
// applied yet; the stored asset passes through unchanged.
func (s *AssetService) Enhance(relPath string) (string, error) {
	if _, err := s.Resolve(relPath); err != nil {
		return "", err
	}
	return relPath, nil
}

// sanitizeFilename strips any directory components and replaces characters
// outside [A-Za-z0-9_.-] so the result is safe to join under the root.
func sanitizeFilename(filename string) string {
	name := strings.ReplaceAll(filename, "\\", "/")
	name = filepath.Base(filepath.FromSlash(name))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}
