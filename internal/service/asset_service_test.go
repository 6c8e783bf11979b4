package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAssetService_ValidExtension(t *testing.T) {
	svc := NewAssetService(t.TempDir())

	cases := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.webp", true},
		{"PHOTO.PNG", true},
		{"photo.JpEg", true},
		{"archive.tar.png", true},
		{"photo.gif", false},
		{"photo.bmp", false},
		{"photo", false},
		{"", false},
		{"png", false},
		{".png", true}, // dotfile with recognized suffix
		{"photo.png.exe", false},
	}

	for _, tc := range cases {
		if got := svc.ValidExtension(tc.filename); got != tc.want {
			t.Errorf("ValidExtension(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestAssetService_Store_WritesUnderAccountDir(t *testing.T) {
	root := t.TempDir()
	svc := NewAssetService(root)

	rel, err := svc.Store(7, strings.NewReader("imagebytes"), "photo.png", PurposeUpload)
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if rel != "7/photo.png" {
		t.Fatalf("expected relative path 7/photo.png, got %q", rel)
	}
	if filepath.IsAbs(rel) {
		t.Fatalf("Store must never return an absolute path, got %q", rel)
	}

	data, err := os.ReadFile(filepath.Join(root, "7", "photo.png"))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "imagebytes" {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestAssetService_Store_ProfilePurposeGetsTimestampPrefix(t *testing.T) {
	root := t.TempDir()
	svc := NewAssetService(root)

	rel, err := svc.Store(3, strings.NewReader("x"), "me.jpg", PurposeProfilePic)
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	base := filepath.Base(rel)
	if !strings.HasPrefix(base, "profile_") || !strings.HasSuffix(base, "_me.jpg") {
		t.Fatalf("expected profile_<ts>_me.jpg, got %q", base)
	}
	if !strings.HasPrefix(rel, "3/") {
		t.Fatalf("expected path under account dir 3/, got %q", rel)
	}
}

func TestAssetService_Store_SanitizesTraversalNames(t *testing.T) {
	root := t.TempDir()
	svc := NewAssetService(root)

	rel, err := svc.Store(5, strings.NewReader("x"), "../../evil.png", PurposeUpload)
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if strings.Contains(rel, "..") {
		t.Fatalf("sanitized path still contains traversal: %q", rel)
	}
	if !strings.HasPrefix(rel, "5/") {
		t.Fatalf("expected path under account dir 5/, got %q", rel)
	}

	// Nothing may be written outside the root.
	if _, err := os.Stat(filepath.Join(root, "..", "evil.png")); !os.IsNotExist(err) {
		t.Fatalf("file escaped the storage root")
	}
}

func TestAssetService_Store_RejectsUnsupportedAndMissing(t *testing.T) {
	svc := NewAssetService(t.TempDir())

	if _, err := svc.Store(1, strings.NewReader("x"), "photo.gif", PurposeUpload); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
	if _, err := svc.Store(1, nil, "photo.png", PurposeUpload); !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile for nil reader, got %v", err)
	}
	if _, err := svc.Store(1, strings.NewReader("x"), "  ", PurposeUpload); !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile for blank name, got %v", err)
	}
}

func TestAssetService_Resolve(t *testing.T) {
	root := t.TempDir()
	svc := NewAssetService(root)

	abs, err := svc.Resolve("7/photo.png")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if abs != filepath.Join(root, "7", "photo.png") {
		t.Fatalf("unexpected absolute path: %q", abs)
	}

	for _, bad := range []string{"", "   ", "../outside.png", "7/../../outside.png", "."} {
		if _, err := svc.Resolve(bad); !errors.Is(err, ErrInvalidAssetPath) {
			t.Fatalf("Resolve(%q): expected ErrInvalidAssetPath, got %v", bad, err)
		}
	}
}

func TestAssetService_Enhance_PassThrough(t *testing.T) {
	svc := NewAssetService(t.TempDir())

	out, err := svc.Enhance("7/photo.png")
	if err != nil {
		t.Fatalf("Enhance returned error: %v", err)
	}
	if out != "7/photo.png" {
		t.Fatalf("enhancement must be a pass-through, got %q", out)
	}

	if _, err := svc.Enhance("../escape.png"); err == nil {
		t.Fatalf("expected error for traversal path")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"photo.png", "photo.png"},
		{"my photo.png", "my_photo.png"},
		{"../../etc/passwd.png", "passwd.png"},
		{`..\..\evil.png`, "evil.png"},
		{"héllo wörld.png", "h_llo_w_rld.png"},
		{"...", "file"},
		{"..photo.png", "photo.png"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
