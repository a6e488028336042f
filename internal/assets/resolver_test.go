package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"healieve/health-app/internal/logger"
)

func TestResolve_RemoteURLPassesThrough(t *testing.T) {
	r := NewResolver(t.TempDir(), nil, logger.Nop())
	got := r.Resolve(context.Background(), "https://example.com/a.png")
	if got == nil || *got != "https://example.com/a.png" {
		t.Fatalf("remote URL should pass through unchanged, got %v", got)
	}
	got = r.Resolve(context.Background(), "HTTP://example.com/b.jpg")
	if got == nil {
		t.Fatalf("scheme match should be case-insensitive")
	}
}

func TestResolve_LocalFileBecomesDataURI(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "exercises"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "exercises", "pushup.jpg"), []byte("fakejpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(dir, nil, logger.Nop())
	got := r.Resolve(context.Background(), "/exercises/pushup.jpg")
	if got == nil {
		t.Fatalf("expected data URI for existing file")
	}
	if !strings.HasPrefix(*got, "data:image/jpeg;base64,") {
		t.Fatalf("jpg should map to jpeg mime, got %q", *got)
	}
}

func TestResolve_TraversalOutsideRootReturnsNil(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "static")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(parent, "secret.png"), []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(root, nil, logger.Nop())
	for _, ref := range []string{"../secret.png", "/../secret.png", "a/../../secret.png"} {
		if got := r.Resolve(context.Background(), ref); got != nil {
			t.Fatalf("ref %q escapes the root and should resolve to nil, got %v", ref, got)
		}
	}
}

func TestResolve_MissingFileReturnsNil(t *testing.T) {
	r := NewResolver(t.TempDir(), nil, logger.Nop())
	if got := r.Resolve(context.Background(), "/nope/missing.png"); got != nil {
		t.Fatalf("missing file should resolve to nil, got %v", got)
	}
}

func TestResolve_EmptyRefReturnsNil(t *testing.T) {
	r := NewResolver(t.TempDir(), nil, logger.Nop())
	if got := r.Resolve(context.Background(), ""); got != nil {
		t.Fatalf("empty ref should resolve to nil")
	}
}

type stubStore struct {
	body        []byte
	contentType string
	err         error
}

func (s *stubStore) GetObject(ctx context.Context, key string) ([]byte, string, error) {
	return s.body, s.contentType, s.err
}
func (s *stubStore) GeneratePresignedUploadURL(ctx context.Context, key, ct string, exp time.Duration) (string, error) {
	return "", nil
}
func (s *stubStore) GeneratePresignedDownloadURL(ctx context.Context, key string, exp time.Duration) (string, error) {
	return "", nil
}
func (s *stubStore) DeleteObject(ctx context.Context, key string) error { return nil }

func TestResolve_ObjectStoreRef(t *testing.T) {
	r := NewResolver(t.TempDir(), &stubStore{body: []byte("png"), contentType: "image/png"}, logger.Nop())
	got := r.Resolve(context.Background(), "s3://media/squat.png")
	if got == nil || !strings.HasPrefix(*got, "data:image/png;base64,") {
		t.Fatalf("object store ref should inline as data URI, got %v", got)
	}
}

func TestResolve_ObjectStoreFailureReturnsNil(t *testing.T) {
	r := NewResolver(t.TempDir(), &stubStore{err: errors.New("no such key")}, logger.Nop())
	if got := r.Resolve(context.Background(), "s3://media/missing.png"); got != nil {
		t.Fatalf("object store failure should resolve to nil")
	}
}

func TestResolve_ObjectStoreRefWithoutStore(t *testing.T) {
	r := NewResolver(t.TempDir(), nil, logger.Nop())
	if got := r.Resolve(context.Background(), "s3://media/a.png"); got != nil {
		t.Fatalf("s3 ref without a store should resolve to nil")
	}
}

func TestQRCode(t *testing.T) {
	r := NewResolver(t.TempDir(), nil, logger.Nop())
	got := r.QRCode("https://youtu.be/demo")
	if got == nil || !strings.HasPrefix(*got, "data:image/png;base64,") {
		t.Fatalf("expected PNG data URI, got %v", got)
	}
	if r.QRCode("") != nil {
		t.Fatalf("empty text should yield nil")
	}
}
