// Package assets turns media references into representations the report
// renderer can embed directly. Failures never propagate: a bad reference is
// logged and resolved to nil, and the caller omits that asset.
package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"healieve/health-app/internal/logger"
	"healieve/health-app/internal/storage"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrPixelWidth = 220
	s3Prefix     = "s3://"
)

// Resolver resolves asset references against a local static root and,
// optionally, an object store for bucket-hosted media.
type Resolver struct {
	root  string
	store storage.ObjectStore // may be nil
	log   *logger.Logger
}

// NewResolver builds a resolver rooted at the static asset directory.
// store may be nil when no bucket is configured.
func NewResolver(root string, store storage.ObjectStore, log *logger.Logger) *Resolver {
	return &Resolver{root: root, store: store, log: log}
}

// Resolve turns a reference into an embeddable value:
//   - http(s) URLs pass through unchanged (the renderer fetches them itself)
//   - s3://key references are downloaded from the object store and inlined
//   - anything else is read under the local root and inlined as a data URI
//
// Nil means the asset is unavailable and should be omitted.
func (r *Resolver) Resolve(ctx context.Context, ref string) *string {
	if ref == "" {
		return nil
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return &ref
	}
	if strings.HasPrefix(lower, s3Prefix) {
		return r.resolveObject(ctx, ref[len(s3Prefix):])
	}
	return r.resolveLocal(ref)
}

func (r *Resolver) resolveLocal(ref string) *string {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(ref, "/")))
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		r.log.Warn("asset reference escapes the asset root", "ref", ref)
		return nil
	}
	path := filepath.Join(r.root, rel)
	b, err := os.ReadFile(path)
	if err != nil {
		r.log.Warn("asset read failed", "ref", ref, "error", err)
		return nil
	}
	uri := dataURI(b, mimeFromExt(filepath.Ext(path)))
	return &uri
}

func (r *Resolver) resolveObject(ctx context.Context, key string) *string {
	if r.store == nil {
		r.log.Warn("asset references object store but none is configured", "key", key)
		return nil
	}
	b, contentType, err := r.store.GetObject(ctx, key)
	if err != nil {
		r.log.Warn("asset fetch from object store failed", "key", key, "error", err)
		return nil
	}
	if contentType == "" {
		contentType = "image/" + mimeFromExt(filepath.Ext(key))
	}
	uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(b))
	return &uri
}

// QRCode renders text (typically a demo-video URL) as a scannable PNG and
// returns it as a data URI. Nil on encode failure.
func (r *Resolver) QRCode(text string) *string {
	if text == "" {
		return nil
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		r.log.Warn("qr encode failed", "text", text, "error", err)
		return nil
	}
	png, err := q.PNG(qrPixelWidth)
	if err != nil {
		r.log.Warn("qr render failed", "text", text, "error", err)
		return nil
	}
	uri := dataURI(png, "png")
	return &uri
}

func dataURI(b []byte, mime string) string {
	return fmt.Sprintf("data:image/%s;base64,%s", mime, base64.StdEncoding.EncodeToString(b))
}

// mimeFromExt maps a file extension to the image MIME subtype, with the one
// special case jpg -> jpeg.
func mimeFromExt(ext string) string {
	e := strings.ToLower(strings.TrimPrefix(ext, "."))
	if e == "jpg" {
		return "jpeg"
	}
	return e
}
