package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned by handlers when no object storage is set up.
var ErrNotConfigured = errors.New("storage not configured")

// Service stores article header images in remote object storage.
type Service interface {
	// Upload stores body under key and returns the URL clients can fetch it from.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyOf reports the object key behind a URL returned by Upload.
	KeyOf(url string) (string, bool)
}

var allowedImageExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageKey derives a fresh object key for an uploaded file name. It reports false when the
// extension is not an accepted image type.
func ImageKey(prefix, filename string) (key, contentType string, ok bool) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok = allowedImageExt[ext]
	if !ok {
		return "", "", false
	}
	key = uuid.NewString() + ext
	if p := strings.Trim(prefix, "/"); p != "" {
		key = p + "/" + key
	}
	return key, contentType, true
}
