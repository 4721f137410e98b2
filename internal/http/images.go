package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/storage"
)

const maxImageBytes = 5 << 20

func (h *Handler) uploadImage(c *gin.Context) {
	if h.images == nil {
		h.fail(c, storage.ErrNotConfigured)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respond(c, http.StatusBadRequest, "Field image is required", nil)
		return
	}
	if file.Size > maxImageBytes {
		respond(c, http.StatusBadRequest, "Image exceeds 5MB", nil)
		return
	}
	key, contentType, ok := storage.ImageKey(h.imagePrefix, file.Filename)
	if !ok {
		respond(c, http.StatusBadRequest, "Unsupported image type", nil)
		return
	}

	f, err := file.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	url, err := h.images.Upload(c.Request.Context(), key, f, contentType)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "Image uploaded", gin.H{"data": gin.H{"url": url}})
}

// removeImage deletes an uploaded header image once its article is gone. URLs that were not
// produced by our storage are left alone.
func (h *Handler) removeImage(ctx context.Context, url string) {
	if h.images == nil {
		return
	}
	key, ok := h.images.KeyOf(url)
	if !ok {
		return
	}
	if err := h.images.Delete(ctx, key); err != nil {
		h.logger.WithError(err).WithField("key", key).Warn("remove header image")
	}
}
