package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageKey(t *testing.T) {
	key, contentType, ok := ImageKey("/articles/", "Cover.PNG")
	assert.True(t, ok)
	assert.Equal(t, "image/png", contentType)
	assert.True(t, strings.HasPrefix(key, "articles/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	other, _, _ := ImageKey("articles", "Cover.PNG")
	assert.NotEqual(t, key, other)

	bare, _, ok := ImageKey("", "a.webp")
	assert.True(t, ok)
	assert.False(t, strings.Contains(bare, "/"))

	_, _, ok = ImageKey("articles", "script.sh")
	assert.False(t, ok)
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/articles/a.png", ObjectURL("https://cdn.example.com/", "/articles/a.png"))
}

func TestKeyFromURL(t *testing.T) {
	key, ok := KeyFromURL("https://cdn.example.com/", "https://cdn.example.com/articles/a.png")
	assert.True(t, ok)
	assert.Equal(t, "articles/a.png", key)

	_, ok = KeyFromURL("https://cdn.example.com", "https://elsewhere.example.com/articles/a.png")
	assert.False(t, ok)

	_, ok = KeyFromURL("https://cdn.example.com", "https://cdn.example.com/")
	assert.False(t, ok)

	_, ok = KeyFromURL("", "https://cdn.example.com/a.png")
	assert.False(t, ok)
}
