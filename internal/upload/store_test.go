package upload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/static/uploads")

	url, err := store.Save(context.Background(), "kitchens/7/0_kitchen.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/uploads/kitchens/7/"))
	assert.True(t, strings.HasSuffix(url, "_0_kitchen.jpg"))

	rel := strings.TrimPrefix(url, "/static/uploads/")
	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), content)
}

func TestDiskStore_Save_Rejections(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")
	ctx := context.Background()

	_, err := store.Save(ctx, "a.jpg", nil, "image/jpeg")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = store.Save(ctx, "a.pdf", []byte("x"), "application/pdf")
	assert.ErrorIs(t, err, ErrInvalidMimeType)

	_, err = store.Save(ctx, "a.jpg", make([]byte, MaxFileSize+1), "image/jpeg")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "my-photo--1-.jpg", sanitizeName("My Photo (1).jpg"))
	assert.Equal(t, "a_b-c.png", sanitizeName("a_b-c.png"))
}
