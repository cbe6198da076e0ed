package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 26)
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	t.Run("nil file", func(t *testing.T) {
		assert.ErrorIs(t, u.ValidateImageFile(nil), ErrNoFile)
	})

	t.Run("valid image", func(t *testing.T) {
		file := &multipart.FileHeader{
			Filename: "receipt.jpg",
			Size:     1024,
			Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
		}
		assert.NoError(t, u.ValidateImageFile(file))
	})

	t.Run("oversized file", func(t *testing.T) {
		file := &multipart.FileHeader{
			Filename: "receipt.jpg",
			Size:     6 * 1024 * 1024,
			Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
		}
		assert.ErrorIs(t, u.ValidateImageFile(file), ErrFileTooLarge)
	})

	t.Run("not an image", func(t *testing.T) {
		file := &multipart.FileHeader{
			Filename: "receipt.pdf",
			Size:     1024,
			Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
		}
		assert.ErrorIs(t, u.ValidateImageFile(file), ErrNotAnImage)
	})
}
