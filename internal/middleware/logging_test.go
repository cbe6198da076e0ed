package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRequestBody(t *testing.T) {
	t.Run("non json body", func(t *testing.T) {
		assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("plain text"))
	})

	t.Run("image payload replaced with size marker", func(t *testing.T) {
		body := `{"image_base64": "` + strings.Repeat("A", 4096) + `"}`
		sanitized := sanitizeRequestBody(body)

		assert.Contains(t, sanitized, "[IMAGE:4096 bytes]")
		assert.NotContains(t, sanitized, "AAAA")
	})

	t.Run("long message truncated", func(t *testing.T) {
		body := `{"message": "` + strings.Repeat("curhat ", 100) + `"}`
		sanitized := sanitizeRequestBody(body)

		assert.Contains(t, sanitized, "...")
		assert.Less(t, len(sanitized), len(body))
	})

	t.Run("short message untouched", func(t *testing.T) {
		sanitized := sanitizeRequestBody(`{"message": "beli kopi 25k"}`)
		assert.Contains(t, sanitized, "beli kopi 25k")
	})
}
