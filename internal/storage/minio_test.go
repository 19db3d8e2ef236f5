package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := objectKey("kalita_fotografia_casamento", "Foto Final.PNG")

	assert.True(t, strings.HasPrefix(key, "kalita_fotografia_casamento/"))
	assert.True(t, strings.HasSuffix(key, ".png"), "extension should be lowercased: %s", key)

	// The basename is a fresh UUID, never the client filename.
	assert.NotContains(t, key, "Foto")
}

func TestObjectKey_Unique(t *testing.T) {
	a := objectKey("folder", "same.jpg")
	b := objectKey("folder", "same.jpg")
	assert.NotEqual(t, a, b)
}

func TestObjectKey_NoExtension(t *testing.T) {
	key := objectKey("folder", "raw")
	assert.False(t, strings.Contains(key, "."), "no extension expected: %s", key)
}
