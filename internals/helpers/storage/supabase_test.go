package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "amina_s_photo.jpg", SanitizeFilename("amina's photo.jpg"))
	assert.Equal(t, "clean-name_01.png", SanitizeFilename("clean-name_01.png"))
	assert.Equal(t, ".._.._", SanitizeFilename("../../"))
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("borehole site.jpg", "webp")
	b := GenerateUniqueFilename("borehole site.jpg", "webp")

	assert.NotEqual(t, a, b, "two uploads of the same file must not collide")
	assert.True(t, strings.HasSuffix(a, "-borehole_site.webp"))
	assert.NotContains(t, a, " ")
}

func TestGenerateUniqueFilename_EmptyName(t *testing.T) {
	got := GenerateUniqueFilename("", "webp")
	assert.True(t, strings.HasSuffix(got, "-photo.webp"))
}
