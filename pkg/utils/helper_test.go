package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
	assert.Equal(t, 25, ParseInt("25", 10))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "inception", Slugify("Inception"))
	assert.Equal(t, "blade-runner-2049", Slugify("Blade Runner 2049"))
	assert.Equal(t, "what-s-up-doc", Slugify("What's Up, Doc?"))
	assert.Equal(t, "spaced-out", Slugify("  spaced   out  "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}
