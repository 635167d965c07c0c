package spotlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	for s, want := range map[string]APIVersion{
		"v3":     VersionV3,
		"legacy": VersionV3,
		"V4":     VersionV4,
		"4":      VersionV4,
	} {
		got, err := ParseVersion(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := ParseVersion("v5")
	require.ErrorIs(t, err, ErrInvalidVersion)
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "v3", VersionV3.String())
	assert.Equal(t, "v4", VersionV4.String())
	assert.Equal(t, "invalid", InvalidVersion.String())
}
