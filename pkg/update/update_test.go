package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseMessageNewerVersion(t *testing.T) {
	message, err := releaseMessage("0.0.1", "v0.2.0")
	require.NoError(t, err)
	assert.Contains(t, message, "v0.2.0")
	assert.Contains(t, message, "0.0.1")
}

func TestReleaseMessageUpToDate(t *testing.T) {
	message, err := releaseMessage("0.2.0", "v0.2.0")
	require.NoError(t, err)
	assert.Empty(t, message)
}

func TestReleaseMessageBadTag(t *testing.T) {
	_, err := releaseMessage("0.0.1", "not-a-version")
	require.Error(t, err)
}
