package spotlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSystemLocale(t *testing.T, tag string) {
	t.Helper()
	t.Setenv("LANGUAGE", tag)
	t.Setenv("LC_ALL", tag+".UTF-8")
	t.Setenv("LC_MESSAGES", tag+".UTF-8")
	t.Setenv("LANG", tag+".UTF-8")
}

func TestResolveLocaleOverrideWithRegion(t *testing.T) {
	loc, err := ResolveLocale("fr-CA")
	require.NoError(t, err)
	assert.Equal(t, "fr-CA", loc.Tag)
	assert.Equal(t, "CA", loc.Region)
}

func TestResolveLocaleRegionIsUppercased(t *testing.T) {
	loc, err := ResolveLocale("de-de")
	require.NoError(t, err)
	assert.Equal(t, "de-de", loc.Tag)
	assert.Equal(t, "DE", loc.Region)
}

func TestResolveLocaleBareLanguageUsesSystemRegion(t *testing.T) {
	setSystemLocale(t, "en_US")

	loc, err := ResolveLocale("fr")
	require.NoError(t, err)
	assert.Equal(t, "fr", loc.Tag)
	// The region must come from the machine, never from the language tag.
	assert.Equal(t, "US", loc.Region)
}

func TestResolveLocaleSystemFallback(t *testing.T) {
	setSystemLocale(t, "pt_BR")

	loc, err := ResolveLocale("")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", loc.Tag)
	assert.Equal(t, "BR", loc.Region)
}
