package spotlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileNameFromURI(t *testing.T) {
	for _, tt := range []struct {
		uri  string
		want string
	}{
		{uri: "https://cdn.example.com/images/sunset.jpg?sig=abc", want: "sunset.jpg"},
		{uri: "https://cdn.example.com/images/sunset.jpg", want: "sunset.jpg"},
		{uri: "https://cdn.example.com/sunset.jpg#frag", want: "sunset.jpg"},
		{uri: "https://cdn.example.com/", want: ""},
		{uri: "https://cdn.example.com", want: ""},
		{uri: "", want: ""},
	} {
		assert.Equal(t, tt.want, FileNameFromURI(tt.uri), "uri %q", tt.uri)
	}
}

func TestDedupeIsCaseInsensitiveFirstWins(t *testing.T) {
	records := []ImageRecord{
		{SourceURI: "https://A/img.jpg", Title: "first"},
		{SourceURI: "https://a/IMG.jpg", Title: "duplicate"},
		{SourceURI: "https://B/x.png", Title: "second"},
	}

	kept := Dedupe(records)
	assert.Equal(t, []ImageRecord{
		{SourceURI: "https://A/img.jpg", Title: "first"},
		{SourceURI: "https://B/x.png", Title: "second"},
	}, kept)
}

func TestDedupeDropsEmptyURIs(t *testing.T) {
	records := []ImageRecord{
		{SourceURI: ""},
		{SourceURI: "https://cdn.example.com/a.jpg"},
		{SourceURI: ""},
	}

	kept := Dedupe(records)
	assert.Len(t, kept, 1)
	assert.Equal(t, "https://cdn.example.com/a.jpg", kept[0].SourceURI)
}

func TestHasIntegrity(t *testing.T) {
	assert.False(t, ImageRecord{}.HasIntegrity())
	assert.False(t, ImageRecord{Checksum: "abc"}.HasIntegrity())
	assert.False(t, ImageRecord{SizeBytes: 10}.HasIntegrity())
	assert.True(t, ImageRecord{Checksum: "abc", SizeBytes: 10}.HasIntegrity())
}
