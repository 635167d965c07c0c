package spotlight

import (
	"net/url"
	"path"
	"strings"
)

// SecureScheme is the only URI scheme accepted for image assets.
const SecureScheme = "https://"

// ImageRecord is one normalized image from a delivery batch, independent of
// which API version produced it.
//
// Checksum (base64 sha256) and SizeBytes are populated together or not at
// all: the v3 API supplies both for every image it serves, the v4 API
// supplies neither.
type ImageRecord struct {
	SourceURI string
	Checksum  string
	SizeBytes int64
	FileName  string
	Title     string
	Copyright string
}

// HasIntegrity reports whether the record carries checksum and size metadata
// a downloader can verify against.
func (r ImageRecord) HasIntegrity() bool {
	return r.Checksum != "" && r.SizeBytes > 0
}

// FileNameFromURI derives a local file name from the last path segment of an
// image URI, with any query suffix stripped. Returns "" when the URI has no
// usable path segment.
func FileNameFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Path == "" {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// Dedupe removes records whose SourceURI was already seen, comparing
// case-insensitively. The first occurrence wins and input order is preserved.
// Records with an empty URI are dropped outright.
func Dedupe(records []ImageRecord) []ImageRecord {
	seen := make(map[string]struct{}, len(records))
	kept := make([]ImageRecord, 0, len(records))
	for _, r := range records {
		if r.SourceURI == "" {
			continue
		}
		key := strings.ToLower(r.SourceURI)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, r)
	}
	return kept
}
