package spotlight

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures warnings so tests can assert on skip reasons.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debugf(msg string, v ...interface{}) {}

func (l *recordingLogger) Warnf(msg string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(msg, v...))
}

// batchBody wraps pre-encoded inner documents into the batchrsp envelope,
// each nested as a JSON string the way the delivery API serves them.
func batchBody(t *testing.T, inners ...string) []byte {
	t.Helper()
	items := make([]map[string]string, 0, len(inners))
	for _, inner := range inners {
		items = append(items, map[string]string{"item": inner})
	}
	body, err := json.Marshal(map[string]interface{}{
		"batchrsp": map[string]interface{}{"items": items},
	})
	require.NoError(t, err)
	return body
}

func v4Item(t *testing.T, landscape, portrait, hover, title, copyright string) string {
	t.Helper()
	doc, err := json.Marshal(map[string]interface{}{
		"ad": map[string]interface{}{
			"iconHoverText":  hover,
			"title":          title,
			"copyright":      copyright,
			"landscapeImage": map[string]string{"asset": landscape},
			"portraitImage":  map[string]string{"asset": portrait},
		},
	})
	require.NoError(t, err)
	return string(doc)
}

func v3Item(t *testing.T, img map[string]string, title, copyright string) string {
	t.Helper()
	doc, err := json.Marshal(map[string]interface{}{
		"ad": map[string]interface{}{
			"title_text":                     map[string]string{"tx": title},
			"copyright_text":                 map[string]string{"tx": copyright},
			"image_fullscreen_001_landscape": img,
			"image_fullscreen_001_portrait":  img,
		},
	})
	require.NoError(t, err)
	return string(doc)
}

func TestParseBatchV4SkipsBadItemsKeepsGoodOnes(t *testing.T) {
	log := &recordingLogger{}
	body := batchBody(t,
		v4Item(t, "https://cdn.example.com/a.jpg", "https://cdn.example.com/a_p.jpg", "First\r\nMore", "", "© One"),
		`{"nonsense":true}`,
		v4Item(t, "http://cdn.example.com/insecure.jpg", "", "", "", ""),
		v4Item(t, "https://cdn.example.com/b.jpg", "https://cdn.example.com/b_p.jpg", "", "Second", "© Two"),
		v4Item(t, "", "", "", "", ""),
	)

	records, err := ParseBatch(body, VersionV4, false, log)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "https://cdn.example.com/a.jpg", records[0].SourceURI)
	assert.Equal(t, "First", records[0].Title)
	assert.Equal(t, "© One", records[0].Copyright)
	assert.Equal(t, "a.jpg", records[0].FileName)
	assert.Equal(t, "https://cdn.example.com/b.jpg", records[1].SourceURI)
	assert.Equal(t, "Second", records[1].Title, "title field is the fallback when hover text is empty")

	// v4 never supplies integrity metadata
	assert.False(t, records[0].HasIntegrity())
	assert.Empty(t, records[0].Checksum)
	assert.Zero(t, records[0].SizeBytes)

	// insecure URI + missing asset warned, the ad-less entry was silent
	require.Len(t, log.warnings, 2)
	assert.Contains(t, log.warnings[0], "does not use https")
	assert.Contains(t, log.warnings[1], "no image for the requested orientation")
}

func TestParseBatchEntryWithoutNestedPayload(t *testing.T) {
	log := &recordingLogger{}
	body := []byte(`{"batchrsp":{"items":[{"other":1},{"item":42},{"item":` +
		mustQuote(t, v4Item(t, "https://cdn.example.com/ok.jpg", "", "", "Ok", "")) + `}]}}`)

	records, err := ParseBatch(body, VersionV4, false, log)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://cdn.example.com/ok.jpg", records[0].SourceURI)
	require.Len(t, log.warnings, 2)
	assert.Contains(t, log.warnings[0], "no nested item payload")
	assert.Contains(t, log.warnings[1], "no nested item payload")
}

func mustQuote(t *testing.T, s string) string {
	t.Helper()
	quoted, err := json.Marshal(s)
	require.NoError(t, err)
	return string(quoted)
}

func TestParseBatchOrientationSelection(t *testing.T) {
	log := &recordingLogger{}
	body := batchBody(t,
		v4Item(t, "https://cdn.example.com/wide.jpg", "https://cdn.example.com/tall.jpg", "", "Both", ""),
	)

	landscape, err := ParseBatch(body, VersionV4, false, log)
	require.NoError(t, err)
	require.Len(t, landscape, 1)
	assert.Equal(t, "https://cdn.example.com/wide.jpg", landscape[0].SourceURI)

	portrait, err := ParseBatch(body, VersionV4, true, log)
	require.NoError(t, err)
	require.Len(t, portrait, 1)
	assert.Equal(t, "https://cdn.example.com/tall.jpg", portrait[0].SourceURI)
}

func TestParseBatchV3FullTriple(t *testing.T) {
	log := &recordingLogger{}
	body := batchBody(t, v3Item(t, map[string]string{
		"u":        "https://cdn.example.com/legacy.jpg",
		"sha256":   "1HXWsUBUHpKQ3cUKTGFR2lIhT+EeHVJ2uWVsOAKuKI4=",
		"fileSize": "510159",
	}, "Legacy Title", "© Legacy"))

	records, err := ParseBatch(body, VersionV3, false, log)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "https://cdn.example.com/legacy.jpg", r.SourceURI)
	assert.Equal(t, "1HXWsUBUHpKQ3cUKTGFR2lIhT+EeHVJ2uWVsOAKuKI4=", r.Checksum)
	assert.Equal(t, int64(510159), r.SizeBytes)
	assert.Equal(t, "legacy.jpg", r.FileName)
	assert.Equal(t, "Legacy Title", r.Title)
	assert.Equal(t, "© Legacy", r.Copyright)
	assert.True(t, r.HasIntegrity())
	assert.Empty(t, log.warnings)
}

func TestParseBatchV3RequiresIntegrityTriple(t *testing.T) {
	full := map[string]string{
		"u":        "https://cdn.example.com/legacy.jpg",
		"sha256":   "1HXWsUBUHpKQ3cUKTGFR2lIhT+EeHVJ2uWVsOAKuKI4=",
		"fileSize": "510159",
	}

	for _, tt := range []struct {
		name     string
		drop     string
		override string
	}{
		{name: "missing uri", drop: "u"},
		{name: "missing checksum", drop: "sha256"},
		{name: "missing file size", drop: "fileSize"},
		{name: "non-numeric file size", drop: "", override: "big"},
		{name: "non-positive file size", drop: "", override: "0"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			img := map[string]string{}
			for k, v := range full {
				img[k] = v
			}
			if tt.drop != "" {
				delete(img, tt.drop)
			}
			if tt.override != "" {
				img["fileSize"] = tt.override
			}

			log := &recordingLogger{}
			records, err := ParseBatch(batchBody(t, v3Item(t, img, "T", "C")), VersionV3, false, log)
			require.NoError(t, err)
			assert.Empty(t, records)
			require.Len(t, log.warnings, 1)
		})
	}
}

func TestParseBatchStructuralErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		body string
	}{
		{name: "malformed outer json", body: `{"batchrsp": `},
		{name: "missing envelope", body: `{"status":"ok"}`},
		{name: "envelope wrong type", body: `{"batchrsp": 7}`},
		{name: "missing items", body: `{"batchrsp":{}}`},
		{name: "items wrong type", body: `{"batchrsp":{"items":"nope"}}`},
		{name: "malformed nested json", body: `{"batchrsp":{"items":[{"item":"{\"ad\": "}]}}`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			_, err := ParseBatch([]byte(tt.body), VersionV4, false, log)
			require.Error(t, err)

			var formatErr *DataFormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestParseBatchIsPure(t *testing.T) {
	body := batchBody(t,
		v4Item(t, "https://cdn.example.com/a.jpg", "", "A", "", ""),
		v4Item(t, "https://cdn.example.com/b.jpg", "", "B", "", ""),
	)

	first, err := ParseBatch(body, VersionV4, false, &recordingLogger{})
	require.NoError(t, err)
	second, err := ParseBatch(body, VersionV4, false, &recordingLogger{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
