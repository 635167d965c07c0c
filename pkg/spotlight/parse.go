package spotlight

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The delivery envelope is the same for both API generations: a "batchrsp"
// object holding an "items" array, where each entry wraps one more JSON
// document encoded as a string. Only the inner document differs by version.

// ParseBatch parses a raw delivery response into normalized image records,
// preserving batch order. A malformed envelope or nested document fails the
// whole batch with a DataFormatError; entries that merely lack fields are
// skipped with a warning so one bad entry cannot poison the batch.
// ParseBatch is a pure function of its inputs apart from the log side channel.
func ParseBatch(body []byte, version APIVersion, portrait bool, log Logger) ([]ImageRecord, error) {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return nil, &DataFormatError{Reason: "malformed response body", Err: err}
	}
	rsp, ok := outer["batchrsp"]
	if !ok {
		return nil, &DataFormatError{Reason: `response has no "batchrsp" envelope`}
	}

	var envelope struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(rsp, &envelope); err != nil {
		return nil, &DataFormatError{Reason: "malformed batchrsp envelope", Err: err}
	}
	if envelope.Items == nil {
		return nil, &DataFormatError{Reason: `batchrsp has no "items" array`}
	}

	records := make([]ImageRecord, 0, len(envelope.Items))
	for i, entry := range envelope.Items {
		var wrapper struct {
			Item *string `json:"item"`
		}
		if err := json.Unmarshal(entry, &wrapper); err != nil || wrapper.Item == nil {
			log.Warnf("skipping batch entry %d: no nested item payload", i)
			continue
		}

		var inner map[string]json.RawMessage
		if err := json.Unmarshal([]byte(*wrapper.Item), &inner); err != nil {
			return nil, &DataFormatError{
				Reason: fmt.Sprintf("malformed nested payload in batch entry %d", i),
				Err:    err,
			}
		}
		ad, ok := inner["ad"]
		if !ok {
			// Not an image entry; the API mixes other content into the
			// same batch.
			continue
		}

		var record ImageRecord
		var skip string
		switch version {
		case VersionV4:
			record, skip = extractV4(ad, portrait)
		case VersionV3:
			record, skip = extractV3(ad, portrait)
		default:
			return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
		}
		if skip != "" {
			log.Warnf("skipping batch entry %d: %s", i, skip)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

type v4Image struct {
	Asset string `json:"asset"`
}

type v4Ad struct {
	IconHoverText  string  `json:"iconHoverText"`
	Title          string  `json:"title"`
	Copyright      string  `json:"copyright"`
	PortraitImage  v4Image `json:"portraitImage"`
	LandscapeImage v4Image `json:"landscapeImage"`
}

// extractV4 pulls one record out of a v4 ad object. The v4 API carries no
// integrity metadata, so Checksum and SizeBytes stay empty. A non-empty skip
// reason is returned instead of a record when required fields are missing.
func extractV4(raw json.RawMessage, portrait bool) (ImageRecord, string) {
	var ad v4Ad
	if err := json.Unmarshal(raw, &ad); err != nil {
		return ImageRecord{}, "ad object has unexpected shape: " + err.Error()
	}

	uri := ad.LandscapeImage.Asset
	if portrait {
		uri = ad.PortraitImage.Asset
	}
	if uri == "" {
		return ImageRecord{}, "ad object has no image for the requested orientation"
	}
	if !strings.HasPrefix(uri, SecureScheme) {
		return ImageRecord{}, "image URI does not use https: " + uri
	}

	// The hover text holds "Title\r\nDescription"; only the first line is
	// the display title.
	title := ad.IconHoverText
	if i := strings.IndexAny(title, "\r\n"); i >= 0 {
		title = title[:i]
	}
	if title == "" {
		title = ad.Title
	}

	return ImageRecord{
		SourceURI: uri,
		FileName:  FileNameFromURI(uri),
		Title:     title,
		Copyright: ad.Copyright,
	}, ""
}

type v3Text struct {
	Tx string `json:"tx"`
}

type v3Image struct {
	URL      string `json:"u"`
	Sha256   string `json:"sha256"`
	FileSize string `json:"fileSize"`
}

type v3Ad struct {
	TitleText      v3Text  `json:"title_text"`
	CopyrightText  v3Text  `json:"copyright_text"`
	LandscapeImage v3Image `json:"image_fullscreen_001_landscape"`
	PortraitImage  v3Image `json:"image_fullscreen_001_portrait"`
}

// extractV3 pulls one record out of a legacy v3 ad object. v3 images come
// with a checksum and a file size; a record is emitted only when the full
// integrity triple is present and the size parses as a positive integer.
func extractV3(raw json.RawMessage, portrait bool) (ImageRecord, string) {
	var ad v3Ad
	if err := json.Unmarshal(raw, &ad); err != nil {
		return ImageRecord{}, "ad object has unexpected shape: " + err.Error()
	}

	img := ad.LandscapeImage
	if portrait {
		img = ad.PortraitImage
	}
	if img.URL == "" {
		return ImageRecord{}, "ad object has no image for the requested orientation"
	}
	if !strings.HasPrefix(img.URL, SecureScheme) {
		return ImageRecord{}, "image URI does not use https: " + img.URL
	}
	if img.Sha256 == "" {
		return ImageRecord{}, "image has no sha256 checksum"
	}
	size, err := strconv.ParseInt(img.FileSize, 10, 64)
	if err != nil || size <= 0 {
		return ImageRecord{}, "image has no usable file size: " + strconv.Quote(img.FileSize)
	}

	return ImageRecord{
		SourceURI: img.URL,
		Checksum:  img.Sha256,
		SizeBytes: size,
		FileName:  FileNameFromURI(img.URL),
		Title:     ad.TitleText.Tx,
		Copyright: ad.CopyrightText.Tx,
	}, ""
}
