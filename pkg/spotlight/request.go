package spotlight

import (
	"fmt"
	"net/url"
	"time"
)

// Endpoint constants for the two delivery API generations. The field names
// and identifiers are contractual; they must match what the Windows shell
// client sends or the service returns empty batches.
const (
	v4Endpoint   = "https://fd.api.iris.microsoft.com/v4/api/selection"
	v4Placement  = "88000820"
	v4BatchCount = "4"

	v3Endpoint    = "https://arc.msn.com/v3/Delivery/Placement"
	v3PlacementID = "209567"
	v3ClientUA    = "WindowsShellClient/0"
	v3TimeFormat  = "2006-01-02T15:04:05Z"
)

// RequestURL builds the full request target for one batch of images.
// Orientation does not appear in either URL; both APIs return landscape and
// portrait variants in the same batch and the parser picks one.
func RequestURL(version APIVersion, loc Locale, now time.Time) (string, error) {
	switch version {
	case VersionV4:
		u, err := url.Parse(v4Endpoint)
		if err != nil {
			return "", err
		}
		q := u.Query()
		q.Set("placement", v4Placement)
		q.Set("bcnt", v4BatchCount)
		q.Set("country", loc.Region)
		q.Set("locale", loc.Tag)
		q.Set("fmt", "json")
		u.RawQuery = q.Encode()
		return u.String(), nil

	case VersionV3:
		u, err := url.Parse(v3Endpoint)
		if err != nil {
			return "", err
		}
		q := u.Query()
		q.Set("pid", v3PlacementID)
		q.Set("fmt", "json")
		q.Set("rafb", "0")
		q.Set("ua", v3ClientUA)
		q.Set("cdm", "1")
		q.Set("disphorzres", "9999")
		q.Set("dispvertres", "9999")
		q.Set("lo", "80217")
		q.Set("pl", loc.Tag)
		q.Set("lc", loc.Tag)
		q.Set("ctry", loc.Region)
		q.Set("time", now.UTC().Format(v3TimeFormat))
		u.RawQuery = q.Encode()
		return u.String(), nil

	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
}
