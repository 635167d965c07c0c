package spotlight

import (
	"strings"

	golocale "github.com/Xuanwo/go-locale"
	"golang.org/x/text/language"
)

// defaultRegion is used when the system locale carries no usable region.
const defaultRegion = "US"

// Locale is the pair of request parameters derived from the user's locale: a
// language tag such as "en-US" and an uppercase two-letter region code.
type Locale struct {
	Tag    string
	Region string
}

// ResolveLocale derives the locale tag and region code for a request.
// override takes precedence over the system locale when non-empty. When the
// tag has no region part, the region comes from the system's own settings,
// never from the language itself ("fr" must not become region "FR").
func ResolveLocale(override string) (Locale, error) {
	tag := override
	if tag == "" {
		sys, err := systemLocale()
		if err != nil {
			return Locale{}, err
		}
		tag = sys.String()
	}

	if i := strings.LastIndex(tag, "-"); i >= 0 {
		return Locale{Tag: tag, Region: strings.ToUpper(tag[i+1:])}, nil
	}

	sys, err := systemLocale()
	if err != nil {
		return Locale{}, err
	}
	return Locale{Tag: tag, Region: regionOf(sys)}, nil
}

func systemLocale() (language.Tag, error) {
	tag, err := golocale.Detect()
	if err != nil {
		return language.Und, &ConfigurationError{Reason: "cannot determine system locale", Err: err}
	}
	return tag, nil
}

func regionOf(tag language.Tag) string {
	if region, conf := tag.Region(); conf > language.No && region.IsCountry() {
		return region.String()
	}
	return defaultRegion
}
