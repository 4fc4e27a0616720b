package annotation

import (
	"sort"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// DefaultLocale is used if the environment does not tell a locale.
const DefaultLocale = "en-US"

// DetectLocale returns the user's locale as an IETF language tag, as found in
// the environment.
func DetectLocale() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = DefaultLocale
		tracer().Infof("using default locale %v", userLocale)
	}
	return userLocale
}

// matchLocale selects the best of the available tags for a locale. If none
// of them is a reasonable match, English is preferred, if available.
func matchLocale(locale string, available []language.Tag) (int, language.Confidence) {
	if len(available) == 0 {
		return -1, language.No
	}
	// The first tag is the fallback of a matcher.
	order := make([]int, len(available))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return isEnglish(available[order[i]]) && !isEnglish(available[order[j]])
	})
	ordered := make([]language.Tag, len(order))
	for i, k := range order {
		ordered[i] = available[k]
	}
	_, i, confidence := language.NewMatcher(ordered).Match(language.Make(locale))
	return order[i], confidence
}

func isEnglish(t language.Tag) bool {
	base, _ := t.Base()
	return base.String() == "en"
}
