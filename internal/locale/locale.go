// Package locale resolves the site's display language. The site is
// Hebrew-first with an English fallback, so anything we cannot recognize
// resolves to Hebrew.
package locale

import "strings"

type Locale string

const (
	Hebrew  Locale = "he"
	English Locale = "en"

	Default = Hebrew
)

var supported = map[Locale]struct{}{
	Hebrew:  {},
	English: {},
}

// Resolve maps a free-form locale string to a supported Locale.
// Matching is case-insensitive; empty or unrecognized input yields Default.
func Resolve(input string) Locale {
	l := Locale(strings.ToLower(strings.TrimSpace(input)))
	if _, ok := supported[l]; ok {
		return l
	}
	return Default
}

// Supported lists the locales the site serves, Hebrew first.
func Supported() []Locale {
	return []Locale{Hebrew, English}
}
