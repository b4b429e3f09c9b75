package models

import "strings"

// Locale is the storefront language
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleAR Locale = "ar"
)

// ParseLocale maps a language tag such as "ar-DZ" or "fr" onto a supported locale.
// Unknown values fall back to French.
func ParseLocale(tag string) (Locale, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	switch {
	case strings.HasPrefix(tag, "ar"):
		return LocaleAR, true
	case strings.HasPrefix(tag, "fr"):
		return LocaleFR, true
	}
	return LocaleFR, false
}

// Direction returns the text direction for the locale
func (l Locale) Direction() string {
	if l == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// Pick returns the Arabic text for the Arabic locale when it is set, otherwise the French one.
func (l Locale) Pick(fr, ar string) string {
	if l == LocaleAR && ar != "" {
		return ar
	}
	return fr
}
