package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Direction is the text direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var rtlScripts = map[string]struct{}{
	"Arab": {},
	"Hebr": {},
	"Thaa": {},
	"Syrc": {},
	"Nkoo": {},
	"Adlm": {},
}

// Normalize canonicalises a BCP 47 tag and reduces it to its base language,
// so "ar-SA" and "AR_sa" both become "ar". Unparseable input returns "".
func Normalize(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// DirectionOf reports the writing direction of locale based on its likely script.
func DirectionOf(locale string) Direction {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return LTR
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return LTR
	}
	script, _ := tag.Script()
	if _, ok := rtlScripts[script.String()]; ok {
		return RTL
	}
	return LTR
}

// IsRTL is shorthand for DirectionOf(locale) == RTL.
func IsRTL(locale string) bool {
	return DirectionOf(locale) == RTL
}
