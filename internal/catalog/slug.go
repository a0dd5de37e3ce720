package catalog

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"
)

// NormalizeSlug applies go-slug rules to Latin input. Arabic input, or input
// the normalizer reduces to nothing, keeps its letters and digits joined by
// hyphens instead.
func NormalizeSlug(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if strings.IndexFunc(value, func(r rune) bool { return unicode.Is(unicode.Arabic, r) }) >= 0 {
		return unicodeSlug(value)
	}
	if normalized, err := slug.Normalize(value); err == nil && normalized != "" {
		return normalized
	}
	return unicodeSlug(value)
}

func unicodeSlug(value string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(value) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}

// localizedSlugs derives missing slugs from titles and normalizes both.
func localizedSlugs(slugEn, slugAr, titleEn, titleAr string) (string, string) {
	if strings.TrimSpace(slugEn) == "" {
		slugEn = titleEn
	}
	if strings.TrimSpace(slugAr) == "" {
		slugAr = titleAr
	}
	return NormalizeSlug(slugEn), NormalizeSlug(slugAr)
}
