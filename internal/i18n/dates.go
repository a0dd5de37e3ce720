package i18n

import (
	"fmt"
	"strconv"
	"time"
)

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatDate renders t in a short, locale-friendly form.
func FormatDate(t time.Time, locale string) string {
	if t.IsZero() {
		return ""
	}
	switch Normalize(locale) {
	case "ar":
		return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
	default:
		return t.Format("Jan 2, 2006")
	}
}

// FormatYear renders a year, or "" for non-positive values.
func FormatYear(year int) string {
	if year <= 0 {
		return ""
	}
	return strconv.Itoa(year)
}
