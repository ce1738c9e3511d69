package usecase

import "strings"

// minPhoneSuffixDigits keeps suffix matching from accepting trivially short numbers.
const minPhoneSuffixDigits = 8

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// phonesMatch compares two phone numbers digits-only. Either side may carry a
// country or area prefix the other lacks, so a suffix in either direction counts.
func phonesMatch(a, b string) bool {
	da, db := digitsOnly(a), digitsOnly(b)
	if da == "" || db == "" {
		return false
	}
	if da == db {
		return true
	}
	shorter := len(da)
	if len(db) < shorter {
		shorter = len(db)
	}
	if shorter < minPhoneSuffixDigits {
		return false
	}
	return strings.HasSuffix(da, db) || strings.HasSuffix(db, da)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
