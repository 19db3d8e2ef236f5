package repository

import "strings"

// NormalizePhone strips every non-digit character, collapsing masked
// input like "(11) 91234-5678" into "11912345678". It is idempotent, so
// re-saving an already normalized value is safe.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
