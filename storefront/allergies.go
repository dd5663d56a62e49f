package storefront

import "strings"

// ToggleAllergy adds allergy to list, or removes it when an entry already
// matches ignoring case. Surrounding whitespace is trimmed and blank input
// leaves the list unchanged.
func ToggleAllergy(list []string, allergy string) []string {
	allergy = strings.TrimSpace(allergy)
	out := append([]string{}, list...)
	if allergy == "" {
		return out
	}
	for i, a := range out {
		if strings.EqualFold(strings.TrimSpace(a), allergy) {
			return append(out[:i], out[i+1:]...)
		}
	}
	return append(out, allergy)
}
