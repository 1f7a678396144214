package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ScanSkills returns the tech-skill tokens present in the description.
// The scan is deliberately substring based (not word boundary based) and
// lower-cases the text once; each vocabulary token counts at most once per
// description.
func ScanSkills(description string) []string {
	return scan(description, TechSkills)
}

// ScanRequirements returns the qualification phrases present in the
// description. Duplicates across descriptions are aggregated by the caller.
func ScanRequirements(description string) []string {
	return scan(description, RequirementPhrases)
}

func scan(description string, vocabulary []string) []string {
	description = strings.ToLower(description)
	if description == "" {
		return nil
	}

	var found []string
	for _, token := range vocabulary {
		if strings.Contains(description, token) {
			found = append(found, token)
		}
	}
	return found
}

// Capitalize normalizes a skill name the way persisted skills are keyed:
// first rune upper-cased, the rest lower-cased.
func Capitalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}
