package matcher

import (
	"regexp"
	"strings"

	"github.com/XavierBriggs/Herald/pkg/models"
)

var (
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Club designations dropped from the end or start of a team name
var (
	knownSuffixes = []string{" fc", " cf", " afc", " sc", " ac", " as", " ss", " bk", " bc", " united", " city"}
	knownPrefixes = []string{"fc ", "cf ", "afc ", "sc ", "ac ", "as "}
)

// Normalize canonicalizes a team or league name for comparison.
//
// The name is lowercased and stripped to [a-z0-9 ] with single spaces, then every alias whose
// pattern occurs in it is substituted in table order (several may fire on the same name), then
// known club suffixes and prefixes are removed until none remain.
func Normalize(name string, aliases []models.Alias) string {
	s := strings.ToLower(name)
	s = nonAlphaNum.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	for _, alias := range aliases {
		if alias.Pattern == "" {
			continue
		}
		if strings.Contains(s, alias.Pattern) {
			s = strings.Replace(s, alias.Pattern, alias.Replacement, 1)
		}
	}

	return strings.TrimSpace(stripAffixes(s))
}

// stripAffixes removes known suffixes and prefixes until the name is stable.
// "manchester united fc" -> "manchester united" -> "manchester"
func stripAffixes(s string) string {
	for {
		stripped := false
		for _, suffix := range knownSuffixes {
			if strings.HasSuffix(s, suffix) {
				s = strings.TrimSuffix(s, suffix)
				stripped = true
				break
			}
		}
		for _, prefix := range knownPrefixes {
			if strings.HasPrefix(s, prefix) {
				s = strings.TrimPrefix(s, prefix)
				stripped = true
				break
			}
		}
		if !stripped {
			return s
		}
	}
}
