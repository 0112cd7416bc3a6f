// Cleanup of extracted listing text before export.

package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

//boilerplate injected by the listing page's description expander
var boilerplate = []string{"Show more", "Show less"}

// Description cleans a raw description: collapses whitespace runs, strips the
// expander boilerplate, collapses again so a removed token leaves no double
// space, and trims. NFC-normalized, idempotent.
func Description(s string) string {
	s = norm.NFC.String(s)
	s = whitespaceRegex.ReplaceAllString(s, " ")
	for _, token := range boilerplate {
		s = strings.ReplaceAll(s, token, " ")
	}
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
