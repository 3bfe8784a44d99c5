// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmpty is returned when a name contains no usable characters, e.g. a
// string of punctuation or emoji that strips down to nothing.
var ErrEmpty = fmt.Errorf("name produces an empty slug")

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// stripDiacritics decomposes to NFD and drops combining marks, so "Açaí"
// becomes "Acai".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a display name into a lowercase slug containing only
// [a-z0-9-], with runs of other characters collapsed into single hyphens
// and no leading or trailing hyphen. Make is idempotent over its own
// output. Names that strip down to nothing yield ErrEmpty.
func Make(name string) (string, error) {
	lowered := strings.ToLower(name)

	stripped, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		// Fall back to the lowered input; the regexp below still
		// guarantees a valid charset.
		stripped = lowered
	}

	s := nonAlnum.ReplaceAllString(stripped, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}
