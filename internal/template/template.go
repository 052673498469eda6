// Package template holds the read-only registry of per-builder extraction patterns.
//
// Every pattern list is a priority list: the first pattern that matches wins and
// later entries are fallbacks for documents that word the label differently.
package template

import (
	"regexp"
	"strings"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
)

// Template is an immutable set of patterns for one builder layout.
// Values are built once at package init and must not be modified.
type Template struct {
	Builder constants.Builder
	Name    string

	PONumber         []*regexp.Regexp
	CustomerName     []*regexp.Regexp
	Description      []*regexp.Regexp
	DollarValue      []*regexp.Regexp
	CommencementDate []*regexp.Regexp
	CompletionDate   []*regexp.Regexp
	JobNumber        []*regexp.Regexp

	// SupervisorSection anchors the supervisor block; the name is read from
	// the first non-blank line after the match.
	SupervisorSection *regexp.Regexp

	// POShapes and Companies are content signatures used by detection.
	POShapes  []*regexp.Regexp
	Companies []*regexp.Regexp

	// NameFragments are lower-case phrases looked for in the document header.
	NameFragments []string
}

// lines compiles case-insensitive, multi-line patterns.
func lines(exprs ...string) []*regexp.Regexp {
	return compileAll("(?im)", exprs)
}

// blocks compiles case-insensitive patterns where '.' also matches newlines.
func blocks(exprs ...string) []*regexp.Regexp {
	return compileAll("(?ims)", exprs)
}

// exact compiles case-sensitive patterns, for acronyms and PO shapes.
func exact(exprs ...string) []*regexp.Regexp {
	return compileAll("", exprs)
}

func compileAll(flags string, exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(flags + e)
	}
	return out
}

// FirstMatch returns the first capture group (or the whole match when the
// pattern has no groups) of the first pattern that matches text, trimmed.
func FirstMatch(patterns []*regexp.Regexp, text string) (string, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return strings.TrimSpace(m[1]), true
		}
		return strings.TrimSpace(m[0]), true
	}
	return "", false
}

// AnyMatch reports whether any of the patterns matches text.
func AnyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
