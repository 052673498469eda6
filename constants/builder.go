package constants

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Builder identifies the company that issued a purchase order.
type Builder string

const (
	Ambrose               Builder = "Ambrose"
	Profile               Builder = "Profile"
	Campbell              Builder = "Campbell"
	Rizon                 Builder = "Rizon"
	AustralianRestoration Builder = "AustralianRestoration"
	Townsend              Builder = "Townsend"
	OneSolutions          Builder = "OneSolutions"
	Generic               Builder = "Generic"
)

var allBuilders = []Builder{
	Ambrose,
	Profile,
	Campbell,
	Rizon,
	AustralianRestoration,
	Townsend,
	OneSolutions,
	Generic,
}

var displayNames = map[Builder]string{
	Ambrose:               "Ambrose Construct Group",
	Profile:               "Profile Build Group",
	Campbell:              "Campbell Construction",
	Rizon:                 "Rizon Group",
	AustralianRestoration: "Australian Restoration Company",
	Townsend:              "Townsend Building Services",
	OneSolutions:          "One Solutions",
	Generic:               "Generic",
}

// builderAlias maps a folded hint fragment to a builder. Checked in order;
// longer aliases come first so "profilebuildgroup" never loses to a shorter one.
type builderAlias struct {
	alias   string
	builder Builder
}

var aliases = []builderAlias{
	{"profilebuildgroup", Profile},
	{"profilebuild", Profile},
	{"profile", Profile},
	{"pbg", Profile},
	{"ambroseconstructgroup", Ambrose},
	{"ambroseconstruct", Ambrose},
	{"ambrose", Ambrose},
	{"campbellconstruction", Campbell},
	{"campbell", Campbell},
	{"rizongroup", Rizon},
	{"rizon", Rizon},
	{"australianrestorationcompany", AustralianRestoration},
	{"australianrestoration", AustralianRestoration},
	{"townsendbuildingservices", Townsend},
	{"townsend", Townsend},
	{"onesolutions", OneSolutions},
	{"onesolution", OneSolutions},
}

// String returns the display name of the builder.
func (b Builder) String() string {
	if n, ok := displayNames[b]; ok {
		return n
	}
	return string(b)
}

// Known reports whether b is a named builder (not Generic, not empty).
func (b Builder) Known() bool {
	_, ok := displayNames[b]
	return ok && b != Generic
}

func AllBuilders() []Builder {
	out := make([]Builder, len(allBuilders))
	copy(out, allBuilders)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allBuilders))
	for i, b := range allBuilders {
		result[i] = b.String()
	}
	return result
}

// FoldHint normalizes a free-text builder hint: NFKC, lower case, no whitespace.
func FoldHint(s string) string {
	s = norm.NFKC.String(s)
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Canonicalize maps a builder-name hint onto a Builder. The second return
// value is false when nothing in the alias table matches.
func Canonicalize(input string) (Builder, bool) {
	folded := FoldHint(input)
	if folded == "" {
		return Generic, false
	}

	for _, a := range aliases {
		if folded == a.alias {
			return a.builder, true
		}
	}
	for _, a := range aliases {
		if strings.Contains(folded, a.alias) {
			return a.builder, true
		}
	}

	// display names and enum values, e.g. "OneSolutions"
	for _, b := range allBuilders {
		if b == Generic {
			continue
		}
		if folded == strings.ToLower(string(b)) || folded == FoldHint(b.String()) {
			return b, true
		}
	}

	return Generic, false
}
