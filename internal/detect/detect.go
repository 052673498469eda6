// Package detect decides which builder template applies to a document.
package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/template"
)

const (
	headerLines = 5
	headerChars = 500
)

var salutation = regexp.MustCompile(`(?i)^\s*(?:To|Attention|Attn)\s*:`)

// Detection is the outcome of template selection for one text.
type Detection struct {
	Template *template.Template
	Builder  constants.Builder
	// ByHint is true when the caller's hint chose the template.
	ByHint bool
	// Header is the builder named in the document header, Generic if none.
	Header constants.Builder
}

// Mismatch reports the advisory warning to attach when a hint chose the
// template but the document header names a different known builder.
func (d Detection) Mismatch() (warning, detected string, ok bool) {
	if !d.ByHint || !d.Header.Known() || d.Header == d.Builder {
		return "", "", false
	}
	warning = fmt.Sprintf("builder hint selected %s but the document appears to be from %s",
		d.Builder.String(), d.Header.String())
	return warning, d.Header.String(), true
}

// Detect picks a template: hint first, then content signatures, then Generic.
func Detect(text, hint string) Detection {
	d := Detection{Header: HeaderBuilder(text)}

	if strings.TrimSpace(hint) != "" {
		if b, ok := constants.Canonicalize(hint); ok {
			d.Builder, d.ByHint = b, true
			d.Template = template.Lookup(b)
			return d
		}
	}

	d.Builder = BySignature(text)
	d.Template = template.Lookup(d.Builder)
	return d
}

// BySignature scans text for builder signatures. PO-number shapes are tried
// for every builder before any company phrase; registry order breaks ties.
func BySignature(text string) constants.Builder {
	all := template.All()
	for _, t := range all {
		if template.AnyMatch(t.POShapes, text) {
			return t.Builder
		}
	}
	for _, t := range all {
		if template.AnyMatch(t.Companies, text) {
			return t.Builder
		}
	}
	return constants.Generic
}

// HeaderBuilder inspects the first lines of text for a builder name,
// preferring a "To:" / "Attention:" line. Generic when nothing is found.
func HeaderBuilder(text string) constants.Builder {
	head := text
	if len(head) > headerChars {
		head = head[:headerChars]
	}
	ls := strings.Split(head, "\n")
	if len(ls) > headerLines {
		ls = ls[:headerLines]
	}

	for _, l := range ls {
		if salutation.MatchString(l) {
			if b := builderIn(l); b != constants.Generic {
				return b
			}
		}
	}
	for _, l := range ls {
		if b := builderIn(l); b != constants.Generic {
			return b
		}
	}
	return constants.Generic
}

func builderIn(line string) constants.Builder {
	l := strings.ToLower(line)
	for _, t := range template.All() {
		for _, f := range t.NameFragments {
			if strings.Contains(l, f) {
				return t.Builder
			}
		}
	}
	return constants.Generic
}
