package template

import (
	"regexp"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
)

// amount captures a currency figure such as 3,200.00 or -15.5.
const amount = `(-?\d[\d,]*(?:\.\d+)?)`

// section end for single-block descriptions: a blank line or end of text.
const blockEnd = `(?:\n[ \t]*\n|\z)`

var registry = []*Template{
	{
		Builder:      constants.Ambrose,
		PONumber:     exact(`\b(20\d{6}-\d{2})\b`),
		CustomerName: lines(`Insured\s+Owner\s*/\s*Customer:\s*([^\n]+)`, `^[ \t]*Customer:\s*([^\n]+)`),
		Description:  blocks(`Description\s+of\s+Works:\s*(.+?)` + blockEnd),
		DollarValue:  lines(
			`\bTotal:\s*\$?\s*`+amount,
			`\bTotal\s+(?:inc\.?\s+GST\s*)?\$\s*`+amount,
		),
		JobNumber:         exact(`\b(20\d{6})-\d{2}\b`),
		SupervisorSection: anchor(`Supervisor:`),
		POShapes:          exact(`\b20\d{6}-\d{2}\b`),
		Companies:         lines(`Ambrose\s+Construct`, `Ambrose\s+Group`),
		NameFragments:     []string{"ambrose"},
	},
	{
		Builder:      constants.Profile,
		PONumber:     exact(`\b(PBG-\d{5}-\d{5})\b`),
		CustomerName: lines(`Client:\s*([^\n]+)`, `SITE\s+CONTACT:\s*([^\n]+)`),
		Description:  blocks(
			`Scope\s+of\s+Works\s*/\s*Notes:\s*(.+?)`+blockEnd,
			`Scope\s+of\s+Works:\s*(.+?)`+blockEnd,
		),
		DollarValue: lines(
			`Sub\s*total:?\s*(?:AUD\s*)?\$?\s*`+amount,
			`\bTotal:?\s*(?:AUD\s*)?\$?\s*`+amount,
		),
		SupervisorSection: anchor(`Supervisor:`),
		POShapes:          exact(`\bPBG-\d{5}-\d{5}\b`),
		Companies:         append(lines(`Profile\s+Build`), exact(`\bPBG\b`)...),
		NameFragments:     []string{"profile build", "pbg"},
	},
	{
		Builder:      constants.Campbell,
		PONumber:     exact(`\b(CCC\d{5}-\d{5})\b`),
		CustomerName: lines(`Customer:\s*([^\n]+)`),
		Description:  blocks(`Scope\s+of\s+Work:\s*(.+?)` + blockEnd),
		DollarValue:  lines(
			`Subtotal\s*\$\s*`+amount,
			`\bTotal\s*\$\s*`+amount,
		),
		SupervisorSection: anchor(`Contractor['’]?s\s+Representative:`),
		POShapes:          exact(`\bCCC\d{5}-\d{5}\b`),
		Companies:         append(lines(`Campbell\s+Construction`), exact(`\bCCC\b`)...),
		NameFragments:     []string{"campbell"},
	},
	{
		Builder:           constants.Rizon,
		PONumber:          exact(`\b(P\d{6})\b`),
		CustomerName:      lines(`Client\s*/\s*Site\s+Details:\s*([^\n]+)`),
		Description:       blocks(`Scope\s+of\s+Works:\s*(.+?)` + blockEnd),
		DollarValue:       lines(`\bTotal:\s*\$?\s*` + amount),
		SupervisorSection: anchor(`Supervisor:`),
		POShapes:          exact(`\bP\d{6}\b`),
		Companies:         lines(`Rizon\s+Group`, `\bRizon\b`),
		NameFragments:     []string{"rizon"},
	},
	{
		Builder:           constants.AustralianRestoration,
		PONumber:          exact(`\b(PO\d{5}-[A-Z]{2}\d{2}-\d{3})\b`),
		CustomerName:      lines(`Customer\s+Details:\s*([^\n]+)`),
		Description:       blocks(`Flooring\s+Contractor\s+Material:\s*(.+?)` + blockEnd),
		DollarValue:       lines(`Sub\s+Total\s*\$\s*` + amount),
		SupervisorSection: anchor(`Project\s+Manager:`),
		POShapes:          exact(`\bPO\d{5}-[A-Z]{2}\d{2}-\d{3}\b`),
		Companies:         append(lines(`Australian\s+Restoration`), exact(`\bARC\b`)...),
		NameFragments:     []string{"australian restoration"},
	},
	{
		Builder:           constants.Townsend,
		PONumber:          lines(`\b(TBS-\d{5})\b`, `\b(Work\s+Order\s+\d+)`),
		CustomerName:      lines(`Site\s+Contact\s+name:\s*([^\n]+)`),
		Description:       blocks(`(?:Flooring|Floor\s+Preparation):\s*(.+?)` + blockEnd),
		DollarValue:       lines(`Subtotal:\s*\$?\s*` + amount),
		JobNumber:         lines(`\bWork\s+Order\s+(\d+)`),
		SupervisorSection: anchor(`Project\s+Manager:`),
		POShapes:          exact(`\bTBS-\d{5}\b`),
		Companies:         append(lines(`Townsend\s+Building`), exact(`\bTBS\b`)...),
		NameFragments:     []string{"townsend"},
	},
	{
		Builder:           constants.OneSolutions,
		PONumber:          lines(`Purchase\s+Order\s+Number:\s*([A-Z0-9-]+)`),
		CustomerName:      lines(`Site\s+Contact\s+Name:\s*([^\n]+)`),
		Description:       blocks(`Floor\s+Covers\s+(.+?)\s*Totals`),
		DollarValue:       lines(`Subtotal[\s:]*\$?\s*` + amount),
		CommencementDate:  lines(`Works\s+to\s+Commence\s+([^\n]+)`),
		CompletionDate:    lines(`Works\s+to\s+be\s+Completed\s+By\s+([^\n]+)`),
		SupervisorSection: anchor(`One\s+Solutions?\s+Representative:`),
		Companies:         lines(`One\s+Solutions`),
		NameFragments:     []string{"one solution"},
	},
}

var generic = &Template{
	Builder:  constants.Generic,
	PONumber: lines(
		`\b(?:Purchase\s+Order|P\.?O\.?|Order)\s*(?:Number\b|No\b\.?|#)\s*:?\s*([A-Z0-9][A-Z0-9/-]{3,})`,
		`\bP\.?O\.?\s*:\s*([A-Z0-9][A-Z0-9/-]{3,})`,
	),
	CustomerName: lines(
		`\b(?:Customer|Client|Insured|Owner)(?:\s+Name)?:\s*([^\n]+)`,
		`\bSite\s+Contact(?:\s+Name)?:\s*([^\n]+)`,
	),
	Description: blocks(
		`\bScope\s+of\s+Works?:?\s*(.+?)`+blockEnd,
		`\bDescription\s+of\s+Works?:?\s*(.+?)`+blockEnd,
	),
	DollarValue: lines(
		`\bSub\s*total:?\s*(?:AUD\s*)?\$?\s*`+amount,
		`\bTotal:?\s*(?:AUD\s*)?\$?\s*`+amount,
	),
	CompletionDate:    lines(`\bCompletion\s+Date:?\s*([^\n]+)`),
	SupervisorSection: anchor(`(?:Supervisor|Project\s+Manager|Site\s+Manager):`),
}

var byBuilder = func() map[constants.Builder]*Template {
	m := make(map[constants.Builder]*Template, len(registry)+1)
	for _, t := range registry {
		t.Name = t.Builder.String()
		m[t.Builder] = t
	}
	generic.Name = generic.Builder.String()
	m[constants.Generic] = generic
	return m
}()

func anchor(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}

// Lookup returns the template for b, or the Generic template when b is unknown.
func Lookup(b constants.Builder) *Template {
	if t, ok := byBuilder[b]; ok {
		return t
	}
	return generic
}

// Generic returns the fallback template used for unrecognized layouts.
func Generic() *Template {
	return generic
}

// All returns the named templates in detection priority order (Generic excluded).
// The order is constants.AllBuilders.
func All() []*Template {
	out := make([]*Template, 0, len(registry))
	for _, b := range constants.AllBuilders() {
		if t, ok := byBuilder[b]; ok && b != constants.Generic {
			out = append(out, t)
		}
	}
	return out
}
