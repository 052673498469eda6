package template

import (
	"regexp"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
)

// Builder-independent pattern tables. Wording for these fields is close to
// uniform across layouts, so one list serves every template.

// mobileNumber captures an Australian mobile in common spacings.
const mobileNumber = `(0\d(?:[ -]?\d){8})`

// supervisorLabel matches any supervisor-section label.
const supervisorLabel = `(?:Supervisor|Project\s+Manager|Contractor['’]?s\s+Representative|One\s+Solutions?\s+Representative|Site\s+Manager)`

// supervisorBlock spans the rest of the anchor line and at most the two lines
// under it (name, then number), so later sections are never reached.
const supervisorBlock = `:[^\n]*?(?:\n[^\n]*?){0,2}?`

// SupervisorMobile finds the supervisor's mobile; first match wins.
var SupervisorMobile = lines(
	`\b`+supervisorLabel+`\s*(?:Mobile|Mob|Phone|Ph)\s*(?:No\b\.?)?\s*:?\s*`+mobileNumber,
	`\b`+supervisorLabel+supervisorBlock+`\b(04\d{2}[ -]?\d{3}[ -]?\d{3})\b`,
	`\b`+supervisorLabel+supervisorBlock+`\b(?:Mobile|Mob|M|Phone|Ph)\b\.?\s*:?\s*`+mobileNumber,
)

// RoleLabel strips a leading role label left on a captured name line.
var RoleLabel = regexp.MustCompile(`(?i)^\s*(?:` + supervisorLabel +
	`|Best\s+Contact|Primary\s+Contact|Alternate\s+Contact|Site\s+Contact|Tenant|Occupant|Authori[sz]ed\s+(?:Contact|Person|Representative)|Contact)` +
	`(?:\s+Name)?\s*[:\-]\s*`)

// Role names the record fields a contact pattern populates.
type Role int

const (
	RoleBest Role = iota
	RoleAlternate
	RoleTenant
	RoleAuthorised
)

// ContactPattern captures a contact name (group "name") and optionally a
// phone (group "phone"); matches are recorded under Type.
type ContactPattern struct {
	Type constants.ContactType
	Expr *regexp.Regexp
}

// ContactRole is an ordered pattern list for one role.
type ContactRole struct {
	Role     Role
	Patterns []ContactPattern
}

func contact(t constants.ContactType, label string) ContactPattern {
	return ContactPattern{
		Type: t,
		Expr: regexp.MustCompile(`(?im)` + label +
			`(?:\s+Name)?\s*:[ \t]*\n?[ \t]*(?P<name>[^\n]*?[A-Za-z][^\n]*?)(?:[ \t]+(?:Ph|Phone|Mob|Mobile|M)?:?[ \t]*(?P<phone>0\d(?:[ -]?\d){7,9}))?[ \t]*$`),
	}
}

// ContactRoles lists every role with its own pattern list; roles are independent.
var ContactRoles = []ContactRole{
	{Role: RoleBest, Patterns: []ContactPattern{
		contact(constants.ContactBest, `\bBest\s+Contact`),
		contact(constants.ContactBest, `\bPrimary\s+Contact`),
		contact(constants.ContactSite, `\bSite\s+Contact`),
	}},
	{Role: RoleAlternate, Patterns: []ContactPattern{
		contact(constants.ContactBest, `\bAlternate\s+Contact`),
		contact(constants.ContactRealEstateAgent, `\bReal\s+Estate(?:\s+Agent)?`),
		contact(constants.ContactRealEstateAgent, `\bProperty\s+Manager`),
	}},
	{Role: RoleTenant, Patterns: []ContactPattern{
		contact(constants.ContactTenant, `\bTenant`),
		contact(constants.ContactTenant, `\bOccupant`),
	}},
	{Role: RoleAuthorised, Patterns: []ContactPattern{
		contact(constants.ContactAuthorised, `\bAuthori[sz]ed\s+(?:Contact|Person|Representative)`),
	}},
}

// Address anchors, tried in order. The address block is the text after the anchor.
var Address = lines(
	`\bSite\s+Address\s*:`,
	`\bJob\s+Address\s*:`,
	`\bProperty\s+Address\s*:`,
	`(?:^|[^\w ])[ \t]*Address\s*:`,
	`\bSite\s+Location\s*:`,
)

// StatePostcode finds "QLD 4000" style endings of an address.
var StatePostcode = regexp.MustCompile(`\b(NSW|VIC|QLD|SA|WA|TAS|NT|ACT)\s+(\d{4})\b`)

// Email is the single universal email shape.
var Email = regexp.MustCompile(`[\w.+-]+@[\w-]+(?:\.[\w-]+)*\.[A-Za-z]{2,}`)

// Phone finds 9-11 digit tokens starting with 0, single space or hyphen separators allowed.
var Phone = regexp.MustCompile(`\b0\d(?:[ -]?\d){7,9}\b`)

// JobNumber finds an explicit job reference when the template has none.
var JobNumber = lines(
	`\bJob\s*(?:Number\b|No\b\.?|#)\s*:?\s*([A-Z0-9][A-Z0-9/-]*)`,
	`\bWork\s+Order\s*(?:Number\b|No\b\.?|#)?\s*:?\s*(\d+)`,
)

// Provisional flags a provisional purchase order anywhere in the document.
var Provisional = regexp.MustCompile(`(?i)provisional`)

const (
	numericDate = `(\d{1,2}/\d{1,2}/\d{4})`
	wordDate    = `(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})`
)

// Commencement date: numeric then written-month form.
var Commencement = lines(
	`\b(?:Commencement|Start)(?:\s+Date)?\s*:?\s*`+numericDate,
	`\b(?:Commencement|Start)(?:\s+Date)?\s*:?\s*`+wordDate,
)

// Installation date: numeric then written-month form.
var Installation = lines(
	`\bInstall(?:ation)?\s+Date\s*:?\s*`+numericDate,
	`\bInstall(?:ation)?\s+Date\s*:?\s*`+wordDate,
)
