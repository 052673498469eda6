package extract

import (
	"regexp"
	"strings"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/template"
)

// maxAddressLines bounds how far an address block may run past its anchor.
const maxAddressLines = 3

var labelLine = regexp.MustCompile(`^[A-Za-z][A-Za-z /'’]{1,40}:`)

// extractAddress finds the first address anchor and splits the block after it
// into address1/address2/city/state/zip_code.
func extractAddress(text string, rec *entity.Record) {
	for _, re := range template.Address {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		block := addressBlock(text[loc[1]:])
		if len(block) == 0 {
			continue
		}
		rec.Address = strings.Join(block, "\n")
		splitAddress(block, rec)
		return
	}
}

// addressBlock collects up to maxAddressLines non-blank lines, stopping at
// the next labelled line or right after the state/postcode line.
func addressBlock(rest string) []string {
	var out []string
	for i, l := range strings.Split(rest, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			if len(out) > 0 {
				break
			}
			continue
		}
		if i > 0 && labelLine.MatchString(l) {
			break
		}
		out = append(out, l)
		if len(out) == maxAddressLines || template.StatePostcode.MatchString(l) {
			break
		}
	}
	return out
}

func splitAddress(block []string, rec *entity.Record) {
	last := len(block) - 1
	m := template.StatePostcode.FindStringSubmatchIndex(block[last])
	if m == nil {
		rec.Address1 = block[0]
		if len(block) > 1 {
			rec.Address2 = block[1]
		}
		return
	}

	line := block[last]
	rec.State = line[m[2]:m[3]]
	rec.ZipCode = line[m[4]:m[5]]
	before := strings.Trim(line[:m[0]], " ,")

	if last == 0 {
		// "12 Smith St, Brisbane QLD 4000"
		if i := strings.LastIndex(before, ","); i >= 0 {
			rec.Address1 = strings.TrimSpace(before[:i])
			rec.City = strings.TrimSpace(before[i+1:])
		} else {
			rec.Address1 = before
		}
		return
	}

	rec.Address1 = block[0]
	if last >= 2 {
		rec.Address2 = block[1]
	}
	if i := strings.LastIndex(before, ","); i >= 0 {
		before = strings.TrimSpace(before[i+1:])
	}
	rec.City = before
}
