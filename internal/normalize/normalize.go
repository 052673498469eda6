// Package normalize runs the second pass over an extracted record.
package normalize

import (
	"log/slog"
	"strings"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/extract"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/utils"
)

// Normalizer cleans names, rewrites job numbers and filters extra phones.
type Normalizer struct {
	excluded map[string]struct{}
	logger   *slog.Logger
}

// NewNormalizer builds a Normalizer. excluded holds numbers that belong to the
// operator (office lines, ABN-derived digit strings); formatting is ignored.
func NewNormalizer(excluded []string, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Normalizer{excluded: make(map[string]struct{}, len(excluded)), logger: logger}
	for _, e := range excluded {
		if d := utils.Digits(e); d != "" {
			n.excluded[d] = struct{}{}
		}
	}
	return n
}

// Normalize mutates and returns rec. Running it twice gives the same record.
func (n *Normalizer) Normalize(rec *entity.Record) *entity.Record {
	rec.EnsureSlices()

	rec.CustomerName = firstLine(rec.CustomerName)
	rec.SupervisorName = extract.CleanName(rec.SupervisorName)
	rec.Address = firstLine(rec.Address)

	rec.FirstName, rec.LastName = splitName(rec.CustomerName)
	rec.BusinessName = ""

	if rec.SupervisorName != "" && rec.SupervisorMobile != "" {
		composite := rec.SupervisorName + " " + rec.SupervisorMobile
		if rec.JobNumber != composite && rec.ActualJobNumber == "" {
			rec.ActualJobNumber = rec.JobNumber
		}
		rec.JobNumber = composite
	} else if rec.ActualJobNumber == "" {
		rec.ActualJobNumber = rec.JobNumber
	}

	rec.BestContactName = extract.CleanName(rec.BestContactName)
	rec.AlternateContactName = extract.CleanName(rec.AlternateContactName)
	rec.TenantContactName = extract.CleanName(rec.TenantContactName)
	rec.AuthorisedContactName = extract.CleanName(rec.AuthorisedContactName)
	for i := range rec.AlternateContacts {
		rec.AlternateContacts[i].Name = extract.CleanName(rec.AlternateContacts[i].Name)
	}

	before := len(rec.ExtraPhones)
	rec.ExtraPhones = n.filterPhones(rec)
	rec.ExtraEmails = dedupe(rec.ExtraEmails, rec.Email)
	if rec.DescriptionOfWorks != "" {
		rec.ScopeOfWork = rec.DescriptionOfWorks
	}

	if dropped := before - len(rec.ExtraPhones); dropped > 0 {
		n.logger.Debug("normalize.extra_phones.filtered", "dropped", dropped)
	}
	return rec
}

// filterPhones drops excluded numbers, the job number, numbers already held
// by a named bucket and duplicates, comparing digits only.
func (n *Normalizer) filterPhones(rec *entity.Record) []string {
	skip := make(map[string]struct{}, len(n.excluded)+8)
	for d := range n.excluded {
		skip[d] = struct{}{}
	}
	for _, v := range []string{rec.ActualJobNumber, rec.SupervisorMobile} {
		if d := utils.Digits(v); d != "" {
			skip[d] = struct{}{}
		}
	}
	for _, b := range rec.PhoneBuckets() {
		if d := utils.Digits(*b); d != "" {
			skip[d] = struct{}{}
		}
	}

	out := make([]string, 0, len(rec.ExtraPhones))
	for _, p := range rec.ExtraPhones {
		d := utils.Digits(p)
		if d == "" {
			continue
		}
		if _, ok := skip[d]; ok {
			continue
		}
		skip[d] = struct{}{}
		out = append(out, p)
	}
	return out
}

// splitName splits on the first whitespace; one token means no last name.
func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	i := strings.IndexFunc(full, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return full, ""
	}
	return full[:i], strings.TrimSpace(full[i+1:])
}

// firstLine discards everything after the first line break.
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func dedupe(in []string, skip string) []string {
	seen := map[string]struct{}{skip: {}}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok || v == "" {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
