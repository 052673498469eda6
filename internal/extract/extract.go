// Package extract applies a detected template to document text and fills an entity.Record.
package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/detect"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/template"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/utils"
)

const provSuffix = "-Prov"

// Extractor fills records from text. It holds no per-document state and is
// safe for concurrent use.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract mutates rec with every field the template and shared patterns find
// in text and returns it. Misses leave defaults in place.
func (e *Extractor) Extract(text string, d detect.Detection, rec *entity.Record) *entity.Record {
	if rec == nil {
		rec = entity.NewRecord()
	}
	t := d.Template
	if t == nil {
		t = template.Generic()
	}
	rec.BuilderType = t.Name

	rawPO, _ := template.FirstMatch(t.PONumber, text)
	rec.PONumber = tagProvisional(rawPO, text)

	if v, ok := template.FirstMatch(t.CustomerName, text); ok {
		rec.CustomerName = v
	}

	if v, ok := template.FirstMatch(t.Description, text); ok {
		rec.DescriptionOfWorks = stripLeadingPO(v, rawPO)
		rec.ScopeOfWork = rec.DescriptionOfWorks
	}

	if v, ok := template.FirstMatch(t.DollarValue, text); ok {
		rec.DollarValue = parseAmount(v)
	}

	if v, ok := template.FirstMatch(t.JobNumber, text); ok {
		rec.JobNumber = v
	} else if v, ok := template.FirstMatch(template.JobNumber, text); ok {
		rec.JobNumber = v
	}

	rec.SupervisorName = supervisorName(t.SupervisorSection, text)
	if v, ok := template.FirstMatch(template.SupervisorMobile, text); ok {
		rec.SupervisorMobile = v
	}

	extractContacts(text, rec)
	extractAddress(text, rec)
	extractEmails(text, rec)
	extractDates(text, t, rec)
	harvestPhones(text, rec)

	if warning, detected, ok := d.Mismatch(); ok {
		rec.BuilderMismatchWarning = warning
		rec.DetectedBuilder = detected
		e.logger.Warn("extract.builder_mismatch",
			"builder", d.Builder.String(),
			"detected", detected)
	}

	e.logger.Debug("extract.done",
		"builder", t.Name,
		"po_number", rec.PONumber,
		"customer", rec.CustomerName != "",
		"dollar_value", rec.DollarValue)
	return rec
}

// tagProvisional appends -Prov when "provisional" appears anywhere in text.
func tagProvisional(po, text string) string {
	if po == "" || !template.Provisional.MatchString(text) || strings.HasSuffix(po, provSuffix) {
		return po
	}
	return po + provSuffix
}

// stripLeadingPO drops a leading PO number (with or without -Prov) from a description.
func stripLeadingPO(desc, po string) string {
	desc = strings.TrimSpace(desc)
	if po == "" {
		return desc
	}
	base := strings.TrimSuffix(po, provSuffix)
	for _, prefix := range []string{base + provSuffix, base} {
		if strings.HasPrefix(desc, prefix) {
			return strings.TrimLeft(strings.TrimPrefix(desc, prefix), " \t\r\n-:")
		}
	}
	return desc
}

// parseAmount strips "$" and "," and parses a float; failure or negative gives 0.
func parseAmount(s string) float64 {
	s = strings.NewReplacer(",", "", "$", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// supervisorName reads the first non-blank line after the section anchor,
// removes a leftover role label and rejects lines without letters.
func supervisorName(anchor *regexp.Regexp, text string) string {
	if anchor == nil {
		return ""
	}
	loc := anchor.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return CleanName(text[loc[1]:])
}

// CleanName keeps the first non-blank line of s, strips a leading role label
// and returns "" when nothing letter-like remains.
func CleanName(s string) string {
	line := utils.FirstLine(s)
	line = strings.TrimSpace(template.RoleLabel.ReplaceAllString(line, ""))
	if !utils.HasLetter(line) {
		return ""
	}
	return line
}
