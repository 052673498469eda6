package extract

import (
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/template"
)

// extractEmails keeps the first email and collects the other distinct ones.
func extractEmails(text string, rec *entity.Record) {
	seen := map[string]struct{}{}
	for _, addr := range template.Email.FindAllString(text, -1) {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		if rec.Email == "" {
			rec.Email = addr
			continue
		}
		rec.ExtraEmails = append(rec.ExtraEmails, addr)
	}
}

func extractDates(text string, t *template.Template, rec *entity.Record) {
	if v, ok := template.FirstMatch(t.CommencementDate, text); ok {
		rec.CommencementDate = v
	} else if v, ok := template.FirstMatch(template.Commencement, text); ok {
		rec.CommencementDate = v
	}
	if v, ok := template.FirstMatch(template.Installation, text); ok {
		rec.InstallationDate = v
	}
	if v, ok := template.FirstMatch(t.CompletionDate, text); ok {
		rec.CompletionDate = v
	}
}
