package extract

import (
	"strings"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/template"
)

// extractContacts runs each role's pattern list independently; the first
// matching pattern of a role fills that role and adds an alternate contact.
func extractContacts(text string, rec *entity.Record) {
	for _, role := range template.ContactRoles {
		for _, p := range role.Patterns {
			m := p.Expr.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			name := strings.TrimSpace(m[p.Expr.SubexpIndex("name")])
			phone := strings.TrimSpace(m[p.Expr.SubexpIndex("phone")])
			if name == "" {
				continue
			}

			switch role.Role {
			case template.RoleBest:
				rec.BestContactName, rec.BestContactPhone = name, phone
			case template.RoleAlternate:
				rec.AlternateContactName = name
				if phone != "" {
					rec.AlternateContactPhone = phone
				}
			case template.RoleTenant:
				rec.TenantContactName = name
			case template.RoleAuthorised:
				rec.AuthorisedContactName = name
			}

			rec.AlternateContacts = append(rec.AlternateContacts, entity.Contact{
				Type:  p.Type,
				Name:  name,
				Phone: phone,
				Email: template.Email.FindString(m[0]),
			})
			break
		}
	}
}
