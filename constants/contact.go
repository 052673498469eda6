package constants

// ContactType labels an entry in a record's alternate contacts.
type ContactType string

const (
	ContactBest            ContactType = "Best Contact"
	ContactAuthorised      ContactType = "Authorised Contact"
	ContactRealEstateAgent ContactType = "Real Estate Agent"
	ContactTenant          ContactType = "Tenant"
	ContactSite            ContactType = "Site Contact"
)
