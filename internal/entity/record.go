package entity

import (
	"encoding/json"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
)

// Contact is one entry of a record's alternate contacts.
type Contact struct {
	Type  constants.ContactType `json:"type"`
	Name  string                `json:"name"`
	Phone string                `json:"phone"`
	Email string                `json:"email"`
}

// Record is the flat result of extracting one purchase order.
// Every key is always serialized; only the last three are optional.
type Record struct {
	BuilderType string `json:"builder_type"`

	CustomerName string `json:"customer_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BusinessName string `json:"business_name"`

	Email       string   `json:"email"`
	ExtraEmails []string `json:"extra_emails"`

	Phone       string   `json:"phone"`
	Mobile      string   `json:"mobile"`
	WorkPhone   string   `json:"work_phone"`
	HomePhone   string   `json:"home_phone"`
	ExtraPhones []string `json:"extra_phones"`

	Address  string `json:"address"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`

	PONumber        string  `json:"po_number"`
	JobNumber       string  `json:"job_number"`
	ActualJobNumber string  `json:"actual_job_number"`
	DollarValue     float64 `json:"dollar_value"`

	DescriptionOfWorks string `json:"description_of_works"`
	ScopeOfWork        string `json:"scope_of_work"`

	SupervisorName   string `json:"supervisor_name"`
	SupervisorMobile string `json:"supervisor_mobile"`

	BestContactName       string    `json:"best_contact_name"`
	BestContactPhone      string    `json:"best_contact_phone"`
	AlternateContactName  string    `json:"alternate_contact_name"`
	AlternateContactPhone string    `json:"alternate_contact_phone"`
	TenantContactName     string    `json:"tenant_contact_name"`
	AuthorisedContactName string    `json:"authorised_contact_name"`
	AlternateContacts     []Contact `json:"alternate_contacts"`

	CommencementDate string `json:"commencement_date"`
	InstallationDate string `json:"installation_date"`
	CompletionDate   string `json:"completion_date"`

	ExtractionBackend string `json:"extraction_backend"`

	Error                  string `json:"error,omitempty"`
	BuilderMismatchWarning string `json:"builder_mismatch_warning,omitempty"`
	DetectedBuilder        string `json:"detected_builder,omitempty"`
}

// NewRecord returns the default record: empty strings, zero value, empty non-nil slices.
func NewRecord() *Record {
	return &Record{
		ExtraEmails:       []string{},
		ExtraPhones:       []string{},
		AlternateContacts: []Contact{},
	}
}

// EnsureSlices replaces nil slices with empty ones so they serialize as [].
func (r *Record) EnsureSlices() {
	if r.ExtraEmails == nil {
		r.ExtraEmails = []string{}
	}
	if r.ExtraPhones == nil {
		r.ExtraPhones = []string{}
	}
	if r.AlternateContacts == nil {
		r.AlternateContacts = []Contact{}
	}
}

// PhoneBuckets returns pointers to the named phone fields in assignment order.
func (r *Record) PhoneBuckets() []*string {
	return []*string{
		&r.Phone,
		&r.Mobile,
		&r.WorkPhone,
		&r.HomePhone,
		&r.SupervisorMobile,
		&r.AlternateContactPhone,
	}
}

// MarshalJSON keeps slices non-nil on the wire.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	r.EnsureSlices()
	return json.Marshal(plain(r))
}
