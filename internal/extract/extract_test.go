package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/detect"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
)

const profileDoc = `Client: Jane Doe
PBG-18191-18039
Site Address: 12 Smith St
Brisbane QLD 4000
Scope of Works / Notes: PBG-18191-18039 Supply and install carpet to bedrooms

Total AUD $3,200.00
Supervisor:
Tom Hill
0412345678
`

func extractText(t *testing.T, text, hint string) *entity.Record {
	t.Helper()
	return NewExtractor(nil).Extract(text, detect.Detect(text, hint), entity.NewRecord())
}

func TestExtractProfileDocument(t *testing.T) {
	rec := extractText(t, profileDoc, "PROFILE BUILD GROUP")

	assert.Equal(t, "Profile Build Group", rec.BuilderType)
	assert.Equal(t, "Jane Doe", rec.CustomerName)
	assert.Equal(t, "PBG-18191-18039", rec.PONumber)
	assert.Equal(t, 3200.0, rec.DollarValue)
	assert.Equal(t, "Supply and install carpet to bedrooms", rec.DescriptionOfWorks)
	assert.Equal(t, rec.DescriptionOfWorks, rec.ScopeOfWork)
	assert.Equal(t, "Tom Hill", rec.SupervisorName)
	assert.Equal(t, "0412345678", rec.SupervisorMobile)
	assert.Equal(t, "12 Smith St", rec.Address1)
	assert.Equal(t, "Brisbane", rec.City)
	assert.Equal(t, "QLD", rec.State)
	assert.Equal(t, "4000", rec.ZipCode)

	// harvesting is positional: the first phone-shaped token fills phone
	assert.Equal(t, "0412345678", rec.Phone)
	assert.Empty(t, rec.ExtraPhones)
	assert.Empty(t, rec.BuilderMismatchWarning)
}

func TestSupervisorMobileIgnoresLaterPhoneLabel(t *testing.T) {
	text := profileDoc + "Phone: 0733445566\n"
	rec := extractText(t, text, "PROFILE BUILD GROUP")

	assert.Equal(t, "0412345678", rec.SupervisorMobile)
	assert.Equal(t, "0412345678", rec.Phone)
	assert.Equal(t, "0733445566", rec.Mobile)
}

func TestJobNotesIsNotAJobNumber(t *testing.T) {
	rec := extractText(t, "Job Notes: call tenant before arrival\nClient: Jane Doe\n", "")
	assert.Empty(t, rec.JobNumber)
	assert.Equal(t, "Jane Doe", rec.CustomerName)

	rec = extractText(t, "Order Nominated for March\nClient: Jane Doe\n", "")
	assert.Empty(t, rec.PONumber)
}

func TestProvisionalTagging(t *testing.T) {
	text := "PROVISIONAL PURCHASE ORDER\n" + profileDoc
	rec := extractText(t, text, "")
	assert.Equal(t, "PBG-18191-18039-Prov", rec.PONumber)
	assert.Equal(t, "Supply and install carpet to bedrooms", rec.DescriptionOfWorks)

	assert.Equal(t, "X-Prov", tagProvisional("X-Prov", "provisional"))
	assert.Equal(t, "X", tagProvisional("X", "final order"))
	assert.Equal(t, "", tagProvisional("", "provisional"))
}

func TestStripLeadingPO(t *testing.T) {
	assert.Equal(t, "Supply carpet", stripLeadingPO("PBG-1-Prov - Supply carpet", "PBG-1"))
	assert.Equal(t, "Supply carpet", stripLeadingPO("PBG-1: Supply carpet", "PBG-1-Prov"))
	assert.Equal(t, "Supply PBG-1", stripLeadingPO("Supply PBG-1", "PBG-1"))
	assert.Equal(t, "Supply", stripLeadingPO("  Supply ", ""))
}

func TestDollarValueNeverNegative(t *testing.T) {
	for _, s := range []string{"-15.00", "abc", "", "1,2,3", "$1,000", "3,200.00"} {
		v := parseAmount(s)
		assert.GreaterOrEqual(t, v, 0.0, s)
	}
	assert.Equal(t, 1000.0, parseAmount("$1,000"))
	assert.Equal(t, 0.0, parseAmount("-15.00"))

	rec := extractText(t, "Ambrose Construct Group\nTotal: $-50.00", "")
	assert.Equal(t, 0.0, rec.DollarValue)
}

func TestSupervisorName(t *testing.T) {
	tpl := detect.Detect("", "Ambrose").Template
	assert.Equal(t, "Tom Hill", supervisorName(tpl.SupervisorSection, "Supervisor:\n\n  Tom Hill\nABN 1"))
	assert.Equal(t, "Tom Hill", supervisorName(tpl.SupervisorSection, "Supervisor: Supervisor: Tom Hill"))
	assert.Equal(t, "", supervisorName(tpl.SupervisorSection, "Supervisor:\n0412 345 678\nTom"))
	assert.Equal(t, "", supervisorName(tpl.SupervisorSection, "no anchor here"))
	assert.Equal(t, "", supervisorName(nil, "Supervisor: x"))
}

func TestContactRoles(t *testing.T) {
	text := "Tenant: Sam Smith 0412 000 111\nAuthorised Person: Jo Blog\nBest Contact: Alex Kim alex@example.com\n"
	rec := extractText(t, text, "")

	assert.Equal(t, "Alex Kim alex@example.com", rec.BestContactName)
	assert.Equal(t, "Sam Smith", rec.TenantContactName)
	assert.Equal(t, "Jo Blog", rec.AuthorisedContactName)
	assert.Empty(t, rec.AlternateContactName)

	require.Len(t, rec.AlternateContacts, 3)
	assert.Equal(t, constants.ContactBest, rec.AlternateContacts[0].Type)
	assert.Equal(t, "alex@example.com", rec.AlternateContacts[0].Email)
	assert.Equal(t, entity.Contact{Type: constants.ContactTenant, Name: "Sam Smith", Phone: "0412 000 111"}, rec.AlternateContacts[1])
	assert.Equal(t, constants.ContactAuthorised, rec.AlternateContacts[2].Type)
}

func TestAlternateContactPhoneFillsBucket(t *testing.T) {
	rec := extractText(t, "Real Estate Agent: Ray White 07 3000 1111\n", "")
	assert.Equal(t, "Ray White", rec.AlternateContactName)
	assert.Equal(t, "07 3000 1111", rec.AlternateContactPhone)
	assert.Equal(t, "07 3000 1111", rec.Phone, "harvesting fills the first empty bucket regardless of label")
	require.Len(t, rec.AlternateContacts, 1)
	assert.Equal(t, constants.ContactRealEstateAgent, rec.AlternateContacts[0].Type)
}

func TestHarvestPhones(t *testing.T) {
	text := "Phone: 07 3344 5566\nMobile: 0412 345 678\nFax 07-3344-5566\n" +
		"0400 111 222\n0400111333\n0400111444\n0400111555\n0400111666\n0400111666\n"
	rec := entity.NewRecord()
	harvestPhones(text, rec)

	assert.Equal(t, "07 3344 5566", rec.Phone)
	assert.Equal(t, "0412 345 678", rec.Mobile)
	assert.Equal(t, "07-3344-5566", rec.WorkPhone)
	assert.Equal(t, "0400 111 222", rec.HomePhone)
	assert.Equal(t, "0400111333", rec.SupervisorMobile)
	assert.Equal(t, "0400111444", rec.AlternateContactPhone)
	assert.Equal(t, []string{"0400111555", "0400111666"}, rec.ExtraPhones)
}

func TestHarvestPhonesIsPositional(t *testing.T) {
	text := "Client: Jane Doe\nSupervisor Mobile: 0412345678\nHome: 0733445566\n"
	rec := extractText(t, text, "")

	assert.Equal(t, "0412345678", rec.SupervisorMobile)
	assert.Equal(t, "0412345678", rec.Phone)
	assert.Equal(t, "0733445566", rec.Mobile)
	assert.Empty(t, rec.HomePhone)
}

func TestHarvestPhonesKeepsExistingBuckets(t *testing.T) {
	rec := entity.NewRecord()
	rec.Phone = "07 1111 2222"
	rec.ExtraPhones = []string{"0499 000 000"}
	harvestPhones("0412 345 678 0400111222 0400111333 0400111444 0400111555 0499000000 0400111666", rec)

	assert.Equal(t, "07 1111 2222", rec.Phone)
	assert.Equal(t, "0412 345 678", rec.Mobile)
	assert.Equal(t, "0400111555", rec.AlternateContactPhone)
	assert.Equal(t, []string{"0499 000 000", "0400111666"}, rec.ExtraPhones)
}

func TestAddress(t *testing.T) {
	t.Run("multi line", func(t *testing.T) {
		rec := entity.NewRecord()
		extractAddress("Site Address: Unit 4\n12 Smith St\nNewstead QLD 4006\nClient: X", rec)
		assert.Equal(t, "Unit 4\n12 Smith St\nNewstead QLD 4006", rec.Address)
		assert.Equal(t, "Unit 4", rec.Address1)
		assert.Equal(t, "12 Smith St", rec.Address2)
		assert.Equal(t, "Newstead", rec.City)
		assert.Equal(t, "QLD", rec.State)
		assert.Equal(t, "4006", rec.ZipCode)
	})

	t.Run("single line", func(t *testing.T) {
		rec := entity.NewRecord()
		extractAddress("Address: 5 Long Rd, Ipswich QLD 4305", rec)
		assert.Equal(t, "5 Long Rd", rec.Address1)
		assert.Equal(t, "Ipswich", rec.City)
		assert.Equal(t, "4305", rec.ZipCode)
	})

	t.Run("stops at next label", func(t *testing.T) {
		rec := entity.NewRecord()
		extractAddress("Job Address:\n7 Hill St\nSupervisor: Tom", rec)
		assert.Equal(t, "7 Hill St", rec.Address)
		assert.Equal(t, "7 Hill St", rec.Address1)
		assert.Empty(t, rec.State)
	})

	t.Run("missing", func(t *testing.T) {
		rec := entity.NewRecord()
		extractAddress("nothing", rec)
		assert.Empty(t, rec.Address)
	})
}

func TestEmailsAndDates(t *testing.T) {
	text := "a@x.com b@y.com.au a@x.com\nCommencement Date: 01/02/2025\nInstallation Date: 3 March 2025\n"
	rec := extractText(t, text, "")
	assert.Equal(t, "a@x.com", rec.Email)
	assert.Equal(t, []string{"b@y.com.au"}, rec.ExtraEmails)
	assert.Equal(t, "01/02/2025", rec.CommencementDate)
	assert.Equal(t, "3 March 2025", rec.InstallationDate)

	oneSol := "One Solutions\nPurchase Order Number: AZ002766\nWorks to Commence\n12/03/2025\nWorks to be Completed By\n20/03/2025\n"
	rec = extractText(t, oneSol, "")
	assert.Equal(t, "One Solutions", rec.BuilderType)
	assert.Equal(t, "AZ002766", rec.PONumber)
	assert.Equal(t, "12/03/2025", rec.CommencementDate)
	assert.Equal(t, "20/03/2025", rec.CompletionDate)
}

func TestJobNumber(t *testing.T) {
	rec := extractText(t, "Ambrose Construct Group\nPO 20173719-30\n", "")
	assert.Equal(t, "20173719-30", rec.PONumber)
	assert.Equal(t, "20173719", rec.JobNumber)

	rec = extractText(t, "Job No: J-4411\n", "")
	assert.Equal(t, "J-4411", rec.JobNumber)
}

func TestMismatchWarningAttached(t *testing.T) {
	rec := extractText(t, "To: Rizon Group\nPurchase Order P123456\n", "Profile Build")
	assert.Equal(t, "Profile Build Group", rec.BuilderType)
	assert.NotEmpty(t, rec.BuilderMismatchWarning)
	assert.Equal(t, "Rizon Group", rec.DetectedBuilder)
}

func TestExtractNilRecordAndTemplate(t *testing.T) {
	rec := NewExtractor(nil).Extract("Customer: Bob", detect.Detection{}, nil)
	require.NotNil(t, rec)
	assert.Equal(t, "Generic", rec.BuilderType)
	assert.Equal(t, "Bob", rec.CustomerName)
}
