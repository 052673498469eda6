package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
)

func TestSplitName(t *testing.T) {
	cases := []struct{ in, first, last string }{
		{"Jane Doe", "Jane", "Doe"},
		{"Mary Anne Smith", "Mary", "Anne Smith"},
		{"Cher", "Cher", ""},
		{"  ", "", ""},
	}
	for _, tc := range cases {
		first, last := splitName(tc.in)
		assert.Equal(t, tc.first, first, tc.in)
		assert.Equal(t, tc.last, last, tc.in)
	}
}

func TestNormalize(t *testing.T) {
	rec := entity.NewRecord()
	rec.CustomerName = "Jane Doe\nSite Address: 12 Smith St"
	rec.BusinessName = "A To Z Flooring Solutions"
	rec.Address = "12 Smith St\nBrisbane QLD 4000"
	rec.SupervisorName = "Supervisor: Tom Hill\nABN 123"
	rec.SupervisorMobile = "0499 887 766"
	rec.JobNumber = "0411000000"
	rec.Phone = "0412345678"
	rec.TenantContactName = "Tenant: Sam\nextra"
	rec.AlternateContacts = []entity.Contact{{Type: constants.ContactTenant, Name: "Tenant: Sam"}}
	rec.Email = "a@x.com"
	rec.ExtraEmails = []string{"a@x.com", "b@x.com", "b@x.com"}
	rec.ExtraPhones = []string{
		"0412 345 678", // phone bucket
		"07-3000-0000", // excluded
		"0499887766",   // supervisor mobile
		"0455 000 111",
		"0455000111", // duplicate
		"0411000000", // actual job number
	}
	rec.DescriptionOfWorks = "Supply carpet"

	n := NewNormalizer([]string{"07 3000 0000"}, nil)
	got := n.Normalize(rec)

	assert.Equal(t, "Jane Doe", got.CustomerName)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Empty(t, got.BusinessName)
	assert.Equal(t, "12 Smith St", got.Address)
	assert.Equal(t, "Tom Hill", got.SupervisorName)
	assert.Equal(t, "0411000000", got.ActualJobNumber)
	assert.Equal(t, "Tom Hill 0499 887 766", got.JobNumber)
	assert.Equal(t, "Sam", got.TenantContactName)
	assert.Equal(t, "Sam", got.AlternateContacts[0].Name)
	assert.Equal(t, []string{"0455 000 111"}, got.ExtraPhones)
	assert.Equal(t, []string{"b@x.com"}, got.ExtraEmails)
	assert.Equal(t, "Supply carpet", got.ScopeOfWork)
}

func TestNormalizeIdempotent(t *testing.T) {
	build := func() *entity.Record {
		rec := entity.NewRecord()
		rec.CustomerName = "Jane Doe"
		rec.SupervisorName = "Tom Hill"
		rec.SupervisorMobile = "0412345678"
		rec.ExtraPhones = []string{"0400111222", "0400111222"}
		return rec
	}
	n := NewNormalizer(nil, nil)

	once := n.Normalize(build())
	twice := n.Normalize(n.Normalize(build()))
	assert.Equal(t, once, twice)
	assert.Equal(t, "Tom Hill 0412345678", twice.JobNumber)
	assert.Empty(t, twice.ActualJobNumber)
}

func TestNormalizeKeepsJobNumberWithoutSupervisor(t *testing.T) {
	rec := entity.NewRecord()
	rec.JobNumber = "20173719"
	got := NewNormalizer(nil, nil).Normalize(rec)
	assert.Equal(t, "20173719", got.JobNumber)
	assert.Equal(t, "20173719", got.ActualJobNumber)
}

func TestNormalizeNilSlices(t *testing.T) {
	got := NewNormalizer(nil, nil).Normalize(&entity.Record{})
	require.NotNil(t, got.ExtraPhones)
	require.NotNil(t, got.ExtraEmails)
	require.NotNil(t, got.AlternateContacts)
	require.NoError(t, got.Validate())
}
