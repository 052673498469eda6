package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in    string
		want  Builder
		match bool
	}{
		{"PROFILE BUILD GROUP", Profile, true},
		{"  profile-build ", Profile, true},
		{"PBG", Profile, true},
		{"Ａｍｂｒｏｓｅ", Ambrose, true},
		{"Campbell Construction Co", Campbell, true},
		{"Rizon", Rizon, true},
		{"AustralianRestoration", AustralianRestoration, true},
		{"Townsend Building Services", Townsend, true},
		{"one solutions", OneSolutions, true},
		{"Acme Homes", Generic, false},
		{"", Generic, false},
		{"   ", Generic, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := Canonicalize(tc.in)
			assert.Equal(t, tc.match, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuilderNames(t *testing.T) {
	assert.Equal(t, "Profile Build Group", Profile.String())
	assert.True(t, Rizon.Known())
	assert.False(t, Generic.Known())
	assert.False(t, Builder("Nope").Known())
	assert.Len(t, AsStringSlice(), len(AllBuilders()))
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
}
