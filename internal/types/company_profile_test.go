package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyProfile_Validate(t *testing.T) {
	valid := CompanyProfile{
		CompanyName:     "Mokoena Civils",
		YearsExperience: 5,
		ContactEmail:    "bids@mokoenacivils.co.za",
	}
	assert.NoError(t, valid.Validate())

	missing := CompanyProfile{}
	assert.Error(t, missing.Validate())

	short := CompanyProfile{CompanyName: "X"}
	assert.Error(t, short.Validate())

	negative := CompanyProfile{CompanyName: "Mokoena Civils", YearsExperience: -1}
	assert.Error(t, negative.Validate())

	badEmail := CompanyProfile{CompanyName: "Mokoena Civils", ContactEmail: "not-an-email"}
	assert.Error(t, badEmail.Validate())

	// email is optional
	noEmail := CompanyProfile{CompanyName: "Mokoena Civils"}
	assert.NoError(t, noEmail.Validate())
}

func TestHoldsCertification(t *testing.T) {
	p := CompanyProfile{Certifications: map[string]string{
		"CIDB Registration": "Grade 7",
		"SARS":              "true",
		"PSIRA":             "false",
		"ISO 9001":          "",
	}}

	// substring match on the recorded name, case-insensitive
	assert.True(t, p.HoldsCertification("cidb"))
	assert.True(t, p.HoldsCertification("CIDB"))
	assert.True(t, p.HoldsCertification("SARS"))

	// falsy values mean not held
	assert.False(t, p.HoldsCertification("PSIRA"))
	assert.False(t, p.HoldsCertification("ISO"))

	assert.False(t, p.HoldsCertification("CSD"))

	empty := CompanyProfile{}
	assert.False(t, empty.HoldsCertification("CIDB"))
}

func TestHoldsCertification_FalsyEntryDoesNotShadowTruthyOne(t *testing.T) {
	p := CompanyProfile{Certifications: map[string]string{
		"CIDB (expired)": "false",
		"CIDB current":   "Grade 5",
	}}
	assert.True(t, p.HoldsCertification("cidb"))
}

func TestCertificationValue_DeterministicAcrossDuplicates(t *testing.T) {
	p := CompanyProfile{Certifications: map[string]string{
		"CIDB old": "Grade 4",
		"CIDB new": "Grade 7",
	}}

	// the lexicographically smallest matching name wins every time
	for i := 0; i < 20; i++ {
		assert.Equal(t, "Grade 7", p.CertificationValue("cidb"))
	}

	assert.Equal(t, "", p.CertificationValue("psira"))
}

func TestCollectionsNeverNil(t *testing.T) {
	p := CompanyProfile{}
	assert.NotNil(t, p.CertificationMap())
	assert.NotNil(t, p.RegionList())
}

func TestChecklistMet(t *testing.T) {
	result := ScoringResult{Checklist: []ChecklistItem{
		{Criterion: "Has CIDB certification", Met: true},
		{Criterion: "Operates in Gauteng", Met: false},
	}}

	assert.True(t, result.ChecklistMet("Has CIDB certification"))
	assert.False(t, result.ChecklistMet("Operates in Gauteng"))
	assert.False(t, result.ChecklistMet("Unknown criterion"))
}

func TestDefaultRequirements(t *testing.T) {
	req := DefaultRequirements()

	assert.Equal(t, DefaultSector, req.IndustrySector)
	assert.Empty(t, req.RequiredCertifications)
	assert.NotNil(t, req.RequiredCertifications)
	assert.Zero(t, req.MinExperienceYears)
	assert.NotNil(t, req.RequiredRegions)
	assert.NotNil(t, req.TechnicalRequirements)
	assert.NotNil(t, req.SubmissionRequirements)
}
