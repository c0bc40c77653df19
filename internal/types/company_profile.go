package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CompanyProfile is the read model of a company as maintained by the profile
// management subsystem. The engine consumes it read-only; missing collections
// are treated as empty, never as errors.
type CompanyProfile struct {
	CompanyName    string `json:"company_name" validate:"required,min=2"`
	IndustrySector string `json:"industry_sector"`

	// Certifications maps certification names to their recorded value
	// ("CIDB" -> "Grade 7", "SARS" -> "true"). A value of "", "false", "no"
	// or "0" means the certification is not actually held.
	Certifications map[string]string `json:"certifications"`

	YearsExperience int `json:"years_experience" validate:"gte=0"`

	// Regions lists the provinces the company operates in, using the same
	// canonical names the extractor emits.
	Regions []string `json:"regions"`

	ServicesDescription string `json:"services_description"`
	ContactEmail        string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone        string `json:"contact_phone"`
}

var profileValidator = validator.New()

// Validate checks the structural constraints a profile must satisfy before
// it is worth scoring. The scorer itself tolerates any profile.
func (p *CompanyProfile) Validate() error {
	return profileValidator.Struct(p)
}

// CertificationMap returns the certifications map, never nil.
func (p *CompanyProfile) CertificationMap() map[string]string {
	if p.Certifications == nil {
		return map[string]string{}
	}
	return p.Certifications
}

// RegionList returns the coverage list, never nil.
func (p *CompanyProfile) RegionList() []string {
	if p.Regions == nil {
		return []string{}
	}
	return p.Regions
}

// HoldsCertification reports whether any recorded certification name contains
// the given code (case-insensitive) with a truthy value. Blank, "false", "no"
// and "0" values count as not held.
func (p *CompanyProfile) HoldsCertification(code string) bool {
	code = strings.ToLower(code)
	for name, value := range p.CertificationMap() {
		if !strings.Contains(strings.ToLower(name), code) {
			continue
		}
		switch strings.TrimSpace(strings.ToLower(value)) {
		case "", "false", "no", "0":
		default:
			return true
		}
	}
	return false
}

// CertificationValue returns the recorded value for the certification whose
// name contains the given code, or "" when none matches. When several names
// match, the lexicographically smallest name wins so results stay
// deterministic across map iteration orders.
func (p *CompanyProfile) CertificationValue(code string) string {
	code = strings.ToLower(code)
	bestName, bestValue := "", ""
	for name, value := range p.CertificationMap() {
		if !strings.Contains(strings.ToLower(name), code) {
			continue
		}
		if bestName == "" || name < bestName {
			bestName, bestValue = name, value
		}
	}
	return bestValue
}
