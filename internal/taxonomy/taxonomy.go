// Package taxonomy holds the fixed keyword tables the analysis engine runs
// on: the sector keyword map, the certification registry and the canonical
// province list. Everything here is data; callers may substitute their own
// tables (the config layer does exactly that), so no package keeps a
// hard-coded private copy.
package taxonomy

import "sort"

// Sectors maps a sector label to the keywords that vote for it.
type Sectors map[string][]string

// Labels returns the sector labels in alphabetical order. Classification
// iterates this so tie-breaks land on the alphabetically-first label no
// matter how the map was built.
func (s Sectors) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// DefaultSectors returns the built-in eight-sector keyword taxonomy for
// South African public procurement.
func DefaultSectors() Sectors {
	return Sectors{
		"Construction": {
			"construction", "building", "civil", "engineering", "infrastructure",
			"roads", "bridges", "cidb", "earthworks", "paving", "renovation",
		},
		"IT Services": {
			"software", "technology", "digital", "computer", "system", "network",
			"cybersecurity", "information technology", "programming", "database",
		},
		"Security": {
			"security", "guard", "protection", "surveillance", "patrol",
			"access control", "cctv", "alarm", "monitoring", "response",
		},
		"Cleaning": {
			"cleaning", "sanitation", "hygiene", "janitorial",
			"waste management", "cleaning services", "housekeeping", "sanitization",
		},
		"Transport": {
			"transport", "logistics", "delivery", "shipping", "freight",
			"courier", "haulage", "fleet", "vehicles",
		},
		"Healthcare": {
			"medical", "health", "hospital", "clinic", "healthcare",
			"patient", "treatment", "medical services",
		},
		"Education": {
			"education", "training", "school", "university", "learning",
			"curriculum", "educational", "teaching",
		},
		"Agriculture": {
			"agriculture", "farming", "crops", "livestock", "irrigation",
			"harvest", "farming equipment",
		},
	}
}

// Certification is one entry of the certification registry: a code plus the
// ordered regex patterns that detect it. The first pattern that matches wins;
// its first capture group, if any, becomes the required level.
type Certification struct {
	Code     string
	Patterns []string
}

// DefaultCertifications returns the registry of South African procurement
// certifications, in the order requirements are reported.
func DefaultCertifications() []Certification {
	return []Certification{
		{Code: "CIDB", Patterns: []string{
			`cidb.*?grade\s*(\w+)`,
			`cidb.*?(\d+[a-z]*)`,
			`construction industry development board`,
			`grade\s*(\w+).*?cidb`,
		}},
		{Code: "BBBEE", Patterns: []string{
			`bbbee.*?level\s*(\d+)`,
			`b-bbee.*?level\s*(\d+)`,
			`broad-based black economic empowerment`,
			`bbbee`,
			`b-bbee`,
		}},
		{Code: "SARS", Patterns: []string{
			`sars.*?tax`,
			`tax clearance`,
			`tax certificate`,
			`tax compliant`,
		}},
		{Code: "CSD", Patterns: []string{
			`csd`,
			`central supplier database`,
			`supplier database`,
		}},
		{Code: "PSIRA", Patterns: []string{
			`psira`,
			`private security`,
			`security industry`,
		}},
		{Code: "ISO", Patterns: []string{
			`iso.*?(\d+)`,
			`iso.*?certification`,
			`iso.*?standard`,
		}},
		{Code: "SANS", Patterns: []string{
			`sans.*?(\d+)`,
			`south african national standard`,
		}},
	}
}

// Provinces returns the nine canonical South African province names in the
// casing the extractor and scorer exchange.
func Provinces() []string {
	return []string{
		"Gauteng",
		"Western Cape",
		"KwaZulu-Natal",
		"Eastern Cape",
		"Limpopo",
		"Mpumalanga",
		"North West",
		"Free State",
		"Northern Cape",
	}
}

// TechnicalTerms returns the fixed term list the complexity estimator counts.
func TechnicalTerms() []string {
	return []string{
		"specification", "requirement", "compliance", "standard",
		"regulation", "certification", "qualification", "mandatory",
	}
}
