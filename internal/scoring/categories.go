package scoring

import (
	"fmt"
	"strings"

	"github.com/thabo/tender-insight/internal/types"
)

// scoreCertifications grades how many required certifications the company
// holds. An exact level match earns a partial-credit bonus on top of the
// per-certification point; the final ratio is clamped at 100.
func (s *Scorer) scoreCertifications(profile types.CompanyProfile, req types.TenderRequirements) (float64, []types.ChecklistItem) {
	required := req.RequiredCertifications
	if len(required) == 0 {
		return 100, []types.ChecklistItem{{Criterion: "No certification requirements", Met: true}}
	}

	items := make([]types.ChecklistItem, 0, len(required))
	matched := 0.0
	for _, entry := range required {
		code, level := splitCertEntry(entry)
		held := profile.HoldsCertification(code)
		items = append(items, types.ChecklistItem{
			Criterion: fmt.Sprintf("Has %s certification", code),
			Met:       held,
		})
		if !held {
			continue
		}
		matched++
		if level != "" && levelMatches(profile.CertificationValue(code), level) {
			matched += s.weights.LevelMatchBonus
		}
	}

	score := clamp(matched/float64(len(required))*100, 0, 100)
	return score, items
}

// splitCertEntry separates "CIDB: Grade 7" into code and level; a bare code
// has no level.
func splitCertEntry(entry string) (code, level string) {
	if idx := strings.Index(entry, ":"); idx >= 0 {
		return strings.ToUpper(strings.TrimSpace(entry[:idx])), strings.TrimSpace(entry[idx+1:])
	}
	return strings.ToUpper(strings.TrimSpace(entry)), ""
}

// levelMatches is a best-effort substring test of the required level against
// the recorded value ("Grade 7" matches "grade 7a"). Heuristic, not a
// correctness guarantee.
func levelMatches(recorded, required string) bool {
	return strings.Contains(strings.ToLower(recorded), strings.ToLower(required))
}

// scoreExperience grades the company's years against the requirement with
// stepped partial credit and a bonus for comfortably exceeding it.
func scoreExperience(profile types.CompanyProfile, req types.TenderRequirements) (float64, []types.ChecklistItem) {
	required := req.MinExperienceYears
	if required == 0 {
		return 100, []types.ChecklistItem{{Criterion: "No experience requirements", Met: true}}
	}

	years := profile.YearsExperience
	items := []types.ChecklistItem{{
		Criterion: fmt.Sprintf("Meets %d years experience requirement", required),
		Met:       years >= required,
	}}

	var score float64
	if years >= required {
		score = 100
	} else {
		ratio := float64(years) / float64(required)
		switch {
		case ratio >= 0.8:
			score = 80
		case ratio >= 0.6:
			score = 60
		case ratio >= 0.4:
			score = 40
		default:
			score = 20
		}
	}

	if years > required+5 {
		score = clamp(score+10, 0, 100)
		items = append(items, types.ChecklistItem{Criterion: "Exceeds experience requirements", Met: true})
	}
	return score, items
}

// scoreGeographic grades province coverage: each required province must
// appear verbatim in the company's region list.
func scoreGeographic(profile types.CompanyProfile, req types.TenderRequirements) (float64, []types.ChecklistItem) {
	required := req.RequiredRegions
	if len(required) == 0 {
		return 100, []types.ChecklistItem{{Criterion: "No geographic requirements", Met: true}}
	}

	coverage := profile.RegionList()
	items := make([]types.ChecklistItem, 0, len(required))
	matched := 0
	for _, province := range required {
		operates := false
		for _, region := range coverage {
			if region == province {
				operates = true
				break
			}
		}
		items = append(items, types.ChecklistItem{
			Criterion: fmt.Sprintf("Operates in %s", province),
			Met:       operates,
		})
		if operates {
			matched++
		}
	}
	return float64(matched) / float64(len(required)) * 100, items
}

// scoreSector grades industry alignment: direct sector match 100, match in
// the services description 80, related-term match through the shared
// taxonomy 70, otherwise 30. No inferred sector scores a neutral 50.
func (s *Scorer) scoreSector(profile types.CompanyProfile, req types.TenderRequirements) (float64, []types.ChecklistItem) {
	tenderSector := strings.ToLower(strings.TrimSpace(req.IndustrySector))
	if tenderSector == "" || tenderSector == strings.ToLower(types.DefaultSector) {
		return 50, []types.ChecklistItem{{Criterion: "No specific industry requirements", Met: true}}
	}

	companySector := strings.ToLower(profile.IndustrySector)
	services := strings.ToLower(profile.ServicesDescription)
	directItem := fmt.Sprintf("Industry matches %s", req.IndustrySector)

	if companySector != "" &&
		(strings.Contains(companySector, tenderSector) || strings.Contains(tenderSector, companySector)) {
		return 100, []types.ChecklistItem{{Criterion: directItem, Met: true}}
	}

	if services != "" && strings.Contains(services, tenderSector) {
		return 80, []types.ChecklistItem{
			{Criterion: directItem, Met: false},
			{Criterion: fmt.Sprintf("Services aligned with %s", req.IndustrySector), Met: true},
		}
	}

	for _, term := range s.classifier.RelatedTerms(tenderSector) {
		if strings.Contains(services, term) || strings.Contains(companySector, term) {
			return 70, []types.ChecklistItem{
				{Criterion: directItem, Met: false},
				{Criterion: fmt.Sprintf("Services related to %s", req.IndustrySector), Met: true},
			}
		}
	}

	return 30, []types.ChecklistItem{{Criterion: directItem, Met: false}}
}

// scoreCapacity grades basic company readiness independent of the tender:
// contact details, a substantive services description and a real name.
func scoreCapacity(profile types.CompanyProfile) (float64, []types.ChecklistItem) {
	hasContact := profile.ContactEmail != "" && profile.ContactPhone != ""
	hasServices := len(strings.TrimSpace(profile.ServicesDescription)) > 50
	hasName := len(strings.TrimSpace(profile.CompanyName)) > 2

	score := 0.0
	if hasContact {
		score += 40
	}
	if hasServices {
		score += 30
	}
	if hasName {
		score += 30
	}

	return score, []types.ChecklistItem{
		{Criterion: "Has complete contact information", Met: hasContact},
		{Criterion: "Has detailed services description", Met: hasServices},
		{Criterion: "Has valid company name", Met: hasName},
	}
}
