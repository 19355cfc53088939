package recommend

import "strings"

// RiskFlags are hard safety constraints. Either flag being true forces the
// conservative path through the rest of the pipeline.
type RiskFlags struct {
	DiseaseRisk bool `json:"hasDiseaseRisk"`
	InjuryRisk  bool `json:"hasInjuryRisk"`
}

// Any reports whether any risk flag is raised.
func (f RiskFlags) Any() bool {
	return f.DiseaseRisk || f.InjuryRisk
}

// KeywordTable holds the tagged risk keyword stems matched against free-text
// health fields. It is data, not code: deployments can swap in other
// languages without touching the assessor.
type KeywordTable struct {
	Disease []string
	Injury  []string
}

// DefaultKeywords returns the built-in English keyword stems.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		Disease: []string{"diabet", "asthma", "hypertens", "cardi", "cholester"},
		Injury:  []string{"knee", "shoulder", "back", "sprain", "tear"},
	}
}

// Assess scans the record's free-text health fields for risk keywords.
// Matching is case-insensitive substring containment with no negation
// handling: "old knee injury, resolved" still raises the injury flag.
func (t KeywordTable) Assess(rec FeatureRecord) RiskFlags {
	return RiskFlags{
		DiseaseRisk: containsAny(rec.PreexistingConditions, t.Disease),
		InjuryRisk:  containsAny(rec.CurrentInjuries, t.Injury),
	}
}

func containsAny(text string, stems []string) bool {
	lower := strings.ToLower(text)
	for _, stem := range stems {
		if strings.Contains(lower, strings.ToLower(stem)) {
			return true
		}
	}
	return false
}
