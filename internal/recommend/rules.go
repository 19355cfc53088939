package recommend

import (
	"math"
	"strings"

	"fitness-backend/internal/classifier"
)

// LabelScore is one ranked (label, confidence) pair. Confidence is a
// percentage in [0, 100].
type LabelScore struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Outcome is the reconciled recommendation: a primary label, its confidence
// and the top-3 list, after any overrides.
type Outcome struct {
	PrimaryLabel string
	Confidence   float64
	Top3         []LabelScore
	RuleApplied  string
}

const (
	rehabilitationLabel = "Rehabilitation"
	fullBodyLabel       = "Full Body Workout"
	longDurationMin     = 120
)

type ruleInput struct {
	Flags       RiskFlags
	DurationMin float64
	Outcome     Outcome
}

// overrideRule is a pure predicate + transform pair. Rules run in declared
// order and the first match short-circuits the rest, so safety rules dominate
// consistency rules, which dominate the raw model.
type overrideRule struct {
	name      string
	applies   func(in ruleInput) bool
	transform func(out Outcome) Outcome
}

var overrideRules = []overrideRule{
	{
		name: "risk_rehabilitation",
		applies: func(in ruleInput) bool {
			return in.Flags.Any()
		},
		transform: func(out Outcome) Outcome {
			// Classifier output is discarded entirely.
			return Outcome{
				PrimaryLabel: rehabilitationLabel,
				Confidence:   85.0,
				Top3: []LabelScore{
					{Label: rehabilitationLabel, Confidence: 85.0},
					{Label: "Pilates", Confidence: 10.0},
					{Label: "Yoga", Confidence: 5.0},
				},
			}
		},
	},
	{
		name: "long_duration_strength",
		applies: func(in ruleInput) bool {
			return in.DurationMin > longDurationMin &&
				strings.Contains(strings.ToLower(in.Outcome.PrimaryLabel), "strength")
		},
		transform: func(out Outcome) Outcome {
			// Only the primary label and confidence change; the top-3 list
			// stays as the classifier produced it.
			out.PrimaryLabel = fullBodyLabel
			out.Confidence = round2(out.Confidence * 0.9)
			return out
		},
	},
}

// OutcomeFromPredictions converts classifier probabilities into the initial
// outcome: top-3 labels with confidences scaled to percentages.
func OutcomeFromPredictions(preds []classifier.Prediction) Outcome {
	top := preds
	if len(top) > 3 {
		top = top[:3]
	}
	out := Outcome{Top3: make([]LabelScore, 0, len(top))}
	for _, p := range top {
		out.Top3 = append(out.Top3, LabelScore{Label: p.Label, Confidence: round2(p.Probability * 100)})
	}
	if len(out.Top3) > 0 {
		out.PrimaryLabel = out.Top3[0].Label
		out.Confidence = out.Top3[0].Confidence
	}
	return out
}

// ApplyOverrides runs the override rules in priority order, short-circuiting
// on the first match.
func ApplyOverrides(out Outcome, flags RiskFlags, durationMin float64) Outcome {
	in := ruleInput{Flags: flags, DurationMin: durationMin, Outcome: out}
	for _, rule := range overrideRules {
		if rule.applies(in) {
			result := rule.transform(out)
			result.RuleApplied = rule.name
			return result
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
