package service

import (
	"core/internal/model"
	"core/internal/rules"
)

// UnknownLabel is the sentinel class the classifier reports when the
// winning index has no known label.
const UnknownLabel = "Unknown"

// Fixed fields for the low-confidence fallback recommendation
const (
	uncertainProductName = "Uncertain item"
	uncertainCategory    = "Possibly E-waste"
	uncertainHazards     = "Electronic items may contain hazardous materials."
	uncertainTips        = "Show this item to staff at a recycling centre."
)

var uncertainSteps = []string{
	"I am not fully confident about this item.",
	"If it is an electrical or electronic product, please avoid throwing it in normal dustbin.",
	"Take it to an authorised e-waste collection centre for guidance.",
}

// Resolver turns raw per-class classifier scores into a disposal
// recommendation, gating on a confidence threshold
type Resolver struct {
	store     *rules.Store
	threshold float64
}

// NewResolver creates a new classification resolver
func NewResolver(store *rules.Store, threshold float64) *Resolver {
	return &Resolver{
		store:     store,
		threshold: threshold,
	}
}

// Resolve selects the highest-scoring class and maps it to disposal
// guidance. It never fails: low confidence, an Unknown label, or a class
// with no rule entry all degrade to a documented default instead of an
// error. Pure function of its inputs plus the immutable rule store.
func (r *Resolver) Resolve(scores map[string]float64) model.Recommendation {
	best := argmax(scores)

	if best.Confidence < r.threshold || best.Label == UnknownLabel {
		return model.Recommendation{
			ProductName:    uncertainProductName,
			PredictedClass: best.Label,
			Confidence:     best.Confidence,
			Category:       uncertainCategory,
			DisposalSteps:  append([]string{}, uncertainSteps...),
			Hazards:        uncertainHazards,
			Tips:           uncertainTips,
		}
	}

	rule, ok := r.store.Get(best.Label)
	if !ok {
		// Classifier knows a class the rules file does not. Degrade to the
		// raw label rather than failing the request.
		return model.Recommendation{
			ProductName:    best.Label,
			PredictedClass: best.Label,
			Confidence:     best.Confidence,
			Category:       "E-waste",
			DisposalSteps:  []string{},
		}
	}

	return model.Recommendation{
		ProductName:    rule.DisplayName,
		PredictedClass: best.Label,
		Confidence:     best.Confidence,
		Category:       rule.Category,
		DisposalSteps:  append([]string{}, rule.DisposalSteps...),
		Hazards:        rule.Hazards,
		Tips:           rule.Tips,
	}
}

// argmax returns the highest-scoring label. Ties are broken by
// lexicographically smallest label so resolution is deterministic
// regardless of map iteration order.
func argmax(scores map[string]float64) model.ClassificationResult {
	best := model.ClassificationResult{Label: UnknownLabel}
	first := true
	for label, score := range scores {
		if first || score > best.Confidence || (score == best.Confidence && label < best.Label) {
			best = model.ClassificationResult{Label: label, Confidence: score}
			first = false
		}
	}
	return best
}
