package pricing

import (
	"lendrock/rate-quote/internal/models"
)

// Outcome labels for a quoting request. An empty program list after
// filtering is a valid outcome, distinct from any error.
const (
	OutcomeQuoted     = "quoted"
	OutcomeNoPrograms = "noQualifyingPrograms"
)

// Quote bundles the filtered, sanitized pricing result with the selected
// target option. PreFilter retains the pre-filter program list so a
// no-programs outcome can show the caller what was excluded.
type Quote struct {
	Result    *models.PricingResult       `json:"result"`
	Target    *models.TargetPricingOption `json:"target,omitempty"`
	PreFilter []models.Program            `json:"preFilterPrograms,omitempty"`
	Outcome   string                      `json:"outcome"`
}

// Evaluate runs the full post-parse pipeline over an assembled result:
// filter, sanitize, select. Both the request-handling boundary and the
// presentation commands consume this one implementation.
func Evaluate(result *models.PricingResult, scenario *models.LoanScenario) *Quote {
	preFilter := Filter(result, scenario)
	Sanitize(result, scenario)
	target := SelectTarget(result.Programs, scenario.Occupancy, scenario.PrepayPeriod)

	outcome := OutcomeQuoted
	if len(result.Programs) == 0 {
		outcome = OutcomeNoPrograms
	}
	quote := &Quote{
		Result:  result,
		Target:  target,
		Outcome: outcome,
	}
	if outcome == OutcomeNoPrograms {
		quote.PreFilter = preFilter
	}
	return quote
}
