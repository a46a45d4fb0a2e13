package pricing

import (
	"lendrock/rate-quote/internal/models"
)

// Filter removes ineligible programs and, unless the scenario's occupancy
// permits a prepayment penalty, removes penalty-bearing programs and rate
// options. A program that loses every rate option is dropped entirely. The
// result is mutated in place; the pre-filter program list is returned so
// callers can surface it as diagnostic context when nothing survives.
func Filter(result *models.PricingResult, scenario *models.LoanScenario) []models.Program {
	preFilter := append([]models.Program(nil), result.Programs...)
	permitted := PenaltyPermitted(scenario.Occupancy)

	kept := result.Programs[:0:0]
	for _, program := range result.Programs {
		if !program.IsEligible() {
			continue
		}
		if !permitted {
			rep := program.Representative()
			if IsPenaltyBearing(program.Name) || (rep != nil && IsPenaltyBearing(rep.Description)) {
				continue
			}
			options := program.RateOptions[:0:0]
			for _, option := range program.RateOptions {
				if IsPenaltyBearing(option.Description) {
					continue
				}
				options = append(options, option)
			}
			if len(options) == 0 {
				continue
			}
			program.RateOptions = options
		}
		kept = append(kept, program)
	}

	if dropped := len(preFilter) - len(kept); dropped > 0 {
		log.WithField("dropped", dropped).Debug("Filtered programs by eligibility and penalty rules")
	}
	result.Programs = kept
	result.TotalPrograms = len(kept)
	return preFilter
}
