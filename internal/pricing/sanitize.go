package pricing

import (
	"fmt"
	"regexp"
	"strings"

	"lendrock/rate-quote/internal/models"
)

// The engine reports only its own coarse eligibility threshold; the rewrite
// replaces it with the caller's precise computed ratio and tier.
var dscrThresholdPattern = regexp.MustCompile(`DSCR:\s*DSCR\s*>=\s*[0-9]+(?:\.[0-9]+)?`)

// Sanitize strips adjustments irrelevant to the scenario and rewrites
// DSCR-tier descriptions to the caller's computed ratio. The same rules run
// over rate-option, program-level, and global adjustment lists. Amounts and
// rate deltas are never touched.
func Sanitize(result *models.PricingResult, scenario *models.LoanScenario) {
	for i := range result.Programs {
		program := &result.Programs[i]
		program.Adjustments = sanitizeList(program.Adjustments, scenario)
		for j := range program.RateOptions {
			program.RateOptions[j].Adjustments = sanitizeList(program.RateOptions[j].Adjustments, scenario)
		}
	}
	result.GlobalAdjustments = sanitizeList(result.GlobalAdjustments, scenario)
}

func sanitizeList(adjustments []models.Adjustment, scenario *models.LoanScenario) []models.Adjustment {
	if len(adjustments) == 0 {
		return adjustments
	}
	out := adjustments[:0:0]
	for _, adj := range adjustments {
		upper := strings.ToUpper(adj.Description)
		if strings.Contains(upper, "DSCR") && !scenario.IsDSCR() {
			continue
		}
		if strings.Contains(upper, "CASHOUT") && scenario.Purpose == models.PurposeRefinance {
			continue
		}
		if strings.Contains(upper, "DSCR") && scenario.IsDSCR() && scenario.DSCR != nil && !scenario.DSCR.Ratio.IsZero() {
			adj.Description = rewriteDSCRDescription(adj.Description, scenario.DSCR)
		}
		out = append(out, adj)
	}
	return out
}

func rewriteDSCRDescription(description string, dscr *models.DSCRInputs) string {
	replacement := fmt.Sprintf("DSCR: %s (%s)", dscr.Ratio.StringFixed(3), dscr.Tier.Label())
	return dscrThresholdPattern.ReplaceAllString(description, replacement)
}
