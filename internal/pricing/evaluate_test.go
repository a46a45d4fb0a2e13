package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendrock/rate-quote/internal/models"
)

func TestEvaluateQuotedOutcome(t *testing.T) {
	result := &models.PricingResult{Programs: []models.Program{
		program("A", models.StatusEligible, optionAtPrice("100.2", "30yr Fixed")),
		program("B", "Ineligible", optionAtPrice("99.9", "30yr Fixed")),
	}}

	quote := Evaluate(result, primaryScenario())

	assert.Equal(t, OutcomeQuoted, quote.Outcome)
	require.NotNil(t, quote.Target)
	assert.True(t, quote.Target.Price.Equal(decimal.RequireFromString("100.2")))
	assert.Nil(t, quote.PreFilter, "pre-filter list only attached when nothing qualifies")
	require.Len(t, quote.Result.Programs, 1)
	assert.Equal(t, "A", quote.Result.Programs[0].Name)
}

func TestEvaluateNoQualifyingPrograms(t *testing.T) {
	result := &models.PricingResult{Programs: []models.Program{
		program("A", "Ineligible", optionAtPrice("100.0", "30yr Fixed")),
	}}

	quote := Evaluate(result, primaryScenario())

	assert.Equal(t, OutcomeNoPrograms, quote.Outcome)
	assert.Nil(t, quote.Target)
	assert.Empty(t, quote.Result.Programs)
	require.Len(t, quote.PreFilter, 1)
	assert.Equal(t, "A", quote.PreFilter[0].Name)
}

func TestEvaluateQuotedWithoutTarget(t *testing.T) {
	// Eligible programs whose prices all fall outside the par band still
	// produce a quoted outcome; only the target is absent.
	result := &models.PricingResult{Programs: []models.Program{
		program("A", models.StatusEligible, optionAtPrice("98.0", "30yr Fixed")),
	}}

	quote := Evaluate(result, primaryScenario())

	assert.Equal(t, OutcomeQuoted, quote.Outcome)
	assert.Nil(t, quote.Target)
	require.Len(t, quote.Result.Programs, 1)
}

func TestEvaluateSanitizesBeforeSelection(t *testing.T) {
	opt := optionAtPrice("100.1", "30yr Fixed")
	opt.Adjustments = []models.Adjustment{adjustment("DSCR: DSCR >= 1.25", "-0.5")}
	result := &models.PricingResult{Programs: []models.Program{
		program("A", models.StatusEligible, opt),
	}}

	quote := Evaluate(result, primaryScenario())

	require.NotNil(t, quote.Target)
	assert.Empty(t, quote.Target.Adjustments, "target carries the sanitized adjustment list")
}
