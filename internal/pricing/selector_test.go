package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendrock/rate-quote/internal/models"
)

// optionAtPrice builds a rate option whose implied price (100 - points) is
// the given price.
func optionAtPrice(price, description string) models.RateOption {
	points := decimal.NewFromInt(100).Sub(decimal.RequireFromString(price))
	return models.RateOption{
		Rate:        decimal.RequireFromString("7.125"),
		Points:      points,
		Description: description,
		Status:      models.RateOptionAvailable,
	}
}

func TestSelectTargetClosestToPar(t *testing.T) {
	programs := []models.Program{
		program("P", models.StatusEligible,
			optionAtPrice("98.8", "30yr Fixed"),
			optionAtPrice("99.5", "30yr Fixed"),
			optionAtPrice("100.2", "30yr Fixed"),
			optionAtPrice("101.3", "30yr Fixed"),
		),
	}

	target := SelectTarget(programs, models.OccupancyPrimary, "")
	require.NotNil(t, target)
	assert.True(t, target.Price.Equal(decimal.RequireFromString("100.2")), "distance 0.2 beats 0.5; out-of-band prices ignored")
	assert.Equal(t, "P", target.ProgramName)
}

func TestSelectTargetTieGoesToFirst(t *testing.T) {
	programs := []models.Program{
		program("First", models.StatusEligible, optionAtPrice("99.8", "30yr Fixed")),
		program("Second", models.StatusEligible, optionAtPrice("100.2", "30yr Fixed")),
	}

	target := SelectTarget(programs, models.OccupancyPrimary, "")
	require.NotNil(t, target)
	assert.Equal(t, "First", target.ProgramName)
}

func TestSelectTargetNoneInBand(t *testing.T) {
	programs := []models.Program{
		program("P", models.StatusEligible,
			optionAtPrice("98.5", "30yr Fixed"),
			optionAtPrice("101.5", "30yr Fixed"),
		),
	}

	assert.Nil(t, SelectTarget(programs, models.OccupancyPrimary, ""))
}

func TestSelectTargetSkipsPenaltyForPrimary(t *testing.T) {
	programs := []models.Program{
		program("P", models.StatusEligible,
			optionAtPrice("100.0", "3 YR PPP 30yr Fixed"),
			optionAtPrice("99.4", "30yr Fixed"),
		),
	}

	target := SelectTarget(programs, models.OccupancyPrimary, "")
	require.NotNil(t, target)
	assert.True(t, target.Price.Equal(decimal.RequireFromString("99.4")))
}

func TestSelectTargetOnlyPenaltiesForPrimary(t *testing.T) {
	programs := []models.Program{
		program("P", models.StatusEligible,
			optionAtPrice("100.0", "3 YR PPP 30yr Fixed"),
			optionAtPrice("99.9", "2YR PPP 30yr Fixed"),
		),
	}

	assert.Nil(t, SelectTarget(programs, models.OccupancyPrimary, "3year"))
}

func TestSelectTargetMatchesPrepaySelectionForInvestment(t *testing.T) {
	programs := []models.Program{
		program("P", models.StatusEligible,
			optionAtPrice("100.0", "3 YR PPP 30yr Fixed"),
			optionAtPrice("100.1", "5 YR PPP 30yr Fixed"),
			optionAtPrice("99.9", "5YR PPP 30yr Fixed"),
		),
	}

	// Exact label match wins pass one even when another option is closer to
	// par; both spaced and unspaced spellings match.
	target := SelectTarget(programs, models.OccupancyInvestment, "5year")
	require.NotNil(t, target)
	assert.True(t, target.Price.Equal(decimal.RequireFromString("99.9")))
}

func TestSelectTargetFallbackWithoutLabelMatch(t *testing.T) {
	programs := []models.Program{
		program("P", models.StatusEligible,
			optionAtPrice("100.2", "3 YR PPP 30yr Fixed"),
		),
	}

	// No option carries the selected 5-year label; pass two drops the label
	// requirement.
	target := SelectTarget(programs, models.OccupancyInvestment, "5year")
	require.NotNil(t, target)
	assert.True(t, target.Price.Equal(decimal.RequireFromString("100.2")))
}

func TestSelectTargetDefaultsToThreeYearLabel(t *testing.T) {
	programs := []models.Program{
		program("P", models.StatusEligible,
			optionAtPrice("100.4", "3 YR PPP 30yr Fixed"),
			optionAtPrice("100.1", "5 YR PPP 30yr Fixed"),
		),
	}

	target := SelectTarget(programs, models.OccupancyInvestment, "unrecognized")
	require.NotNil(t, target)
	assert.True(t, target.Price.Equal(decimal.RequireFromString("100.4")))
}
