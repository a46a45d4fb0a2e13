package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"lendrock/rate-quote/internal/models"
)

// Only prices inside the par band are candidates for the displayed quote.
var (
	parPrice  = decimal.NewFromInt(100)
	bandFloor = decimal.RequireFromString("99.0")
	bandCeil  = decimal.RequireFromString("101.0")
)

// SelectTarget picks the single rate option that drives the primary
// displayed quote. Pass one looks for an exact prepay-label match (when a
// penalty is permitted) with the price closest to par; pass two drops the
// label requirement. Ties go to the first option in program/rate-option
// scan order. Returns nil when no option lands inside the par band.
func SelectTarget(programs []models.Program, occupancy models.Occupancy, prepayPeriod string) *models.TargetPricingOption {
	permitted := PenaltyPermitted(occupancy)
	label := ExpectedPenaltyLabel(prepayPeriod)
	// The engine spells the label both with and without the space before YR.
	labelTight := strings.ReplaceAll(label, " YR", "YR")

	if target := scanForTarget(programs, permitted, true, label, labelTight); target != nil {
		return target
	}
	return scanForTarget(programs, permitted, false, "", "")
}

func scanForTarget(programs []models.Program, permitted, requireLabel bool, label, labelTight string) *models.TargetPricingOption {
	var best *models.TargetPricingOption
	var bestDistance decimal.Decimal

	for pi := range programs {
		program := &programs[pi]
		for oi := range program.RateOptions {
			option := &program.RateOptions[oi]
			if !permitted && IsPenaltyBearing(option.Description) {
				continue
			}
			if requireLabel && permitted {
				if !strings.Contains(option.Description, label) && !strings.Contains(option.Description, labelTight) {
					continue
				}
			}
			price := option.Price()
			if price.LessThan(bandFloor) || price.GreaterThan(bandCeil) {
				continue
			}
			distance := price.Sub(parPrice).Abs()
			if best != nil && !distance.LessThan(bestDistance) {
				continue
			}
			best = &models.TargetPricingOption{
				Rate:        option.Rate,
				Points:      option.Points,
				APR:         option.APR,
				Price:       price,
				Payment:     option.Payment,
				ProgramName: program.Name,
				Adjustments: option.Adjustments,
			}
			bestDistance = distance
		}
	}
	return best
}
