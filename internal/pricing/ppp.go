// Package pricing implements the post-parse quoting pipeline: eligibility
// and prepayment-penalty filtering, adjustment sanitizing, and selection of
// the single target quote. Everything here is a pure in-memory computation
// shared by the HTTP handlers and the offline CLI commands.
package pricing

import (
	"strings"

	"github.com/sirupsen/logrus"

	"lendrock/rate-quote/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// A zero-length penalty period is no penalty at all; these markers pass even
// when the occupancy type forbids a prepayment penalty.
var zeroPenaltyMarkers = []string{"0MO PPP", "0 YR PPP", "0YR PPP"}

// IsPenaltyBearing classifies a program name or rate-option description as
// carrying a prepayment penalty. Zero-period markers are checked first; any
// other "PPP" preceded by a space or by a (possibly digit-prefixed) "YR" is
// a penalty marker.
func IsPenaltyBearing(text string) bool {
	if text == "" {
		return false
	}
	for _, marker := range zeroPenaltyMarkers {
		if strings.Contains(text, marker) {
			return false
		}
	}
	return strings.Contains(text, " PPP") || strings.Contains(text, "YR PPP")
}

// PenaltyPermitted reports whether the scenario's occupancy allows a
// prepayment penalty at all. Only investment properties do.
func PenaltyPermitted(occupancy models.Occupancy) bool {
	return occupancy == models.OccupancyInvestment
}

var prepayLabels = map[string]string{
	"5year": "5 YR PPP",
	"4year": "4 YR PPP",
	"3year": "3 YR PPP",
	"2year": "2 YR PPP",
	"1year": "1 YR PPP",
	"0year": "0 YR PPP",
}

// ExpectedPenaltyLabel maps the caller's prepay-period selection to the
// penalty label expected in a rate-option description. Unrecognized input
// falls back to the three-year label.
func ExpectedPenaltyLabel(period string) string {
	if label, ok := prepayLabels[period]; ok {
		return label
	}
	return "3 YR PPP"
}
