package engineparser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseNumber parses a numeric attribute, tolerating comma grouping and
// surrounding whitespace. Malformed input resolves to zero; field-level
// anomalies are never fatal.
func parseNumber(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.WithField("value", s).Debug("Unparsable numeric attribute, defaulting to 0")
		return decimal.Zero
	}
	return d
}

// parsePercent parses a percent-suffixed attribute ("0.500%") as a plain
// number.
func parsePercent(s string) decimal.Decimal {
	return parseNumber(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

// parseIntOr parses an integer attribute, falling back to def when the
// attribute is absent or unparsable.
func parseIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// isTruthy interprets the engine's boolean attribute spellings.
func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
