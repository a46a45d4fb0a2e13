package engineparser

import (
	"lendrock/rate-quote/internal/models"
)

// Engine tag names for the program section.
const (
	tagLoanProgram = "LoanProgram"
	tagRateOption  = "RateOption"
)

// Field defaults documented by the engine's response contract.
const (
	defaultTerm     = 360 // engine field value; no unit conversion applied
	defaultLockDays = 30
)

// parsePrograms extracts every loan program from the unescaped engine
// document, joining rate options to their adjustment lists through the
// template table with a fallback to adjustments embedded in the option body.
// Programs without a name or without a single parsed rate option are
// dropped. The second return is the raw body of the first program that
// survives those checks, for diagnostics.
func parsePrograms(doc string, table *AdjustmentTable) ([]models.Program, string) {
	var programs []models.Program
	var firstRaw string

	for _, el := range FindAll(doc, tagLoanProgram) {
		program := programFromElement(el, table)
		if program.Name == "" || len(program.RateOptions) == 0 {
			log.WithField("name", program.Name).Debug("Dropping incomplete program")
			continue
		}
		if firstRaw == "" {
			firstRaw = el.Body
		}
		programs = append(programs, program)
	}
	return programs, firstRaw
}

func programFromElement(el Element, table *AdjustmentTable) models.Program {
	options := FindAll(el.Body, tagRateOption)

	program := models.Program{
		Name:            el.Attr("ProgramName"),
		Status:          el.Attr("Status"),
		Term:            parseIntOr(el.Attr("Term"), defaultTerm),
		FinancingMethod: el.Attr("FinancingMethod"),
		LoanType:        el.Attr("LoanType"),
		ParRate:         parseNumber(el.Attr("Rate")),
		ParPoints:       parseNumber(el.Attr("Point")),
		Investor:        el.AttrOr("InvestorId", el.Attr("ProductCode")),
		LockDays:        parseIntOr(el.Attr("LockDays"), defaultLockDays),
		Adjustments:     parseEmbeddedAdjustments(el.Body, options),
	}

	for _, opt := range options {
		program.RateOptions = append(program.RateOptions, rateOptionFromElement(opt, table))
	}
	return program
}

func rateOptionFromElement(el Element, table *AdjustmentTable) models.RateOption {
	option := models.RateOption{
		Rate:             parseNumber(el.Attr("Rate")),
		Points:           parseNumber(el.Attr("Point")),
		APR:              parseNumber(el.Attr("APR")),
		Payment:          parseNumber(el.Attr("Payment")),
		Description:      el.Attr("Description"),
		InvestorName:     el.Attr("InvestorName"),
		Status:           el.Attr("Status"),
		BestPrice:        isTruthy(el.Attr("BestPrice")),
		TotalClosingCost: parseNumber(el.Attr("TotalClosingCost")),
		CashToClose:      parseNumber(el.Attr("CashToClose")),
		TemplateID:       el.Attr(attrTemplateID),
	}

	// Template table first, embedded adjustments only as a fallback.
	if adjustments := table.Lookup(option.TemplateID); len(adjustments) > 0 {
		option.Adjustments = append([]models.Adjustment(nil), adjustments...)
	} else if !el.SelfClosing {
		option.Adjustments = parseEmbeddedAdjustments(el.Body, nil)
	}
	return option
}
