package engine

import (
	"fmt"
	"strings"

	"lendrock/rate-quote/internal/engineparser"
	"lendrock/rate-quote/internal/models"
)

// BuildRequestDocument renders the engine's native pricing request XML for a
// scenario. Enum fields go out as the engine's numeric codes; an unmapped
// variant fails here, at construction time, instead of defaulting silently.
func BuildRequestDocument(scenario *models.LoanScenario) (string, error) {
	occupancy, err := scenario.Occupancy.EngineCode()
	if err != nil {
		return "", err
	}
	propertyType, err := scenario.PropertyType.EngineCode()
	if err != nil {
		return "", err
	}
	purpose, err := scenario.Purpose.EngineCode()
	if err != nil {
		return "", err
	}
	documentation, err := scenario.Documentation.EngineCode()
	if err != nil {
		return "", err
	}
	citizenship := scenario.Citizenship
	if citizenship == "" {
		citizenship = models.CitizenUS
	}
	citizenshipCode, err := citizenship.EngineCode()
	if err != nil {
		return "", err
	}

	lockDays := scenario.LockDays
	if lockDays == 0 {
		lockDays = 30
	}

	var b strings.Builder
	b.WriteString(`<PriceLoanRequest>`)
	fmt.Fprintf(&b, `<PropertyLocation ZipCode="%s" City="%s" County="%s" State="%s"/>`,
		attr(scenario.ZipCode), attr(scenario.City), attr(scenario.County), attr(scenario.State))
	fmt.Fprintf(&b,
		`<LoanFields Occupancy="%s" PropertyType="%s" LoanPurpose="%s" PropertyValue="%s" DownPaymentPercent="%s" LoanAmount="%s" Impounds="%s" LockDays="%d" CreditScore="%d" Citizenship="%s" DocumentationType="%s"`,
		occupancy, propertyType, purpose,
		scenario.PropertyValue.String(), scenario.DownPaymentPercent().String(), scenario.LoanAmount.String(),
		boolAttr(scenario.Impounds), lockDays, scenario.CreditScore, citizenshipCode, documentation)
	if scenario.IsDSCR() && scenario.DSCR != nil {
		tierCode, err := scenario.DSCR.Tier.EngineCode()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, ` DSCRTier="%s"`, tierCode)
	}
	b.WriteString(`/>`)

	// Product filters: programs without a penalty are always requested;
	// penalty-bearing programs only when the occupancy permits one.
	fmt.Fprintf(&b, `<ProductFilters IncludeNoPPP="true" IncludePPP="%s" FixedRate="%s" InterestOnly="%s"/>`,
		boolAttr(scenario.Occupancy == models.OccupancyInvestment),
		boolAttr(scenario.FixedRate), boolAttr(scenario.InterestOnly))
	b.WriteString(`</PriceLoanRequest>`)
	return b.String(), nil
}

// BuildSOAPRequest wraps the request document, escaped once, in the SOAP
// envelope the engine expects.
func BuildSOAPRequest(scenario *models.LoanScenario) (string, error) {
	doc, err := BuildRequestDocument(scenario)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	b.WriteString(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">`)
	b.WriteString(`<soap:Body><PriceLoan><request>`)
	b.WriteString(engineparser.Escape(doc))
	b.WriteString(`</request></PriceLoan></soap:Body></soap:Envelope>`)
	return b.String(), nil
}

func attr(s string) string {
	return engineparser.Escape(s)
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
