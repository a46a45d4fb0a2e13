package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Occupancy is the closed set of occupancy types a scenario can carry.
type Occupancy string

const (
	OccupancyPrimary    Occupancy = "primary"
	OccupancySecondary  Occupancy = "secondary"
	OccupancyInvestment Occupancy = "investment"
)

// ParseOccupancy converts an inbound string into an Occupancy value.
func ParseOccupancy(s string) (Occupancy, error) {
	switch Occupancy(s) {
	case OccupancyPrimary, OccupancySecondary, OccupancyInvestment:
		return Occupancy(s), nil
	}
	return "", fmt.Errorf("unknown occupancy type %q", s)
}

// EngineCode returns the pricing engine's numeric code for the occupancy.
func (o Occupancy) EngineCode() (string, error) {
	switch o {
	case OccupancyPrimary:
		return "1", nil
	case OccupancySecondary:
		return "2", nil
	case OccupancyInvestment:
		return "3", nil
	}
	return "", fmt.Errorf("no engine code for occupancy %q", o)
}

// PropertyType is the closed set of property types.
type PropertyType string

const (
	PropertySFR          PropertyType = "sfr"
	PropertyCondo        PropertyType = "condo"
	PropertyTownhome     PropertyType = "townhome"
	PropertyTwoToFour    PropertyType = "2-4unit"
	PropertyPUD          PropertyType = "pud"
	PropertyManufactured PropertyType = "manufactured"
)

// ParsePropertyType converts an inbound string into a PropertyType value.
func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case PropertySFR, PropertyCondo, PropertyTownhome, PropertyTwoToFour,
		PropertyPUD, PropertyManufactured:
		return PropertyType(s), nil
	}
	return "", fmt.Errorf("unknown property type %q", s)
}

// EngineCode returns the pricing engine's numeric code for the property type.
func (p PropertyType) EngineCode() (string, error) {
	switch p {
	case PropertySFR:
		return "1", nil
	case PropertyCondo:
		return "2", nil
	case PropertyTownhome:
		return "3", nil
	case PropertyTwoToFour:
		return "4", nil
	case PropertyPUD:
		return "5", nil
	case PropertyManufactured:
		return "6", nil
	}
	return "", fmt.Errorf("no engine code for property type %q", p)
}

// LoanPurpose is the closed set of loan purposes. PurposeRefinance is a
// rate/term refinance; cash-out is its own variant.
type LoanPurpose string

const (
	PurposePurchase  LoanPurpose = "purchase"
	PurposeRefinance LoanPurpose = "refinance"
	PurposeCashout   LoanPurpose = "cashout"
)

// ParseLoanPurpose converts an inbound string into a LoanPurpose value.
func ParseLoanPurpose(s string) (LoanPurpose, error) {
	switch LoanPurpose(s) {
	case PurposePurchase, PurposeRefinance, PurposeCashout:
		return LoanPurpose(s), nil
	}
	return "", fmt.Errorf("unknown loan purpose %q", s)
}

// EngineCode returns the pricing engine's numeric code for the loan purpose.
func (p LoanPurpose) EngineCode() (string, error) {
	switch p {
	case PurposePurchase:
		return "1", nil
	case PurposeRefinance:
		return "2", nil
	case PurposeCashout:
		return "3", nil
	}
	return "", fmt.Errorf("no engine code for loan purpose %q", p)
}

// DocumentationType is the closed set of income documentation types.
type DocumentationType string

const (
	DocFullDoc        DocumentationType = "fullDoc"
	DocDSCR           DocumentationType = "dscr"
	DocBankStatement  DocumentationType = "bankStatement"
	DocAssetDepletion DocumentationType = "assetDepletion"
)

// ParseDocumentationType converts an inbound string into a DocumentationType.
func ParseDocumentationType(s string) (DocumentationType, error) {
	switch DocumentationType(s) {
	case DocFullDoc, DocDSCR, DocBankStatement, DocAssetDepletion:
		return DocumentationType(s), nil
	}
	return "", fmt.Errorf("unknown documentation type %q", s)
}

// EngineCode returns the pricing engine's numeric code for the doc type.
func (d DocumentationType) EngineCode() (string, error) {
	switch d {
	case DocFullDoc:
		return "1", nil
	case DocDSCR:
		return "2", nil
	case DocBankStatement:
		return "3", nil
	case DocAssetDepletion:
		return "4", nil
	}
	return "", fmt.Errorf("no engine code for documentation type %q", d)
}

// Citizenship is the closed set of borrower citizenship statuses.
type Citizenship string

const (
	CitizenUS                   Citizenship = "usCitizen"
	CitizenPermanentResident    Citizenship = "permanentResident"
	CitizenNonPermanentResident Citizenship = "nonPermanentResident"
	CitizenForeignNational      Citizenship = "foreignNational"
)

// ParseCitizenship converts an inbound string into a Citizenship value.
func ParseCitizenship(s string) (Citizenship, error) {
	switch Citizenship(s) {
	case CitizenUS, CitizenPermanentResident, CitizenNonPermanentResident,
		CitizenForeignNational:
		return Citizenship(s), nil
	}
	return "", fmt.Errorf("unknown citizenship %q", s)
}

// EngineCode returns the pricing engine's numeric code for the citizenship.
func (c Citizenship) EngineCode() (string, error) {
	switch c {
	case CitizenUS:
		return "1", nil
	case CitizenPermanentResident:
		return "2", nil
	case CitizenNonPermanentResident:
		return "3", nil
	case CitizenForeignNational:
		return "4", nil
	}
	return "", fmt.Errorf("no engine code for citizenship %q", c)
}

// DSCRTier buckets a computed debt-service coverage ratio into the bands the
// pricing engine recognizes.
type DSCRTier string

const (
	DSCRTierHigh DSCRTier = ">=1.250"
	DSCRTierMid  DSCRTier = "1.000-1.249"
	DSCRTierLow  DSCRTier = "0.750-0.999"
	DSCRTierSub  DSCRTier = "<0.750"
)

// Label returns the display label for the tier.
func (t DSCRTier) Label() string { return string(t) }

// EngineCode returns the pricing engine's numeric code for the DSCR tier.
func (t DSCRTier) EngineCode() (string, error) {
	switch t {
	case DSCRTierHigh:
		return "1", nil
	case DSCRTierMid:
		return "2", nil
	case DSCRTierLow:
		return "3", nil
	case DSCRTierSub:
		return "4", nil
	}
	return "", fmt.Errorf("no engine code for DSCR tier %q", t)
}

// TierForRatio buckets a computed DSCR ratio into its tier.
func TierForRatio(ratio decimal.Decimal) DSCRTier {
	switch {
	case ratio.GreaterThanOrEqual(decimal.RequireFromString("1.250")):
		return DSCRTierHigh
	case ratio.GreaterThanOrEqual(decimal.RequireFromString("1.000")):
		return DSCRTierMid
	case ratio.GreaterThanOrEqual(decimal.RequireFromString("0.750")):
		return DSCRTierLow
	default:
		return DSCRTierSub
	}
}
