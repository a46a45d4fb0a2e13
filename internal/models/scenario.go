// Package models holds the loan scenario and pricing data model shared by
// the engine client, the response parser, and the quoting pipeline.
package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DSCRInputs carries the debt-service coverage figures for investment
// scenarios qualified on rental income.
type DSCRInputs struct {
	GrossRent      decimal.Decimal `json:"grossRent" yaml:"gross_rent"`
	HousingExpense decimal.Decimal `json:"housingExpense" yaml:"housing_expense"`
	Ratio          decimal.Decimal `json:"ratio" yaml:"ratio"`
	Tier           DSCRTier        `json:"tier" yaml:"tier"`
}

// ComputeRatio derives the coverage ratio and tier from rent and expense.
// A zero housing expense leaves the inputs unchanged.
func (d *DSCRInputs) ComputeRatio() {
	if d.HousingExpense.IsZero() {
		return
	}
	d.Ratio = d.GrossRent.DivRound(d.HousingExpense, 3)
	d.Tier = TierForRatio(d.Ratio)
}

// LoanScenario is the inbound quoting request. Synonym normalization of
// free-text occupancy/property descriptions happens upstream; by the time a
// scenario reaches this package the enum fields are canonical.
type LoanScenario struct {
	LoanAmount    decimal.Decimal   `json:"loanAmount" yaml:"loan_amount" validate:"required"`
	PropertyValue decimal.Decimal   `json:"propertyValue" yaml:"property_value" validate:"required"`
	CreditScore   int               `json:"creditScore" yaml:"credit_score" validate:"gte=300,lte=850"`
	DTI           decimal.Decimal   `json:"dti" yaml:"dti"`
	Occupancy     Occupancy         `json:"occupancy" yaml:"occupancy" validate:"required"`
	PropertyType  PropertyType      `json:"propertyType" yaml:"property_type" validate:"required"`
	Purpose       LoanPurpose       `json:"purpose" yaml:"purpose" validate:"required"`
	Term          int               `json:"term" yaml:"term"`
	Documentation DocumentationType `json:"documentation" yaml:"documentation" validate:"required"`
	Citizenship   Citizenship       `json:"citizenship" yaml:"citizenship"`
	ZipCode       string            `json:"zipCode" yaml:"zip_code" validate:"omitempty,len=5,numeric"`
	City          string            `json:"city" yaml:"city"`
	County        string            `json:"county" yaml:"county"`
	State         string            `json:"state" yaml:"state"`
	Impounds      bool              `json:"impounds" yaml:"impounds"`
	LockDays      int               `json:"lockDays" yaml:"lock_days"`
	FixedRate     bool              `json:"fixedRate" yaml:"fixed_rate"`
	InterestOnly  bool              `json:"interestOnly" yaml:"interest_only"`
	PrepayPeriod  string            `json:"prepayPeriod" yaml:"prepay_period"`
	DSCR          *DSCRInputs       `json:"dscr,omitempty" yaml:"dscr,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	return v
}

// Validate checks field-level constraints plus the cross-field invariants
// that the validator tags cannot express.
func (s *LoanScenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	if _, err := s.Occupancy.EngineCode(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	if _, err := s.PropertyType.EngineCode(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	if _, err := s.Purpose.EngineCode(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	if _, err := s.Documentation.EngineCode(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	if s.Citizenship != "" {
		if _, err := s.Citizenship.EngineCode(); err != nil {
			return fmt.Errorf("invalid scenario: %w", err)
		}
	}
	// DSCR documentation is only defined for investment properties.
	if s.Documentation == DocDSCR && s.Occupancy != OccupancyInvestment {
		return fmt.Errorf("invalid scenario: DSCR documentation requires investment occupancy, got %q", s.Occupancy)
	}
	if s.LoanAmount.GreaterThan(s.PropertyValue) {
		return fmt.Errorf("invalid scenario: loan amount %s exceeds property value %s", s.LoanAmount, s.PropertyValue)
	}
	return nil
}

// IsDSCR reports whether the scenario qualifies on debt-service coverage.
func (s *LoanScenario) IsDSCR() bool {
	return s.Documentation == DocDSCR
}

// DownPaymentPercent computes the down-payment share of the property value
// as a percentage. Returns zero when the property value is zero.
func (s *LoanScenario) DownPaymentPercent() decimal.Decimal {
	if s.PropertyValue.IsZero() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return s.PropertyValue.Sub(s.LoanAmount).Div(s.PropertyValue).Mul(hundred).Round(3)
}
