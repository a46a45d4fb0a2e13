package models

import (
	"github.com/shopspring/decimal"
)

// Program statuses as the engine reports them.
const (
	StatusEligible = "Eligible"
)

// Rate option statuses.
const (
	RateOptionAvailable = "Available"
)

// Adjustment is a single price/rate adjustment line. Amount is in price
// points with positive meaning cost to the borrower. Once parsed an
// adjustment is only ever filtered out or has its description rewritten;
// the numeric fields are never touched.
type Adjustment struct {
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	RateAdj     decimal.Decimal `json:"rateAdj" yaml:"rate_adj"`
}

// RateOption is one priced rate within a program.
type RateOption struct {
	Rate             decimal.Decimal `json:"rate" yaml:"rate"`
	Points           decimal.Decimal `json:"points" yaml:"points"`
	APR              decimal.Decimal `json:"apr" yaml:"apr"`
	Payment          decimal.Decimal `json:"payment" yaml:"payment"`
	Description      string          `json:"description" yaml:"description"`
	InvestorName     string          `json:"investorName" yaml:"investor_name"`
	Status           string          `json:"status" yaml:"status"`
	BestPrice        bool            `json:"bestPrice" yaml:"best_price"`
	TotalClosingCost decimal.Decimal `json:"totalClosingCost" yaml:"total_closing_cost"`
	CashToClose      decimal.Decimal `json:"cashToClose" yaml:"cash_to_close"`
	TemplateID       string          `json:"templateId,omitempty" yaml:"template_id,omitempty"`
	Adjustments      []Adjustment    `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
}

// Price is the implied price on the 100-par axis: 100 minus points.
func (r *RateOption) Price() decimal.Decimal {
	return decimal.NewFromInt(100).Sub(r.Points)
}

// Program is one loan program returned by the engine, owning its rate
// options exclusively.
type Program struct {
	Name            string          `json:"name" yaml:"name"`
	Status          string          `json:"status" yaml:"status"`
	Term            int             `json:"term" yaml:"term"` // engine field value, no unit conversion applied
	FinancingMethod string          `json:"financingMethod" yaml:"financing_method"`
	LoanType        string          `json:"loanType" yaml:"loan_type"`
	ParRate         decimal.Decimal `json:"parRate" yaml:"par_rate"`
	ParPoints       decimal.Decimal `json:"parPoints" yaml:"par_points"`
	Investor        string          `json:"investor" yaml:"investor"`
	LockDays        int             `json:"lockDays" yaml:"lock_days"`
	RateOptions     []RateOption    `json:"rateOptions" yaml:"rate_options"`
	Adjustments     []Adjustment    `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
}

// IsEligible reports whether the engine marked the program eligible.
func (p *Program) IsEligible() bool {
	return p.Status == StatusEligible
}

// Representative returns the rate option that stands in for the program at
// the top level: the one flagged best-price, else the first Available one,
// else the first option. Nil when the program has no options.
func (p *Program) Representative() *RateOption {
	if len(p.RateOptions) == 0 {
		return nil
	}
	for i := range p.RateOptions {
		if p.RateOptions[i].BestPrice {
			return &p.RateOptions[i]
		}
	}
	for i := range p.RateOptions {
		if p.RateOptions[i].Status == RateOptionAvailable {
			return &p.RateOptions[i]
		}
	}
	return &p.RateOptions[0]
}

// Diagnostics carries bounded raw-payload snippets for troubleshooting.
// Advisory only; nothing downstream may branch on these.
type Diagnostics struct {
	ProgramSample         string `json:"programSample,omitempty" yaml:"program_sample,omitempty"`
	AdjustmentTableSample string `json:"adjustmentTableSample,omitempty" yaml:"adjustment_table_sample,omitempty"`
}

// PricingResult is the assembled outcome of one pricing request. It is built
// once per response and then operated on in place by the filter, sanitizer,
// and selector steps.
type PricingResult struct {
	Programs          []Program    `json:"programs" yaml:"programs"`
	TotalPrograms     int          `json:"totalPrograms" yaml:"total_programs"`
	GlobalAdjustments []Adjustment `json:"globalAdjustments,omitempty" yaml:"global_adjustments,omitempty"`
	Diagnostics       Diagnostics  `json:"diagnostics" yaml:"diagnostics"`
}

// TargetPricingOption is the single quote selected for primary display.
// Derived, never stored; recomputed from the filtered programs per request.
type TargetPricingOption struct {
	Rate        decimal.Decimal `json:"rate" yaml:"rate"`
	Points      decimal.Decimal `json:"points" yaml:"points"`
	APR         decimal.Decimal `json:"apr" yaml:"apr"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Payment     decimal.Decimal `json:"payment" yaml:"payment"`
	ProgramName string          `json:"programName" yaml:"program_name"`
	Adjustments []Adjustment    `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
}
