package common

import (
	"encoding/json"
	"os"

	"lendrock/rate-quote/internal/models"
)

// LoadScenarioFile reads a loan scenario from a JSON file. A DSCR scenario
// without a precomputed ratio gets its ratio and tier derived from rent and
// expense.
func LoadScenarioFile(path string) (*models.LoanScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario models.LoanScenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	if scenario.IsDSCR() && scenario.DSCR != nil && scenario.DSCR.Ratio.IsZero() {
		scenario.DSCR.ComputeRatio()
	}
	return &scenario, nil
}
