// Package parse runs the quoting pipeline over a saved engine response
// file, without touching the network. Useful for troubleshooting captured
// payloads.
package parse

import (
	"os"

	"github.com/spf13/cobra"

	"lendrock/rate-quote/cmd/common"
	"lendrock/rate-quote/cmd/root"
	"lendrock/rate-quote/internal/engineparser"
	"lendrock/rate-quote/internal/models"
	"lendrock/rate-quote/internal/pricing"
)

var (
	scenarioFile string
	validateOnly bool
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a saved engine response file",
	Long: `Parse reads a saved SOAP/XML pricing response, reconstructs the loan
programs and rate options, applies the filtering and selection rules for a
scenario, and prints the outcome.`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "Scenario JSON file to filter/select against")
	Cmd.Flags().BoolVarP(&validateOnly, "validate", "v", false, "Only validate the response format")
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Input response file: %s", root.SharedFlags.Input)

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading response file: %v", err)
	}

	if err := engineparser.ValidateResponse(string(data)); err != nil {
		root.Log.Fatalf("Invalid response file: %v", err)
	}
	if validateOnly {
		root.Log.Info("Response file is a valid pricing response")
		return
	}

	result, err := engineparser.ParseResponse(string(data))
	if err != nil {
		root.Log.Fatalf("Error parsing response: %v", err)
	}

	scenario, err := loadScenario(scenarioFile)
	if err != nil {
		root.Log.Fatalf("Error loading scenario: %v", err)
	}

	quote := pricing.Evaluate(result, scenario)
	common.PrintQuote(root.Log, quote, root.SharedFlags.Output)
}

// loadScenario reads the scenario the pipeline should filter against. With
// no file given it falls back to a plain primary-occupancy purchase, which
// applies the strictest penalty filtering.
func loadScenario(path string) (*models.LoanScenario, error) {
	if path == "" {
		return &models.LoanScenario{
			Occupancy:     models.OccupancyPrimary,
			Purpose:       models.PurposePurchase,
			Documentation: models.DocFullDoc,
		}, nil
	}
	return common.LoadScenarioFile(path)
}
