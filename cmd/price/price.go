// Package price submits a scenario file to the live pricing engine and
// prints the resulting quote.
package price

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"lendrock/rate-quote/cmd/common"
	"lendrock/rate-quote/cmd/root"
	"lendrock/rate-quote/internal/config"
	"lendrock/rate-quote/internal/engine"
	"lendrock/rate-quote/internal/geo"
	"lendrock/rate-quote/internal/models"
	"lendrock/rate-quote/internal/pricing"
)

// Cmd represents the price command
var Cmd = &cobra.Command{
	Use:   "price",
	Short: "Price a loan scenario against the engine",
	Long: `Price reads a loan scenario from a JSON file, submits it to the
pricing engine, runs the quoting pipeline, and prints the selected quote.`,
	Run: priceFunc,
}

func priceFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Input scenario file: %s", root.SharedFlags.Input)

	scenario, err := common.LoadScenarioFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error loading scenario: %v", err)
	}
	if err := scenario.Validate(); err != nil {
		root.Log.Fatalf("Invalid scenario: %v", err)
	}

	cfg := config.Get()
	client := engine.NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PricingTimeout())
	defer cancel()

	resolveLocation(ctx, cfg, scenario)
	result, err := client.Price(ctx, scenario)
	if err != nil {
		root.Log.Fatalf("Pricing failed: %v", err)
	}

	quote := pricing.Evaluate(result, scenario)
	common.PrintQuote(root.Log, quote, root.SharedFlags.Output)
}

// resolveLocation fills in city/county/state from the ZIP code when a
// lookup endpoint is configured and the scenario left them empty. A failed
// lookup prices with the scenario as given.
func resolveLocation(ctx context.Context, cfg *config.Config, scenario *models.LoanScenario) {
	if cfg.Geo.LookupURL == "" || scenario.ZipCode == "" {
		return
	}
	if scenario.City != "" && scenario.State != "" {
		return
	}
	service := geo.NewService(cfg.Geo.LookupURL, time.Duration(cfg.Geo.TimeoutSeconds)*time.Second)
	loc, err := service.Lookup(ctx, scenario.ZipCode)
	if err != nil {
		root.Log.WithError(err).Warn("ZIP lookup failed, pricing without resolved location")
		return
	}
	if scenario.City == "" {
		scenario.City = loc.City
	}
	if scenario.County == "" {
		scenario.County = loc.County
	}
	if scenario.State == "" {
		scenario.State = loc.State
	}
}
