// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lendrock/rate-quote/internal/config"
	"lendrock/rate-quote/internal/engine"
	"lendrock/rate-quote/internal/engineparser"
	"lendrock/rate-quote/internal/export"
	"lendrock/rate-quote/internal/geo"
	"lendrock/rate-quote/internal/history"
	"lendrock/rate-quote/internal/pricing"
	"lendrock/rate-quote/internal/server"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "rate-quote",
		Short: "A mortgage rate quoting front end for a third-party pricing engine.",
		Long: `rate-quote submits loan scenarios to a third-party pricing engine,
parses the SOAP/XML response into loan programs and rate options, applies
eligibility and prepayment-penalty rules, and selects the target quote.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to rate-quote!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all internal packages
			engineparser.SetLogger(Log)
			pricing.SetLogger(Log)
			engine.SetLogger(Log)
			server.SetLogger(Log)
			history.SetLogger(Log)
			geo.SetLogger(Log)
			export.SetLogger(Log)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
