// Package common provides scenario loading and output helpers shared by the
// quoting commands.
package common

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"lendrock/rate-quote/internal/export"
	"lendrock/rate-quote/internal/pricing"
)

// PrintQuote logs the quoting outcome and, when outFile is set, writes the
// quote to it: YAML for .yaml/.yml files, CSV otherwise.
func PrintQuote(log *logrus.Logger, quote *pricing.Quote, outFile string) {
	switch quote.Outcome {
	case pricing.OutcomeNoPrograms:
		log.Warn("No qualifying programs for this scenario; adjust your scenario and try again")
		log.Infof("Programs before filtering: %d", len(quote.PreFilter))
	default:
		log.Infof("Qualifying programs: %d", quote.Result.TotalPrograms)
		if quote.Target != nil {
			log.WithFields(logrus.Fields{
				"program": quote.Target.ProgramName,
				"rate":    quote.Target.Rate.StringFixed(3),
				"price":   quote.Target.Price.StringFixed(3),
				"payment": quote.Target.Payment.StringFixed(2),
			}).Info("Target quote")
		} else {
			log.Info("No rate option inside the par band; no target quote")
		}
	}

	if outFile == "" || quote.Result == nil {
		return
	}
	var err error
	switch strings.ToLower(filepath.Ext(outFile)) {
	case ".yaml", ".yml":
		err = writeQuoteYAML(quote, outFile)
	default:
		err = export.WriteQuoteCSV(quote.Result.Programs, outFile)
	}
	if err != nil {
		log.WithError(err).Error("Failed to write quote file")
		return
	}
	log.Infof("Wrote quote to %s", outFile)
}

// writeQuoteYAML dumps the whole quote, target and outcome included, for
// troubleshooting captured scenarios.
func writeQuoteYAML(quote *pricing.Quote, path string) error {
	data, err := yaml.Marshal(quote)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
