// Package export writes quoted programs to CSV for spreadsheet review.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"lendrock/rate-quote/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// QuoteRow is one rate option flattened for CSV output.
type QuoteRow struct {
	Program      string `csv:"Program"`
	Status       string `csv:"Status"`
	Investor     string `csv:"Investor"`
	Rate         string `csv:"Rate"`
	Points       string `csv:"Points"`
	Price        string `csv:"Price"`
	APR          string `csv:"APR"`
	Payment      string `csv:"Payment"`
	Description  string `csv:"Description"`
	OptionStatus string `csv:"OptionStatus"`
	Adjustments  string `csv:"Adjustments"`
}

// BuildQuoteRows flattens programs and their rate options into CSV rows.
func BuildQuoteRows(programs []models.Program) []QuoteRow {
	var rows []QuoteRow
	for i := range programs {
		program := &programs[i]
		for j := range program.RateOptions {
			option := &program.RateOptions[j]
			rows = append(rows, QuoteRow{
				Program:      program.Name,
				Status:       program.Status,
				Investor:     program.Investor,
				Rate:         option.Rate.StringFixed(3),
				Points:       option.Points.StringFixed(3),
				Price:        option.Price().StringFixed(3),
				APR:          option.APR.StringFixed(3),
				Payment:      option.Payment.StringFixed(2),
				Description:  option.Description,
				OptionStatus: option.Status,
				Adjustments:  formatAdjustments(option.Adjustments),
			})
		}
	}
	return rows
}

// WriteQuoteCSV writes programs to a CSV file, one row per rate option.
func WriteQuoteCSV(programs []models.Program, csvFile string) error {
	rows := BuildQuoteRows(programs)
	log.WithFields(logrus.Fields{"file": csvFile, "rows": len(rows)}).Info("Writing quote CSV")

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

func formatAdjustments(adjustments []models.Adjustment) string {
	if len(adjustments) == 0 {
		return ""
	}
	parts := make([]string, 0, len(adjustments))
	for _, adj := range adjustments {
		parts = append(parts, fmt.Sprintf("%s (%s)", adj.Description, adj.Amount.StringFixed(3)))
	}
	return strings.Join(parts, "; ")
}
