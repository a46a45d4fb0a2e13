package engineparser

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

	"lendrock/rate-quote/internal/models"
	"lendrock/rate-quote/internal/quoteerror"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SOAP wrapper and engine document markers.
const (
	resultOpenTag  = "<PriceLoanResult>"
	resultCloseTag = "</PriceLoanResult>"
	tagLoanPricing = "LoanPricing"

	// Bound on the raw snippets carried in Diagnostics.
	diagnosticLimit = 400
)

// ValidateResponse checks that a response body is a well-formed SOAP
// document carrying a pricing result. A SOAP fault is reported as a
// transport-level failure with the fault text.
func ValidateResponse(raw string) error {
	root, err := xmlpath.Parse(strings.NewReader(raw))
	if err != nil {
		return &quoteerror.ParseError{Reason: "response is not well-formed XML", Snippet: snippet(raw)}
	}
	if fault, ok := xmlpath.MustCompile("//faultstring").String(root); ok {
		return &quoteerror.TransportError{Endpoint: "pricing", Err: &quoteerror.ParseError{Reason: "SOAP fault: " + fault}}
	}
	if _, ok := xmlpath.MustCompile("//PriceLoanResult").String(root); !ok {
		return &quoteerror.ParseError{Reason: "missing PriceLoanResult element", Snippet: snippet(raw)}
	}
	return nil
}

// ParseResponse turns a raw SOAP response body into an assembled
// PricingResult: double-unescape, build the adjustment lookup, build
// programs with their rate options, order them, and attach diagnostics.
// An engine-reported error status surfaces as a quoteerror.EngineError.
func ParseResponse(raw string) (*models.PricingResult, error) {
	payload, ok := extractResultPayload(raw)
	if !ok {
		return nil, &quoteerror.ParseError{Reason: "missing PriceLoanResult element", Snippet: snippet(raw)}
	}

	// The transport carries the engine's native document escaped inside an
	// escaped result string; exactly two passes recover it.
	doc := UnescapeTwice(payload)

	rootEl, ok := FindFirst(doc, tagLoanPricing)
	if !ok {
		return nil, &quoteerror.ParseError{Reason: "missing LoanPricing element", Snippet: snippet(doc)}
	}
	if rootEl.Attr("Status") == "Error" {
		return nil, &quoteerror.EngineError{Message: rootEl.Attr("ErrorMessage")}
	}

	table := parseAdjustmentTable(doc)
	programs, firstProgramRaw := parsePrograms(doc, table)
	sortPrograms(programs)

	result := &models.PricingResult{
		Programs:          programs,
		TotalPrograms:     len(programs),
		GlobalAdjustments: table.Flattened(),
		Diagnostics: models.Diagnostics{
			ProgramSample:         snippet(firstProgramRaw),
			AdjustmentTableSample: snippet(table.RawSection()),
		},
	}
	log.WithFields(logrus.Fields{
		"programs":    len(programs),
		"adjustments": len(result.GlobalAdjustments),
	}).Info("Parsed pricing response")
	return result, nil
}

// sortPrograms orders eligible programs first, then ascending by the
// representative option's rate within each eligibility class. The sort is
// stable so equal-rate programs keep their document order.
func sortPrograms(programs []models.Program) {
	sort.SliceStable(programs, func(i, j int) bool {
		ei, ej := programs[i].IsEligible(), programs[j].IsEligible()
		if ei != ej {
			return ei
		}
		ri, rj := programs[i].Representative(), programs[j].Representative()
		if ri == nil || rj == nil {
			return rj == nil && ri != nil
		}
		return ri.Rate.LessThan(rj.Rate)
	})
}

// extractResultPayload slices the escaped result string out of the SOAP
// body. The markers are matched literally on the raw body so that the
// payload reaches UnescapeTwice untouched.
func extractResultPayload(raw string) (string, bool) {
	start := strings.Index(raw, resultOpenTag)
	if start < 0 {
		return "", false
	}
	start += len(resultOpenTag)
	end := strings.Index(raw[start:], resultCloseTag)
	if end < 0 {
		return "", false
	}
	return raw[start : start+end], true
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > diagnosticLimit {
		return s[:diagnosticLimit]
	}
	return s
}
