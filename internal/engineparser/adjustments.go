package engineparser

import (
	"lendrock/rate-quote/internal/models"
)

// Engine tag and attribute names for the adjustments table section.
const (
	tagAdjustmentTables = "RateAdjustmentTables"
	tagAdjustmentTable  = "RateAdjustmentTable"
	tagAdjustmentItem   = "AdjustmentItem"
	tagAdjustment       = "Adjustment"
	attrTemplateID      = "TemplateId"
)

// AdjustmentTable is the template-id keyed adjustment lookup built from the
// response's adjustments table section. Built once per response, read-only
// afterward.
type AdjustmentTable struct {
	byTemplate map[string][]models.Adjustment
	order      []string
	raw        string
}

// Lookup returns the ordered adjustments for a template identifier, or nil
// when the identifier has no entry.
func (t *AdjustmentTable) Lookup(templateID string) []models.Adjustment {
	if t == nil || templateID == "" {
		return nil
	}
	return t.byTemplate[templateID]
}

// Flattened returns every table adjustment in document order, for the
// backward-compatible top-level global adjustments list.
func (t *AdjustmentTable) Flattened() []models.Adjustment {
	if t == nil {
		return nil
	}
	var out []models.Adjustment
	for _, id := range t.order {
		out = append(out, t.byTemplate[id]...)
	}
	return out
}

// RawSection returns the raw adjustments-table span for diagnostics.
func (t *AdjustmentTable) RawSection() string {
	if t == nil {
		return ""
	}
	return t.raw
}

// parseAdjustmentTable extracts the template-id → adjustments lookup from
// the unescaped engine document. A document without an adjustments table
// yields an empty lookup, not an error.
func parseAdjustmentTable(doc string) *AdjustmentTable {
	table := &AdjustmentTable{byTemplate: map[string][]models.Adjustment{}}
	section, ok := FindFirst(doc, tagAdjustmentTables)
	if !ok {
		log.Debug("Response has no adjustments table section")
		return table
	}
	table.raw = section.Body

	for _, block := range FindAll(section.Body, tagAdjustmentTable) {
		templateID := block.Attr(attrTemplateID)
		if templateID == "" {
			continue
		}
		var adjustments []models.Adjustment
		for _, item := range FindAll(block.Body, tagAdjustmentItem) {
			if adj, ok := adjustmentFromElement(item); ok {
				adjustments = append(adjustments, adj)
			}
		}
		if len(adjustments) == 0 {
			continue
		}
		if _, seen := table.byTemplate[templateID]; !seen {
			table.order = append(table.order, templateID)
		}
		table.byTemplate[templateID] = append(table.byTemplate[templateID], adjustments...)
	}
	log.WithField("templates", len(table.byTemplate)).Debug("Parsed adjustment table")
	return table
}

// adjustmentFromElement converts one adjustment-like element into an
// Adjustment. Items flagged hidden (internal price-group markers) and items
// without a description are dropped. A positive Point value is a cost to the
// borrower and maps to a negative price number; the sign flip is part of the
// wire contract.
func adjustmentFromElement(el Element) (models.Adjustment, bool) {
	if isTruthy(el.Attr("Hidden")) {
		return models.Adjustment{}, false
	}
	description := el.Attr("Description")
	if description == "" {
		return models.Adjustment{}, false
	}
	return models.Adjustment{
		Description: description,
		Amount:      parsePercent(el.Attr("Point")).Neg(),
		RateAdj:     parsePercent(el.Attr("Rate")),
	}, true
}

// parseEmbeddedAdjustments parses adjustment elements that sit directly in a
// program or rate-option body, excluding any that belong to a nested child
// element span.
func parseEmbeddedAdjustments(body string, exclude []Element) []models.Adjustment {
	var out []models.Adjustment
	for _, el := range FindAll(body, tagAdjustment) {
		if insideAny(el, exclude) {
			continue
		}
		if adj, ok := adjustmentFromElement(el); ok {
			out = append(out, adj)
		}
	}
	return out
}

func insideAny(el Element, spans []Element) bool {
	for _, s := range spans {
		if el.Start >= s.Start && el.End <= s.End {
			return true
		}
	}
	return false
}
