package engineparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdjustmentTable(t *testing.T) {
	doc := `<LoanPricing Status="Success">` +
		`<RateAdjustmentTables>` +
		`<RateAdjustmentTable TemplateId="TPL-7250">` +
		`<AdjustmentItem Description="FICO 720-739" Point="0.500%" Rate="0.000%"/>` +
		`<AdjustmentItem Description="Internal price group" Point="1.000%" Hidden="1"/>` +
		`<AdjustmentItem Description="" Point="0.125%"/>` +
		`<AdjustmentItem Description="LTV 75-80" Point="-0.250%" Rate="0.125%"/>` +
		`</RateAdjustmentTable>` +
		`<RateAdjustmentTable TemplateId="TPL-7375">` +
		`<AdjustmentItem Description="Self-Employed &amp; Retired" Point="0.250%"/>` +
		`</RateAdjustmentTable>` +
		`</RateAdjustmentTables>` +
		`</LoanPricing>`

	table := parseAdjustmentTable(doc)

	adjustments := table.Lookup("TPL-7250")
	require.Len(t, adjustments, 2, "hidden and empty-description items are dropped")

	// A positive Point is a cost to the borrower: the price number flips sign.
	assert.Equal(t, "FICO 720-739", adjustments[0].Description)
	assert.True(t, adjustments[0].Amount.Equal(decimal.RequireFromString("-0.5")))
	assert.True(t, adjustments[0].RateAdj.IsZero())

	assert.Equal(t, "LTV 75-80", adjustments[1].Description)
	assert.True(t, adjustments[1].Amount.Equal(decimal.RequireFromString("0.25")))
	assert.True(t, adjustments[1].RateAdj.Equal(decimal.RequireFromString("0.125")))

	// Entities in descriptions are decoded.
	other := table.Lookup("TPL-7375")
	require.Len(t, other, 1)
	assert.Equal(t, "Self-Employed & Retired", other[0].Description)

	// Flattened keeps document order across templates.
	flat := table.Flattened()
	require.Len(t, flat, 3)
	assert.Equal(t, "FICO 720-739", flat[0].Description)
	assert.Equal(t, "Self-Employed & Retired", flat[2].Description)
}

func TestLookupUnknownTemplate(t *testing.T) {
	table := parseAdjustmentTable(`<RateAdjustmentTables></RateAdjustmentTables>`)
	assert.Nil(t, table.Lookup("TPL-MISSING"))
	assert.Nil(t, table.Lookup(""))
	assert.Nil(t, table.Flattened())
}

func TestParseAdjustmentTableMissingSection(t *testing.T) {
	table := parseAdjustmentTable(`<LoanPricing Status="Success"/>`)
	assert.Nil(t, table.Lookup("TPL-7250"))
	assert.Empty(t, table.RawSection())
}

func TestParsePercentDefaults(t *testing.T) {
	assert.True(t, parsePercent("").IsZero())
	assert.True(t, parsePercent("garbage").IsZero())
	assert.True(t, parsePercent("1,234.5%").Equal(decimal.RequireFromString("1234.5")))
}
