package engineparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllSelfClosing(t *testing.T) {
	doc := `<Adjustment Description="FICO 720-739" Point="0.500%" Rate="0.000%"/>` +
		`<Adjustment Description="Cashout" Point="0.250%"/>`

	elements := FindAll(doc, "Adjustment")
	require.Len(t, elements, 2)
	assert.True(t, elements[0].SelfClosing)
	assert.Equal(t, "FICO 720-739", elements[0].Attr("Description"))
	assert.Equal(t, "0.500%", elements[0].Attr("Point"))
	assert.Equal(t, "Cashout", elements[1].Attr("Description"))
	assert.Equal(t, "", elements[1].Attr("Rate"))
}

func TestFindAllWithBody(t *testing.T) {
	doc := `<LoanProgram ProgramName="NQM 30yr" Status="Eligible">` +
		`<RateOption Rate="7.125"/>` +
		`</LoanProgram>`

	elements := FindAll(doc, "LoanProgram")
	require.Len(t, elements, 1)
	assert.False(t, elements[0].SelfClosing)
	assert.Equal(t, "NQM 30yr", elements[0].Attr("ProgramName"))
	assert.Equal(t, `<RateOption Rate="7.125"/>`, elements[0].Body)
}

func TestFindAllNestedSameName(t *testing.T) {
	// Nested same-name elements stay inside the parent's body.
	doc := `<Group Id="outer"><Group Id="inner"><Leaf/></Group></Group><Group Id="second"/>`

	elements := FindAll(doc, "Group")
	require.Len(t, elements, 2)
	assert.Equal(t, "outer", elements[0].Attr("Id"))
	assert.Equal(t, `<Group Id="inner"><Leaf/></Group>`, elements[0].Body)
	assert.Equal(t, "second", elements[1].Attr("Id"))

	inner := FindAll(elements[0].Body, "Group")
	require.Len(t, inner, 1)
	assert.Equal(t, "inner", inner[0].Attr("Id"))
}

func TestFindAllIgnoresTagNamePrefixes(t *testing.T) {
	doc := `<RateOptionGroup><RateOption Rate="7.0"/></RateOptionGroup>`

	elements := FindAll(doc, "RateOption")
	require.Len(t, elements, 1)
	assert.Equal(t, "7.0", elements[0].Attr("Rate"))
}

func TestAttrDecodesEntities(t *testing.T) {
	doc := `<Adjustment Description="Self-Employed &amp; Retired" Point="0.125%"/>`

	el, ok := FindFirst(doc, "Adjustment")
	require.True(t, ok)
	assert.Equal(t, "Self-Employed & Retired", el.Attr("Description"))
}

func TestAttrSingleQuotes(t *testing.T) {
	doc := `<RateOption Rate='7.250' Description='30yr Fixed'/>`

	el, ok := FindFirst(doc, "RateOption")
	require.True(t, ok)
	assert.Equal(t, "7.250", el.Attr("Rate"))
	assert.Equal(t, "30yr Fixed", el.Attr("Description"))
}

func TestAttrOrFallback(t *testing.T) {
	doc := `<LoanProgram ProductCode="NQM-A" InvestorId=""/>`

	el, ok := FindFirst(doc, "LoanProgram")
	require.True(t, ok)
	assert.Equal(t, "NQM-A", el.AttrOr("InvestorId", el.Attr("ProductCode")))
	assert.Equal(t, "", el.Attr("Missing"))
}

func TestFindFirstMissing(t *testing.T) {
	_, ok := FindFirst("<Other/>", "LoanProgram")
	assert.False(t, ok)
}

func TestElementSpans(t *testing.T) {
	doc := `..<Adjustment A="1"/>..`
	el, ok := FindFirst(doc, "Adjustment")
	require.True(t, ok)
	assert.Equal(t, 2, el.Start)
	assert.Equal(t, `<Adjustment A="1"/>`, doc[el.Start:el.End])
}

func TestUnterminatedElementTolerated(t *testing.T) {
	doc := `<LoanProgram ProgramName="Broken"><RateOption Rate="7.0"/>`
	el, ok := FindFirst(doc, "LoanProgram")
	require.True(t, ok)
	assert.Equal(t, "Broken", el.Attr("ProgramName"))
	assert.Equal(t, `<RateOption Rate="7.0"/>`, el.Body)
}
