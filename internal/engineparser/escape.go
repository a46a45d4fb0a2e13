// Package engineparser turns the pricing engine's SOAP/XML response into the
// typed pricing model. The engine's native document arrives entity-escaped
// inside an entity-escaped SOAP body, so the raw payload must be unescaped
// exactly twice before any element scanning happens.
package engineparser

import "strings"

// Entity pairs in encoding order. The ampersand goes first when escaping and
// last when unescaping so an already-produced &amp; is never transformed a
// second time.
var entityPairs = [][2]string{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{"\"", "&quot;"},
	{"'", "&apos;"},
}

// Escape replaces the five XML special characters with their named entities.
func Escape(s string) string {
	for _, p := range entityPairs {
		s = strings.ReplaceAll(s, p[0], p[1])
	}
	return s
}

// Unescape reverses Escape, decoding entities in the reverse of the
// encoding order.
func Unescape(s string) string {
	for i := len(entityPairs) - 1; i >= 0; i-- {
		s = strings.ReplaceAll(s, entityPairs[i][1], entityPairs[i][0])
	}
	return s
}

// UnescapeTwice applies Unescape twice. The transport wraps one escaped XML
// document inside another escaped document, so exactly two passes recover
// the engine's native payload. A different count silently corrupts attribute
// values that themselves contain entities.
func UnescapeTwice(s string) string {
	return Unescape(Unescape(s))
}
