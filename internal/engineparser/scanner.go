package engineparser

import "strings"

// Element is one structural record produced by the scanner: tag name,
// attribute map, and the raw body span between the open and close tags.
// Attribute values are entity-decoded once on extraction.
type Element struct {
	Name        string
	Attrs       map[string]string
	Body        string
	SelfClosing bool
	Start       int // byte offset of '<' in the scanned string
	End         int // byte offset just past the closing '>'
}

// Attr returns the named attribute's value, or empty when absent.
func (e Element) Attr(name string) string {
	return e.Attrs[name]
}

// AttrOr returns the named attribute's value, or fallback when absent or
// empty.
func (e Element) AttrOr(name, fallback string) string {
	if v, ok := e.Attrs[name]; ok && v != "" {
		return v
	}
	return fallback
}

// FindAll scans s for every element with the given tag name and returns them
// in document order. Elements of the same name nested inside a returned
// element stay part of that element's Body; callers recurse into Body when
// they need them.
func FindAll(s, name string) []Element {
	var out []Element
	pos := 0
	for {
		start := indexTag(s, name, pos)
		if start < 0 {
			return out
		}
		el, ok := parseElement(s, start, name)
		if !ok {
			pos = start + 1
			continue
		}
		out = append(out, el)
		pos = el.End
	}
}

// FindFirst returns the first element with the given tag name.
func FindFirst(s, name string) (Element, bool) {
	start := indexTag(s, name, 0)
	for start >= 0 {
		if el, ok := parseElement(s, start, name); ok {
			return el, true
		}
		start = indexTag(s, name, start+1)
	}
	return Element{}, false
}

// indexTag finds the next "<name" occurrence at or after pos where the tag
// name ends at a word boundary (whitespace, '>', or '/').
func indexTag(s, name string, pos int) int {
	open := "<" + name
	for {
		i := strings.Index(s[pos:], open)
		if i < 0 {
			return -1
		}
		i += pos
		after := i + len(open)
		if after >= len(s) {
			return -1
		}
		switch s[after] {
		case ' ', '\t', '\n', '\r', '>', '/':
			return i
		}
		pos = i + 1
	}
}

// parseElement parses the element opening at start. For non-self-closing
// tags it locates the matching close tag, tracking nesting of the same tag
// name.
func parseElement(s string, start int, name string) (Element, bool) {
	attrs, tagEnd, selfClosing, ok := parseAttrs(s, start+len(name)+1)
	if !ok {
		return Element{}, false
	}
	el := Element{Name: name, Attrs: attrs, Start: start}
	if selfClosing {
		el.SelfClosing = true
		el.End = tagEnd
		return el, true
	}

	closeTag := "</" + name + ">"
	depth := 1
	pos := tagEnd
	for depth > 0 {
		nextOpen := indexTag(s, name, pos)
		nextClose := strings.Index(s[pos:], closeTag)
		if nextClose < 0 {
			// Unterminated element; tolerate by taking the rest of the input.
			el.Body = s[tagEnd:]
			el.End = len(s)
			return el, true
		}
		nextClose += pos
		if nextOpen >= 0 && nextOpen < nextClose {
			_, innerEnd, innerSelf, innerOK := parseAttrs(s, nextOpen+len(name)+1)
			if !innerOK {
				pos = nextOpen + 1
				continue
			}
			if !innerSelf {
				depth++
			}
			pos = innerEnd
			continue
		}
		depth--
		pos = nextClose + len(closeTag)
		if depth == 0 {
			el.Body = s[tagEnd:nextClose]
			el.End = pos
		}
	}
	return el, true
}

// parseAttrs reads attribute pairs starting just past the tag name, up to
// the closing '>' or '/>'. Values may be double- or single-quoted; bare
// values are tolerated and read up to the next whitespace or tag end.
func parseAttrs(s string, pos int) (attrs map[string]string, tagEnd int, selfClosing, ok bool) {
	attrs = map[string]string{}
	i := pos
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		if s[i] == '>' {
			return attrs, i + 1, false, true
		}
		if s[i] == '/' {
			if i+1 < len(s) && s[i+1] == '>' {
				return attrs, i + 2, true, true
			}
			i++
			continue
		}

		nameStart := i
		for i < len(s) && s[i] != '=' && s[i] != '>' && s[i] != '/' && !isSpace(s[i]) {
			i++
		}
		attrName := s[nameStart:i]
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) || s[i] != '=' {
			// Valueless attribute.
			if attrName != "" {
				attrs[attrName] = ""
			}
			continue
		}
		i++
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		if s[i] == '"' || s[i] == '\'' {
			quote := s[i]
			end := strings.IndexByte(s[i+1:], quote)
			if end < 0 {
				return nil, 0, false, false
			}
			attrs[attrName] = Unescape(s[i+1 : i+1+end])
			i += end + 2
			continue
		}
		valStart := i
		for i < len(s) && !isSpace(s[i]) && s[i] != '>' && s[i] != '/' {
			i++
		}
		attrs[attrName] = Unescape(s[valStart:i])
	}
	return nil, 0, false, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
