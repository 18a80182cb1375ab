package sheet

import (
	"strings"

	"github.com/npillmayer/qss/widget"
)

// Combinator is the relation between two adjacent selector segments.
type Combinator int

// Combinators. Descendant is written as whitespace between segments,
// Child as '>'.
const (
	Descendant Combinator = iota
	Child
)

// Segment is one compound of a selector: the constraints one widget (or
// one of its ancestors) has to satisfy. Fields left empty are wildcards.
type Segment struct {
	TypeName   string          // widget type, "" or "*" matches any
	ID         string          // widget identifier, after '#'
	Classes    []string        // style classes, after '.'
	States     widget.StateSet // pseudo-states required to be active, conjunction
	Negated    widget.StateSet // pseudo-states required to be inactive (":enabled", ":unchecked")
	SubControl string          // widget-internal part, after '::'
	Rel        Combinator      // relation to the segment to the left; unused on the first segment
	unknown    bool            // references a pseudo-state unknown to the matcher
}

// HasUnknownState is a predicate wether the segment references a
// pseudo-state name unknown to the matcher. Such a segment never
// matches any widget.
func (seg *Segment) HasUnknownState() bool {
	return seg.unknown
}

// Stringer for segments; used for debugging.
func (seg *Segment) String() string {
	var b strings.Builder
	b.WriteString(seg.TypeName)
	if seg.ID != "" {
		b.WriteByte('#')
		b.WriteString(seg.ID)
	}
	for _, c := range seg.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	b.WriteString(seg.States.String())
	if seg.SubControl != "" {
		b.WriteString("::")
		b.WriteString(seg.SubControl)
	}
	return b.String()
}

// Selector is a pattern matched against a widget and its ancestry.
// Segments are kept in textual order; the rightmost segment is the
// subject the selector ultimately applies to.
type Selector struct {
	Segments []Segment
	source   string
}

// Subject returns the rightmost segment, i.e. the constraints on the
// widget itself rather than on its ancestors.
func (sel *Selector) Subject() *Segment {
	return &sel.Segments[len(sel.Segments)-1]
}

func (sel *Selector) String() string {
	return sel.source
}

// ParseSelectorList parses a comma-separated selector list, as it
// appears as the prelude of a rule block.
func ParseSelectorList(prelude string) ([]*Selector, error) {
	var sels []*Selector
	for _, text := range strings.Split(prelude, ",") {
		sel, err := ParseSelector(text)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

// ParseSelector parses a single selector, e.g.
//
//	TabBar > PushButton#capture.primary:hover::drop-down
//
func ParseSelector(text string) (*Selector, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, syntaxError(0, 0, "empty selector")
	}
	sel := &Selector{source: text}
	i, n := 0, len(text)
	for i < n {
		sawChild := false
		for i < n {
			c := text[i]
			if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
				i++
				continue
			}
			if c == '>' {
				if sawChild {
					return nil, syntaxError(0, i, "duplicate combinator in %q", text)
				}
				sawChild = true
				i++
				continue
			}
			break
		}
		if i >= n {
			if sawChild {
				return nil, syntaxError(0, i, "dangling '>' in %q", text)
			}
			break
		}
		if sawChild && len(sel.Segments) == 0 {
			return nil, syntaxError(0, i, "selector %q may not start with '>'", text)
		}
		seg, ni, err := parseSegment(text, i)
		if err != nil {
			return nil, err
		}
		if sawChild {
			seg.Rel = Child
		}
		sel.Segments = append(sel.Segments, seg)
		i = ni
	}
	if len(sel.Segments) == 0 {
		return nil, syntaxError(0, 0, "empty selector")
	}
	return sel, nil
}

// parseSegment parses one segment starting at position i, stopping at
// whitespace or a combinator.
func parseSegment(text string, i int) (Segment, int, error) {
	var seg Segment
	n := len(text)
	if text[i] == '*' {
		seg.TypeName = "*"
		i++
	} else if isIdentChar(text[i]) {
		seg.TypeName, i = scanIdent(text, i)
	}
	for i < n {
		switch c := text[i]; c {
		case '#':
			id, ni := scanIdent(text, i+1)
			if id == "" {
				return seg, i, syntaxError(0, i, "identifier expected after '#' in %q", text)
			}
			if seg.ID != "" {
				return seg, i, syntaxError(0, i, "duplicate identifier in %q", text)
			}
			seg.ID = id
			i = ni
		case '.':
			class, ni := scanIdent(text, i+1)
			if class == "" {
				return seg, i, syntaxError(0, i, "class name expected after '.' in %q", text)
			}
			seg.Classes = append(seg.Classes, class)
			i = ni
		case ':':
			if i+1 < n && text[i+1] == ':' {
				sub, ni := scanIdent(text, i+2)
				if sub == "" {
					return seg, i, syntaxError(0, i, "sub-control expected after '::' in %q", text)
				}
				if seg.SubControl != "" {
					return seg, i, syntaxError(0, i, "duplicate sub-control in %q", text)
				}
				seg.SubControl = sub
				i = ni
			} else {
				name, ni := scanIdent(text, i+1)
				if name == "" {
					return seg, i, syntaxError(0, i, "pseudo-state expected after ':' in %q", text)
				}
				s, negated, ok := widget.StateNamed(name)
				switch {
				case !ok:
					// not an error: the segment will simply never match
					tracer().Infof("selector %q references unknown pseudo-state '%s'", text, name)
					seg.unknown = true
				case negated:
					seg.Negated = seg.Negated.With(s)
				default:
					seg.States = seg.States.With(s)
				}
				i = ni
			}
		case ' ', '\t', '\n', '\r', '>':
			return seg, i, nil
		default:
			return seg, i, syntaxError(0, i, "unexpected character %q in selector %q", c, text)
		}
	}
	return seg, i, nil
}

func scanIdent(text string, i int) (string, int) {
	start := i
	for i < len(text) && isIdentChar(text[i]) {
		i++
	}
	return text[start:i], i
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}
