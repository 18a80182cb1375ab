package sheet

import (
	"strings"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/widget"
)

// Declaration is one property assignment within a rule, e.g.
// "background-color: #2d2d2d". Declarations keep their textual order;
// within one rule the last declaration for a property wins.
type Declaration struct {
	Property  string
	Value     style.Property
	Important bool
}

// Rule is one selector together with the declarations of its block.
// Comma-separated selector lists expand into multiple Rules sharing
// declarations and source order. Rules are immutable once parsed.
type Rule struct {
	selector     *Selector
	declarations []Declaration
	sourceOrder  int
}

// Selector returns the rule's selector.
func (r *Rule) Selector() *Selector {
	return r.selector
}

// Declarations returns the rule's declarations in textual order.
func (r *Rule) Declarations() []Declaration {
	return r.declarations
}

// SourceOrder returns the position of the rule's block in the source
// text. It breaks specificity ties in the cascade: later wins.
func (r *Rule) SourceOrder() int {
	return r.sourceOrder
}

// Properties returns the property keys of a rule, e.g. "border-radius".
func (r *Rule) Properties() []string {
	props := make([]string, 0, len(r.declarations))
	for _, d := range r.declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the rule's value for a property key, e.g. "15px".
// If the rule declares the property more than once, the last
// declaration wins.
func (r *Rule) Value(key string) style.Property {
	value := style.NullStyle
	for _, d := range r.declarations {
		if d.Property == key {
			value = d.Value
		}
	}
	return value
}

// IsImportant returns true if a property is marked with "!important".
// Recorded for completeness; the cascade does not weigh importance.
func (r *Rule) IsImportant(key string) bool {
	important := false
	for _, d := range r.declarations {
		if d.Property == key {
			important = d.Important
		}
	}
	return important
}

// Stringer for rules; used for debugging.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.selector.String())
	b.WriteString(" { ")
	for _, d := range r.declarations {
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

// RuleSet is the parsed form of a stylesheet: all rules in source order.
// A RuleSet is immutable; a theme reload produces a new one.
type RuleSet struct {
	rules          []*Rule
	issues         []*ParseError
	ancestorStates widget.StateSet
}

// Rules returns all rules of the set, in source order.
func (rs *RuleSet) Rules() []*Rule {
	return rs.rules
}

// Empty checks wether the set contains any rules.
func (rs *RuleSet) Empty() bool {
	return rs == nil || len(rs.rules) == 0
}

// Issues returns the defects accumulated during a lenient parse.
// Empty after a strict parse (which would have failed instead).
func (rs *RuleSet) Issues() []*ParseError {
	return rs.issues
}

// DependsOnAncestorState checks wether any selector of the set
// constrains state s on a non-subject segment, i.e. wether toggling s
// on some widget may change which rules apply to its descendants.
// The cache invalidation of package qss consults this index to avoid
// re-resolving the whole widget tree on every interaction.
func (rs *RuleSet) DependsOnAncestorState(s widget.State) bool {
	if rs == nil {
		return false
	}
	return rs.ancestorStates.Has(s)
}
