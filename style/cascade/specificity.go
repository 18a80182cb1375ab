package cascade

import (
	"fmt"

	"github.com/npillmayer/qss/style/sheet"
)

// Specificity is the sort key of the cascade. Selectors with an
// identifier outweigh any number of classes and states, which in turn
// outweigh type selectors; ties are broken by source order, later wins.
type Specificity struct {
	ID               int
	ClassesAndStates int
	Type             int
	SourceOrder      int
}

// SpecificityOf computes the specificity of a selector, summing over
// all of its segments.
func SpecificityOf(sel *sheet.Selector, sourceOrder int) Specificity {
	s := Specificity{SourceOrder: sourceOrder}
	for _, seg := range sel.Segments {
		if seg.ID != "" {
			s.ID++
		}
		s.ClassesAndStates += len(seg.Classes)
		s.ClassesAndStates += seg.States.Count()
		s.ClassesAndStates += seg.Negated.Count()
		if seg.TypeName != "" && seg.TypeName != "*" {
			s.Type++
		}
	}
	return s
}

// Less orders specificities ascending; the cascade applies rules in
// this order, so the greatest specificity is folded last and wins.
func (s Specificity) Less(other Specificity) bool {
	if s.ID != other.ID {
		return s.ID < other.ID
	}
	if s.ClassesAndStates != other.ClassesAndStates {
		return s.ClassesAndStates < other.ClassesAndStates
	}
	if s.Type != other.Type {
		return s.Type < other.Type
	}
	return s.SourceOrder < other.SourceOrder
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)@%d", s.ID, s.ClassesAndStates, s.Type, s.SourceOrder)
}
