package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/qss/style/sheet"
	"github.com/npillmayer/qss/widget"
)

// Matches checks a selector against a widget, in the context of an
// optional sub-control being resolved ("" for the widget itself).
//
// Evaluation is right-to-left: the rightmost segment is tested against
// the widget; every further segment walks the parent chain, nearest
// ancestor first. A Child combinator restricts the walk to the
// immediate parent. Matching fails fast on the first unsatisfiable
// segment.
func Matches(sel *sheet.Selector, w *widget.Widget, subControl string) bool {
	segs := sel.Segments
	subject := &segs[len(segs)-1]
	// A sub-control selector only applies when that sub-control is
	// being resolved, and vice versa.
	if subject.SubControl != subControl {
		return false
	}
	if !segmentMatches(subject, w) {
		return false
	}
	anc := w.Parent()
	for i := len(segs) - 2; i >= 0; i-- {
		seg := &segs[i]
		if seg.SubControl != "" {
			return false // a sub-control cannot constrain an ancestor
		}
		if segs[i+1].Rel == sheet.Child {
			if anc == nil || !segmentMatches(seg, anc) {
				return false
			}
			anc = anc.Parent()
			continue
		}
		for anc != nil && !segmentMatches(seg, anc) {
			anc = anc.Parent()
		}
		if anc == nil {
			return false
		}
		anc = anc.Parent()
	}
	return true
}

// segmentMatches tests the constraints of a single segment against a
// single widget. Absent constraints are wildcards. Pseudo-states are a
// conjunction: every state listed must be active (resp. inactive for
// negated forms).
func segmentMatches(seg *sheet.Segment, w *widget.Widget) bool {
	if seg.HasUnknownState() {
		return false
	}
	if seg.TypeName != "" && seg.TypeName != "*" && seg.TypeName != w.TypeName() {
		return false
	}
	if seg.ID != "" && seg.ID != w.ID() {
		return false
	}
	for _, class := range seg.Classes {
		if !w.HasClass(class) {
			return false
		}
	}
	states := w.States()
	if !states.HasAll(seg.States) {
		return false
	}
	if states.Intersects(seg.Negated) {
		return false
	}
	return true
}
