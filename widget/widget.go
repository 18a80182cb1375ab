package widget

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync/atomic"
)

// Widget is a descriptor for a live toolkit widget: the read view the
// styling engine matches selectors against. Type name, identifier,
// classes and parent are fixed after construction; the pseudo-state
// vector mutates over the widget's lifetime (see SetState).
type Widget struct {
	typeName string
	id       string
	classes  []string
	states   StateSet
	parent   *Widget
	children []*Widget
	serial   uint32
}

var serials uint32 // atomic counter for widget identities

// New creates a widget descriptor for a widget type, e.g. "PushButton".
func New(typeName string) *Widget {
	return &Widget{
		typeName: typeName,
		serial:   atomic.AddUint32(&serials, 1),
	}
}

// SetID sets the widget's identifier, unique per instance by caller
// contract. Returns w to allow chaining during tree construction.
func (w *Widget) SetID(id string) *Widget {
	w.id = id
	return w
}

// AddClass adds a style class name to the widget.
func (w *Widget) AddClass(class string) *Widget {
	for _, c := range w.classes {
		if c == class {
			return w
		}
	}
	w.classes = append(w.classes, class)
	return w
}

// SetParent links w into a widget tree. A widget has at most one parent;
// re-parenting is not supported (descriptors are rebuilt when the UI
// tree changes).
func (w *Widget) SetParent(parent *Widget) *Widget {
	w.parent = parent
	if parent != nil {
		parent.children = append(parent.children, w)
	}
	return w
}

// TypeName returns the widget's type name.
func (w *Widget) TypeName() string {
	return w.typeName
}

// ID returns the widget's identifier, or "" if it has none.
func (w *Widget) ID() string {
	return w.id
}

// HasClass checks wether a style class is set on the widget.
func (w *Widget) HasClass(class string) bool {
	for _, c := range w.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the widget's style classes.
func (w *Widget) Classes() []string {
	return w.classes
}

// States returns a snapshot of the currently active pseudo-states.
func (w *Widget) States() StateSet {
	return w.states
}

// SetState activates or deactivates a pseudo-state. Clients should
// route state transitions through the engine's NotifyStateChange, which
// calls SetState and additionally invalidates cached styles.
func (w *Widget) SetState(s State, active bool) {
	if active {
		w.states = w.states.With(s)
	} else {
		w.states = w.states.Without(s)
	}
	tracer().Debugf("widget %v: state %s set to %v", w, s, active)
}

// Parent returns the widget's parent, or nil for a root widget.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns the widget's child widgets.
func (w *Widget) Children() []*Widget {
	return w.children
}

// HasAncestor checks wether anc appears in w's parent chain.
func (w *Widget) HasAncestor(anc *Widget) bool {
	for p := w.parent; p != nil; p = p.parent {
		if p == anc {
			return true
		}
	}
	return false
}

// Serial returns the widget's identity within the engine. Serials are
// unique per process and stable over the widget's lifetime; the style
// cache keys on them.
func (w *Widget) Serial() uint32 {
	return w.serial
}

// Stringer for widgets; used for debugging.
func (w *Widget) String() string {
	if w == nil {
		return "<nil widget>"
	}
	var b strings.Builder
	b.WriteString(w.typeName)
	if w.id != "" {
		b.WriteByte('#')
		b.WriteString(w.id)
	}
	for _, c := range w.classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	b.WriteString(w.states.String())
	return b.String()
}
