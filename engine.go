package qss

import (
	"sync"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/style/cascade"
	"github.com/npillmayer/qss/style/sheet"
	"github.com/npillmayer/qss/widget"
)

// Engine owns a theme: one rule set with an explicit load/reload
// lifecycle, plus a cache of resolved styles. Multiple independent
// widget trees (e.g. multi-window applications) may each hold their own
// Engine.
type Engine struct {
	mu    sync.RWMutex // guards rules swap during reload
	rules *sheet.RuleSet
	cache *styleCache
}

// Option configures an Engine.
type Option func(*Engine)

// WithCacheLimit bounds the style cache to at most n entries, evicting
// least-recently-used resolutions. Useful for very large widget trees
// (tables or trees with thousands of cells). n <= 0 leaves the cache
// unbounded, which is fine for widget populations bounded by the live
// UI tree.
func WithCacheLimit(n int) Option {
	return func(e *Engine) {
		e.cache = newStyleCache(n)
	}
}

// New creates an engine without a rule set; Resolve yields empty
// property maps until a theme is loaded.
func New(opts ...Option) *Engine {
	e := &Engine{cache: newStyleCache(0)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadRuleSet parses theme source text and installs it as the engine's
// rule set. In sheet.Lenient mode, defective rules are dropped and
// recorded (see Issues); in sheet.Strict mode, the first defect aborts
// the load and no rule set is installed.
func (e *Engine) LoadRuleSet(src string, mode sheet.Mode) error {
	rs, err := sheet.Parse(src, mode)
	if err != nil {
		return err
	}
	e.install(rs)
	tracer().Infof("loaded theme with %d rules", len(rs.Rules()))
	return nil
}

// Reload replaces the engine's rule set with a freshly parsed one.
// Parsing is strict: on failure, the previous rule set and all cached
// resolutions remain fully intact, and Reload returns the *sheet.ParseError.
func (e *Engine) Reload(src string) error {
	rs, err := sheet.Parse(src, sheet.Strict)
	if err != nil {
		tracer().Errorf("theme reload failed, keeping previous rule set: %v", err)
		return err
	}
	e.install(rs)
	tracer().Infof("reloaded theme with %d rules", len(rs.Rules()))
	return nil
}

// install swaps in a fully-parsed rule set. Resolve calls never observe
// a half-updated state: the swap happens under the engine mutex and
// drops all memoized resolutions in the same critical section.
func (e *Engine) install(rs *sheet.RuleSet) {
	e.mu.Lock()
	e.rules = rs
	e.cache.invalidateAll()
	e.mu.Unlock()
}

// RuleSet returns the currently installed rule set, or nil if no theme
// has been loaded yet.
func (e *Engine) RuleSet() *sheet.RuleSet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rules
}

// Issues returns the defects recorded during a lenient load of the
// current rule set.
func (e *Engine) Issues() []*sheet.ParseError {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.rules == nil {
		return nil
	}
	return e.rules.Issues()
}

// Resolve returns the style properties applying to a widget, resp. to
// one of its sub-controls if subControl is non-empty. Results are
// memoized per (widget, state vector, sub-control); the memo is dropped
// by NotifyStateChange and on reload.
//
// The returned property map reflects the widget's state snapshot at
// call time and is to be treated as read-only.
func (e *Engine) Resolve(w *widget.Widget, subControl string) *style.PropertyMap {
	e.mu.RLock()
	rs := e.rules
	e.mu.RUnlock()
	if rs == nil {
		return style.NewPropertyMap()
	}
	if pmap, ok := e.cache.get(w, subControl); ok {
		return pmap
	}
	pmap := cascade.Resolve(w, subControl, rs)
	e.cache.put(w, subControl, pmap)
	return pmap
}

// NotifyStateChange reports a pseudo-state transition of a widget. It
// updates the widget descriptor and marks the widget's cached
// resolutions as stale. If any loaded selector constrains this state on
// an ancestor segment, cached resolutions of the widget's descendants
// are invalidated as well; the rule set's ancestor-state index keeps
// this sub-linear instead of a full-tree re-resolution.
func (e *Engine) NotifyStateChange(w *widget.Widget, s widget.State, active bool) {
	w.SetState(s, active)
	e.cache.invalidate(w)
	e.mu.RLock()
	rs := e.rules
	e.mu.RUnlock()
	if rs.DependsOnAncestorState(s) {
		e.cache.invalidateDescendantsOf(w)
	}
}

// Invalidate drops all cached resolutions for a widget, forcing the
// next Resolve to recompute.
func (e *Engine) Invalidate(w *widget.Widget) {
	e.cache.invalidate(w)
}

// InvalidateAll drops every cached resolution.
func (e *Engine) InvalidateAll() {
	e.cache.invalidateAll()
}
