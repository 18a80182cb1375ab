package cascade

import (
	"sort"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/style/sheet"
	"github.com/npillmayer/qss/widget"
)

// Resolve computes the style properties applying to a widget (or to one
// of its sub-controls) under a rule set: it filters the set for matching
// rules, orders them by specificity, and folds their declarations into
// one property map, later rules overwriting earlier ones per property.
//
// Resolve is deterministic and free of side effects. With zero matching
// rules it returns an empty property map; falling back to toolkit
// defaults is the caller's business.
func Resolve(w *widget.Widget, subControl string, rs *sheet.RuleSet) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	if rs.Empty() {
		return pmap
	}
	type match struct {
		rule *sheet.Rule
		spec Specificity
	}
	var matches []match
	for _, rule := range rs.Rules() {
		if Matches(rule.Selector(), w, subControl) {
			matches = append(matches, match{
				rule: rule,
				spec: SpecificityOf(rule.Selector(), rule.SourceOrder()),
			})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].spec.Less(matches[j].spec)
	})
	for _, m := range matches {
		tracer().Debugf("widget %v%s: applying %v with specificity %v",
			w, subControlSuffix(subControl), m.rule.Selector(), m.spec)
		for _, d := range m.rule.Declarations() {
			addDeclaration(pmap, d.Property, d.Value)
		}
	}
	return pmap
}

// addDeclaration folds one declaration into the property map, expanding
// shorthands into their fine-grained components so that later longhand
// declarations can override single components of an earlier shorthand.
func addDeclaration(pmap *style.PropertyMap, key string, value style.Property) {
	if !style.IsCompound(key) {
		pmap.Add(key, value)
		return
	}
	kvs, err := style.SplitCompoundProperty(key, value)
	if err != nil {
		tracer().Infof("cannot split %s: %v", key, err)
		pmap.Add(key, value)
		return
	}
	for _, kv := range kvs {
		addDeclaration(pmap, kv.Key, kv.Value)
	}
}

func subControlSuffix(subControl string) string {
	if subControl == "" {
		return ""
	}
	return "::" + subControl
}
