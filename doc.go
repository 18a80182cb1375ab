/*
Package qss implements a style cascade and resolution engine for widget
stylesheets: declarative themes in the selector/declaration notation of
desktop widget toolkits.

Overview

Clients load a theme once, describe their widgets with descriptors from
package widget, and ask the engine for the resolved style properties of
a widget whenever they paint it:

	engine := qss.New()
	if err := engine.LoadRuleSet(themeText, sheet.Lenient); err != nil {
	    …
	}
	button := widget.New("PushButton").SetID("capture")
	styles := engine.Resolve(button, "")
	bg, ok := styles.Property("background-color")

State transitions are reported through NotifyStateChange, which updates
the widget descriptor and invalidates memoized resolutions:

	engine.NotifyStateChange(button, widget.Hover, true)
	styles = engine.Resolve(button, "") // now reflects :hover rules

The engine is designed for a single UI thread, but the style cache is
guarded by a mutex, so hosts which pre-compute styles on background
goroutines stay safe. Resolution itself is a pure function and needs no
locking (see package style/cascade).

A theme reload is atomic: either the new rule set replaces the old one
completely, or—on a parse error—the previous rule set stays in effect.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package qss

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qss.engine'.
func tracer() tracing.Trace {
	return tracing.Select("qss.engine")
}
