/*
Package widget provides descriptors for the widgets a stylesheet is
matched against.

Overview

The styling engine never sees live toolkit widgets. Instead, clients
describe each widget with an instance of type Widget: its type name
(e.g. "PushButton"), an optional identifier, a set of style classes,
a parent link, and a vector of transient pseudo-states (hover, pressed,
checked, …). Selector matching and cascade resolution operate on these
descriptors exclusively, which keeps the resolver a pure function,
testable without a running UI.

Pseudo-states are represented as a bit vector (type StateSet). State
bits mutate as the user interacts with the application; everything else
about a widget descriptor is fixed after construction.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qss.widget'.
func tracer() tracing.Trace {
	return tracing.Select("qss.widget")
}
