/*
Package sheet implements the rule model of a widget stylesheet, and a
parser producing it.

Overview

A stylesheet is a sequence of blocks

	TypeSelector[#Identifier][.Class]*[:PseudoState]*[::SubControl] {
	    property: value;
	    …
	}

Selector lists separated by commas expand into one Rule per selector;
all of them share the block's declarations and its source order,
source order being the tie-breaker of the cascade.

Parsing is a two-layer affair: the block structure is scanned with the
tokenizer of gorilla/css, which lets the parser recover from a defective
block and continue with the next one (lenient mode). The declarations
inside a block are handed over to the douceur CSS parser. Selector
preludes are parsed by this package itself, as the selector vocabulary
(pseudo-states, sub-controls) is specific to widget stylesheets.

A RuleSet is immutable once parsed: reload of a theme produces a new
RuleSet, to be swapped in atomically by the client (see package qss).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qss.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("qss.sheet")
}
