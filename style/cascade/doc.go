/*
Package cascade implements selector matching and cascade resolution:
given a widget descriptor and a rule set, it determines the applying
rules and merges their declarations into one property map.

Resolution is a pure function of its inputs. Given the same rule set
and the same widget state snapshot, Resolve always produces the same
property map, so results are safe to memoize (see the cache in the
root package).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qss.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("qss.cascade")
}
