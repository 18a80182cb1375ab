package style

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
)

// pxUnit is the device-independent reference pixel (96 dpi), expressed
// in the base unit of package dimen (1px = 3/4pt).
var pxUnit = dimen.PT * 3 / 4

// DimenT is an option type for stylesheet length values: a length is
// either a fixed pixel count, a percentage, or one of the keywords
// auto / inherit / initial.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

// Auto returns the length keyword "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit returns the length keyword "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial returns the length keyword "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a length with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Px creates a fixed length of n reference pixels.
func Px(n int) DimenT {
	return JustDimen(dimen.DU(n) * pxUnit)
}

// Percentage creates a %-relative length.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// Px returns the length value in whole reference pixels. Non-absolute
// lengths (auto, percentages, …) yield 0.
func (d DimenT) Px() int {
	if d.flags&kindMask != dimenAbsolute {
		return 0
	}
	return int(d.d / pxUnit)
}

// DimenOption parses a property value as a length. Values it cannot
// make sense of parse as Initial, the toolkit default.
//
//	"auto"    => Auto()
//	"12px"    => Px(12)
//	"12"      => Px(12)
//	"50%"     => Percentage(50)
//
func DimenOption(p Property) DimenT {
	v := strings.TrimSpace(string(p))
	switch v {
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial", "":
		return Initial()
	}
	if strings.HasSuffix(v, "%") {
		if n, err := strconv.Atoi(strings.TrimSuffix(v, "%")); err == nil {
			return Percentage(percent.FromInt(n))
		}
		return Initial()
	}
	v = strings.TrimSuffix(v, "px")
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		return Px(n)
	}
	tracer().Debugf("not a length value: %q", p)
	return Initial()
}

// ---------------------------------------------------------------------------

// Match returns a pattern matcher for a length value.
func (d DimenT) Match() *DimenMatcher {
	return &DimenMatcher{dimen: d}
}

// DimenMatcher is a helper to pattern-match a DimenT.
type DimenMatcher struct {
	dimen DimenT
}

// IsKind matches on the kind of length d, i.e. fixed vs percentage vs
// keyword, disregarding the numeric value.
func (m *DimenMatcher) IsKind(d DimenT) *DimenMatcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		if (m.dimen.flags & dimenPercent) == (d.flags & dimenPercent) {
			return m
		}
	}
	return nil
}

// Just matches a fixed length and optionally extracts its value.
func (m *DimenMatcher) Just(du *dimen.DU) *DimenMatcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative length and optionally extracts its value.
func (m *DimenMatcher) Percentage(p *percent.Percent) *DimenMatcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
