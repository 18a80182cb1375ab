package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'qss.style'
func tracer() tracing.Trace {
	return tracing.Select("qss.style")
}

// Property is a raw value for a style property. For example, with
//
//	color: #ff0000
//
// a property value of "#ff0000" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Groups -------------------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// Widget stylesheets know a whole lot of properties. We split them up
// into organisatorial groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for k, v := range pg.propsDict {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	}
	return s
}

// Properties returns all properties of a group.
func (pg *PropertyGroup) Properties() []KeyValue {
	i := 0
	r := make([]KeyValue, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r[i] = KeyValue{k, v}
		i++
	}
	return r
}

// IsSet is a predicate wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case, except
// embedded image payloads (base64 is case significant).
func (pg *PropertyGroup) Set(key string, p Property) {
	if !strings.Contains(string(p), "data:") {
		p = Property(strings.ToLower(string(p)))
	}
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//
//	GroupNameFromPropertyKey("border-top-width") => "Border"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// KnownProperty is a predicate wether a property key belongs to the
// vocabulary the engine understands. The rule parser reports
// declarations with unknown keys as errors (see package sheet).
func KnownProperty(key string) bool {
	_, found := groupNameFromPropertyKey[key]
	return found
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGColor     = "Color"
	PGBorder    = "Border"
	PGBox       = "Box"
	PGDimension = "Dimension"
	PGFont      = "Font"
	PGIndicator = "Indicator"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"color":                          PGColor, // Color
	"background-color":               PGColor,
	"alternate-background-color":     PGColor,
	"selection-color":                PGColor,
	"selection-background-color":     PGColor,
	"gridline-color":                 PGColor,
	"background":                     PGColor,
	"border":                         PGBorder, // Border
	"border-color":                   PGBorder,
	"border-width":                   PGBorder,
	"border-style":                   PGBorder,
	"border-radius":                  PGBorder,
	"border-top":                     PGBorder,
	"border-left":                    PGBorder,
	"border-right":                   PGBorder,
	"border-bottom":                  PGBorder,
	"border-top-color":               PGBorder,
	"border-left-color":              PGBorder,
	"border-right-color":             PGBorder,
	"border-bottom-color":            PGBorder,
	"border-top-width":               PGBorder,
	"border-left-width":              PGBorder,
	"border-right-width":             PGBorder,
	"border-bottom-width":            PGBorder,
	"border-top-style":               PGBorder,
	"border-left-style":              PGBorder,
	"border-right-style":             PGBorder,
	"border-bottom-style":            PGBorder,
	"border-top-left-radius":         PGBorder,
	"border-top-right-radius":        PGBorder,
	"border-bottom-left-radius":      PGBorder,
	"border-bottom-right-radius":     PGBorder,
	"padding":                        PGBox, // Box
	"padding-top":                    PGBox,
	"padding-left":                   PGBox,
	"padding-right":                  PGBox,
	"padding-bottom":                 PGBox,
	"margin":                         PGBox,
	"margin-top":                     PGBox,
	"margin-left":                    PGBox,
	"margin-right":                   PGBox,
	"margin-bottom":                  PGBox,
	"spacing":                        PGBox,
	"width":                          PGDimension, // Dimension
	"height":                         PGDimension,
	"min-width":                      PGDimension,
	"min-height":                     PGDimension,
	"max-width":                      PGDimension,
	"max-height":                     PGDimension,
	"font-family":                    PGFont, // Font
	"font-size":                      PGFont,
	"font-weight":                    PGFont,
	"font-style":                     PGFont,
	"image":                          PGIndicator, // Indicator
	"icon-size":                      PGIndicator,
	"subcontrol-origin":              PGIndicator,
	"subcontrol-position":            PGIndicator,
	"text-align":                     PGText, // Text
	"text-decoration":                PGText,
}

// --- Property Map ----------------------------------------------------------

// PropertyMap holds the resolved style properties for one widget in one
// state (and sub-control context). nil is a legal (empty) property map.
// Property maps are produced by the cascade resolver; clients should
// treat them as read-only.
type PropertyMap struct {
	// As stylesheets define a whole lot of properties, we segment them
	// into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	if pmap != nil {
		for _, v := range pmap.m {
			s += v.String()
		}
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// IsEmpty checks wether the map contains any property at all.
func (pmap *PropertyMap) IsEmpty() bool {
	if pmap == nil {
		return true
	}
	for _, g := range pmap.m {
		if len(g.propsDict) > 0 {
			return false
		}
	}
	return true
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	group := pmap.m[groupname]
	return group
}

// Property returns a style property value, together with an indicator
// wether it has been set by any rule.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Properties returns all properties of the map, in no particular order.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	var r []KeyValue
	for _, g := range pmap.m {
		r = append(r, g.Properties()...)
	}
	return r
}

// Add adds a property to this property map, e.g.,
//
//	pm.Add("background-color", "#2d2d2d")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}
