package style

import (
	"fmt"
	"strings"
)

// IsCompound is a predicate wether a property key is a shorthand which
// distributes into several fine-grained properties during the cascade.
func IsCompound(key string) bool {
	switch key {
	case "border", "padding", "margin",
		"border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shorthand property into its
// individual components. Returns a slice of key-value pairs representing
// the individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("padding", "3px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "3px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "3px"
//
// The "border" shorthand distributes a "<width> <style> <color>" triple
// into border-width, border-style and border-color (which are shorthands
// themselves and split further).
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "border":
		return feazeBorder(fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// feazeBorder classifies the fields of a "border: 1px solid #cc0000"
// shorthand. Field order is free; each field is recognized by shape.
func feazeBorder(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 || len(fields) > 3 {
		return nil, fmt.Errorf("expecting 1-3 values for border")
	}
	var r []KeyValue
	for _, f := range fields {
		switch {
		case isBorderStyle(f):
			kv, err := feazeCompound4("border", "style", fourDirs, []string{f})
			if err != nil {
				return nil, err
			}
			r = append(r, kv...)
		case f[0] >= '0' && f[0] <= '9':
			kv, err := feazeCompound4("border", "width", fourDirs, []string{f})
			if err != nil {
				return nil, err
			}
			r = append(r, kv...)
		default:
			kv, err := feazeCompound4("border", "color", fourDirs, []string{f})
			if err != nil {
				return nil, err
			}
			r = append(r, kv...)
		}
	}
	return r, nil
}

func isBorderStyle(s string) bool {
	switch s {
	case "none", "solid", "dashed", "dotted", "double", "groove", "ridge", "inset", "outset":
		return true
	}
	return false
}

// Shorthand logic to distribute individual values from compound
// properties: 1 value applies to all four sides, 2 values pair up
// vertically/horizontally, 3 values leave the left side paired with
// the right.
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-right", "bottom-right", "bottom-left", "top-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
