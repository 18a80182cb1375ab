package style

import (
	"encoding/base64"
	"image/color"
	"strconv"
	"strings"
)

// Color converts a property value to a color. It understands hex
// literals ("#f00", "#ff0000") and a small set of named colors; for
// anything else it returns nil, leaving the decision to the toolkit's
// default palette.
func (p Property) Color() color.Color {
	if p.IsEmpty() || p == "default" || p == "transparent" {
		return nil
	}
	if strings.HasPrefix(string(p), "#") {
		if c, ok := hexColor(string(p)); ok {
			return c
		}
		return nil
	}
	switch p {
	case "black":
		return color.RGBA{0, 0, 0, 0xff}
	case "white":
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "orange":
		return color.RGBA{0xff, 0xa5, 0, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	return nil
}

// hexColor parses "#rgb" and "#rrggbb" literals.
func hexColor(s string) (color.Color, bool) {
	hex := s[1:]
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3:
		r, err = strconv.ParseUint(strings.Repeat(hex[0:1], 2), 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(strings.Repeat(hex[1:2], 2), 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(strings.Repeat(hex[2:3], 2), 16, 8)
		}
	case 6:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[4:6], 16, 8)
		}
	default:
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}, true
}

// ImageData extracts an embedded image payload from a property value of
// the form
//
//	url(data:image/png;base64,iVBORw0…)
//
// as used for indicator glyphs. It returns the decoded payload, or
// ok=false if the value is not a data-URI image.
func (p Property) ImageData() (payload []byte, ok bool) {
	v := strings.TrimSpace(string(p))
	if !strings.HasPrefix(v, "url(") || !strings.HasSuffix(v, ")") {
		return nil, false
	}
	v = strings.Trim(v[4:len(v)-1], "'\" ")
	if !strings.HasPrefix(v, "data:") {
		return nil, false
	}
	comma := strings.IndexByte(v, ',')
	if comma < 0 || !strings.Contains(v[:comma], ";base64") {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(v[comma+1:])
	if err != nil {
		tracer().Infof("cannot decode image payload: %v", err)
		return nil, false
	}
	return data, true
}

// Align is a named alignment enum, the value domain of 'text-align' and
// 'subcontrol-position'.
type Align int

// Alignment values.
const (
	AlignDefault Align = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignTop
	AlignBottom
)

// Align converts a property value to an alignment enum.
func (p Property) Align() Align {
	switch p {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	case "center":
		return AlignCenter
	case "top":
		return AlignTop
	case "bottom":
		return AlignBottom
	}
	return AlignDefault
}
