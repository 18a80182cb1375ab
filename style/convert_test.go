package style_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/qss/style"
)

func TestColorHex(t *testing.T) {
	c := style.Property("#cc0000").Color()
	if c == nil {
		t.Fatal("expected #cc0000 to parse as a color, didn't")
	}
	r, g, b, _ := c.RGBA()
	if r>>8 != 0xcc || g != 0 || b != 0 {
		t.Errorf("expected rgb(cc,00,00), have %v", c)
	}
	c = style.Property("#f00").Color()
	if c == nil {
		t.Fatal("expected #f00 to parse as a color, didn't")
	}
	if c != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("expected #f00 to expand to full red, is %v", c)
	}
}

func TestColorNamed(t *testing.T) {
	if c := style.Property("orange").Color(); c == nil {
		t.Error("expected named color orange to be known, isn't")
	}
	if c := style.Property("chartreuse").Color(); c != nil {
		t.Errorf("expected unknown color name to yield nil, is %v", c)
	}
	if c := style.Property("#zzz").Color(); c != nil {
		t.Errorf("expected defective hex literal to yield nil, is %v", c)
	}
}

func TestImageData(t *testing.T) {
	// "QSS!" in base64
	p := style.Property("url(data:image/png;base64,UVNTIQ==)")
	data, ok := p.ImageData()
	if !ok {
		t.Fatal("expected data-URI payload to decode, didn't")
	}
	if string(data) != "QSS!" {
		t.Errorf("expected payload 'QSS!', is %q", string(data))
	}
	if _, ok = style.Property("url(:/icons/check.png)").ImageData(); ok {
		t.Error("expected resource path not to decode as data-URI, does")
	}
}

func TestAlign(t *testing.T) {
	if a := style.Property("center").Align(); a != style.AlignCenter {
		t.Errorf("expected center to parse as AlignCenter, is %v", a)
	}
	if a := style.Property("justify").Align(); a != style.AlignDefault {
		t.Errorf("expected unknown alignment to parse as default, is %v", a)
	}
}
