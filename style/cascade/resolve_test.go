package cascade_test

import (
	"reflect"
	"testing"

	"github.com/npillmayer/qss/style/cascade"
	"github.com/npillmayer/qss/style/sheet"
	"github.com/npillmayer/qss/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustParse(t *testing.T, src string) *sheet.RuleSet {
	t.Helper()
	rs, err := sheet.Parse(src, sheet.Strict)
	if err != nil {
		t.Fatalf("cannot parse rule set: %v", err)
	}
	return rs
}

const buttonTheme = `
PushButton { color: white; }
PushButton#capture { color: red; }
PushButton#capture:hover { color: orange; }
`

func TestResolveSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qss.cascade")
	defer teardown()
	//
	rs := mustParse(t, buttonTheme)
	capture := widget.New("PushButton").SetID("capture")

	styles := cascade.Resolve(capture, "", rs)
	if p, _ := styles.Property("color"); p != "red" {
		t.Errorf("expected id rule to win over type rule, color is %q", p)
	}

	capture.SetState(widget.Hover, true)
	styles = cascade.Resolve(capture, "", rs)
	if p, _ := styles.Property("color"); p != "orange" {
		t.Errorf("expected :hover rule to win once hovered, color is %q", p)
	}

	other := widget.New("PushButton").SetID("other")
	styles = cascade.Resolve(other, "", rs)
	if p, _ := styles.Property("color"); p != "white" {
		t.Errorf("expected type rule for unrelated id, color is %q", p)
	}
}

func TestResolveIDBeatsSourceOrder(t *testing.T) {
	// the id rule comes first, yet must win
	rs := mustParse(t, `
PushButton#capture { color: red; }
PushButton { color: white; }
`)
	capture := widget.New("PushButton").SetID("capture")
	styles := cascade.Resolve(capture, "", rs)
	if p, _ := styles.Property("color"); p != "red" {
		t.Errorf("expected id selector to override later type selector, color is %q", p)
	}
}

func TestResolveSourceOrderTieBreak(t *testing.T) {
	rs := mustParse(t, `
Label { color: grey; }
Label { color: black; }
`)
	label := widget.New("Label")
	styles := cascade.Resolve(label, "", rs)
	if p, _ := styles.Property("color"); p != "black" {
		t.Errorf("expected later rule of equal specificity to win, color is %q", p)
	}
}

func TestResolveNoMatches(t *testing.T) {
	rs := mustParse(t, "PushButton { color: white; }")
	label := widget.New("Label")
	styles := cascade.Resolve(label, "", rs)
	if !styles.IsEmpty() {
		t.Errorf("expected empty style for unmatched widget, have %v", styles)
	}
}

func TestResolveSubControlIsolation(t *testing.T) {
	rs := mustParse(t, `
ComboBox { background-color: black; }
ComboBox::drop-down { image: url(arrow.png); }
`)
	combo := widget.New("ComboBox")
	own := cascade.Resolve(combo, "", rs)
	if _, ok := own.Property("image"); ok {
		t.Error("expected sub-control property not to leak into widget style, does")
	}
	arrow := cascade.Resolve(combo, "drop-down", rs)
	if _, ok := arrow.Property("image"); !ok {
		t.Error("expected sub-control style to carry its property, doesn't")
	}
	if _, ok := arrow.Property("background-color"); ok {
		t.Error("expected widget property not to leak into sub-control style, does")
	}
}

func TestResolveShorthandOverride(t *testing.T) {
	rs := mustParse(t, `
PushButton { border: 1px solid #555555; }
PushButton:hover { border-color: #cc0000; }
`)
	button := widget.New("PushButton")
	button.SetState(widget.Hover, true)
	styles := cascade.Resolve(button, "", rs)
	if p, _ := styles.Property("border-top-color"); p != "#cc0000" {
		t.Errorf("expected hover longhand to override shorthand component, is %q", p)
	}
	if p, _ := styles.Property("border-top-width"); p != "1px" {
		t.Errorf("expected shorthand width to survive, is %q", p)
	}
}

func TestResolveDeterminism(t *testing.T) {
	rs := mustParse(t, buttonTheme)
	capture := widget.New("PushButton").SetID("capture")
	capture.SetState(widget.Hover, true)
	first := cascade.Resolve(capture, "", rs).Properties()
	second := cascade.Resolve(capture, "", rs).Properties()
	m1 := map[string]string{}
	m2 := map[string]string{}
	for _, kv := range first {
		m1[kv.Key] = kv.Value.String()
	}
	for _, kv := range second {
		m2[kv.Key] = kv.Value.String()
	}
	if !reflect.DeepEqual(m1, m2) {
		t.Errorf("expected repeated resolution to be identical: %v vs %v", m1, m2)
	}
}

func TestSpecificityOrdering(t *testing.T) {
	id := cascade.SpecificityOf(mustSelector(t, "PushButton#capture"), 0)
	typ := cascade.SpecificityOf(mustSelector(t, "PushButton"), 99)
	if !typ.Less(id) {
		t.Errorf("expected %v < %v regardless of source order", typ, id)
	}
	hovered := cascade.SpecificityOf(mustSelector(t, "PushButton:hover"), 0)
	if !typ.Less(hovered) {
		t.Errorf("expected a pseudo-state to add specificity: %v < %v", typ, hovered)
	}
}
