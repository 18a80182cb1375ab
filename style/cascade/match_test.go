package cascade_test

import (
	"testing"

	"github.com/npillmayer/qss/style/cascade"
	"github.com/npillmayer/qss/style/sheet"
	"github.com/npillmayer/qss/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustSelector(t *testing.T, text string) *sheet.Selector {
	t.Helper()
	sel, err := sheet.ParseSelector(text)
	if err != nil {
		t.Fatalf("cannot parse selector %q: %v", text, err)
	}
	return sel
}

func TestMatchTypeAndID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qss.cascade")
	defer teardown()
	//
	button := widget.New("PushButton").SetID("capture")
	if !cascade.Matches(mustSelector(t, "PushButton"), button, "") {
		t.Error("expected type selector to match, doesn't")
	}
	if !cascade.Matches(mustSelector(t, "PushButton#capture"), button, "") {
		t.Error("expected id selector to match, doesn't")
	}
	if cascade.Matches(mustSelector(t, "PushButton#other"), button, "") {
		t.Error("expected foreign id selector not to match, does")
	}
	if cascade.Matches(mustSelector(t, "ToolButton"), button, "") {
		t.Error("expected foreign type selector not to match, does")
	}
	if !cascade.Matches(mustSelector(t, "*"), button, "") {
		t.Error("expected wildcard selector to match, doesn't")
	}
}

func TestMatchStateConjunction(t *testing.T) {
	button := widget.New("PushButton")
	sel := mustSelector(t, "PushButton:hover:pressed")
	button.SetState(widget.Hover, true)
	if cascade.Matches(sel, button, "") {
		t.Error("expected :hover:pressed not to match a merely hovered widget, does")
	}
	button.SetState(widget.Pressed, true)
	if !cascade.Matches(sel, button, "") {
		t.Error("expected :hover:pressed to match once both states are active, doesn't")
	}
}

func TestMatchNegatedState(t *testing.T) {
	box := widget.New("CheckBox")
	sel := mustSelector(t, "CheckBox:unchecked")
	if !cascade.Matches(sel, box, "") {
		t.Error("expected :unchecked to match an unchecked widget, doesn't")
	}
	box.SetState(widget.Checked, true)
	if cascade.Matches(sel, box, "") {
		t.Error("expected :unchecked not to match a checked widget, does")
	}
}

func TestMatchDescendant(t *testing.T) {
	window := widget.New("MainWindow")
	tabs := widget.New("TabWidget").SetParent(window)
	bar := widget.New("TabBar").SetParent(tabs)
	button := widget.New("PushButton").SetParent(bar)
	if !cascade.Matches(mustSelector(t, "MainWindow PushButton"), button, "") {
		t.Error("expected descendant selector to match across depth, doesn't")
	}
	if !cascade.Matches(mustSelector(t, "TabBar > PushButton"), button, "") {
		t.Error("expected child selector to match immediate parent, doesn't")
	}
	if cascade.Matches(mustSelector(t, "MainWindow > PushButton"), button, "") {
		t.Error("expected child selector not to match across depth, does")
	}
	if cascade.Matches(mustSelector(t, "Dialog PushButton"), button, "") {
		t.Error("expected selector with foreign ancestor not to match, does")
	}
}

func TestMatchAncestorState(t *testing.T) {
	group := widget.New("GroupBox")
	label := widget.New("Label").SetParent(group)
	sel := mustSelector(t, "GroupBox:disabled Label")
	if cascade.Matches(sel, label, "") {
		t.Error("expected selector not to match with enabled ancestor, does")
	}
	group.SetState(widget.Disabled, true)
	if !cascade.Matches(sel, label, "") {
		t.Error("expected selector to match with disabled ancestor, doesn't")
	}
}

func TestMatchSubControlContext(t *testing.T) {
	combo := widget.New("ComboBox")
	plain := mustSelector(t, "ComboBox")
	arrow := mustSelector(t, "ComboBox::drop-down")
	if !cascade.Matches(arrow, combo, "drop-down") {
		t.Error("expected ::drop-down to match in drop-down context, doesn't")
	}
	if cascade.Matches(arrow, combo, "") {
		t.Error("expected ::drop-down not to match the widget itself, does")
	}
	if cascade.Matches(plain, combo, "drop-down") {
		t.Error("expected plain selector not to match in sub-control context, does")
	}
}

func TestMatchUnknownState(t *testing.T) {
	slider := widget.New("Slider")
	sel := mustSelector(t, "Slider:indeterminate")
	if cascade.Matches(sel, slider, "") {
		t.Error("expected selector with unknown pseudo-state never to match, does")
	}
}
