package style_test

import (
	"testing"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPropertyMapBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qss.style")
	defer teardown()
	//
	pmap := style.NewPropertyMap()
	pmap.Add("background-color", "#2D2D2D")
	p, ok := pmap.Property("background-color")
	if !ok {
		t.Fatal("expected background-color to be set, isn't")
	}
	if p != "#2d2d2d" {
		t.Errorf("expected value to be lower-cased #2d2d2d, is %q", p)
	}
	if _, ok = pmap.Property("color"); ok {
		t.Error("expected color to be unset, isn't")
	}
}

func TestPropertyMapOverwrite(t *testing.T) {
	pmap := style.NewPropertyMap()
	pmap.Add("color", "white")
	pmap.Add("color", "red")
	p, _ := pmap.Property("color")
	if p != "red" {
		t.Errorf("expected later add to win, value is %q", p)
	}
}

func TestPropertyGroups(t *testing.T) {
	if g := style.GroupNameFromPropertyKey("border-top-width"); g != style.PGBorder {
		t.Errorf("expected border-top-width to belong to group Border, is %s", g)
	}
	if g := style.GroupNameFromPropertyKey("no-such-prop"); g != style.PGX {
		t.Errorf("expected unknown key to map to group X, is %s", g)
	}
	if !style.KnownProperty("selection-background-color") {
		t.Error("expected selection-background-color to be known, isn't")
	}
	if style.KnownProperty("grid-template-areas") {
		t.Error("expected grid-template-areas to be unknown, isn't")
	}
}

func TestSplitPadding(t *testing.T) {
	kvs, err := style.SplitCompoundProperty("padding", "4px 8px")
	if err != nil {
		t.Fatalf("cannot split padding: %v", err)
	}
	if len(kvs) != 4 {
		t.Fatalf("expected 4 components, have %d", len(kvs))
	}
	values := map[string]style.Property{}
	for _, kv := range kvs {
		values[kv.Key] = kv.Value
	}
	if values["padding-top"] != "4px" || values["padding-bottom"] != "4px" {
		t.Errorf("expected vertical padding 4px, have %v", values)
	}
	if values["padding-left"] != "8px" || values["padding-right"] != "8px" {
		t.Errorf("expected horizontal padding 8px, have %v", values)
	}
}

func TestSplitBorderTriple(t *testing.T) {
	kvs, err := style.SplitCompoundProperty("border", "1px solid #cc0000")
	if err != nil {
		t.Fatalf("cannot split border: %v", err)
	}
	values := map[string]style.Property{}
	for _, kv := range kvs {
		values[kv.Key] = kv.Value
	}
	if values["border-top-width"] != "1px" {
		t.Errorf("expected border-top-width 1px, is %q", values["border-top-width"])
	}
	if values["border-left-style"] != "solid" {
		t.Errorf("expected border-left-style solid, is %q", values["border-left-style"])
	}
	if values["border-bottom-color"] != "#cc0000" {
		t.Errorf("expected border-bottom-color #cc0000, is %q", values["border-bottom-color"])
	}
}

func TestSplitBorderRadius(t *testing.T) {
	kvs, err := style.SplitCompoundProperty("border-radius", "6px")
	if err != nil {
		t.Fatalf("cannot split border-radius: %v", err)
	}
	found := false
	for _, kv := range kvs {
		if kv.Key == "border-top-left-radius" && kv.Value == "6px" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected border-top-left-radius 6px among %v", kvs)
	}
}
