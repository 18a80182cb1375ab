package widgetdbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/widget"
	"github.com/npillmayer/qss/widget/widgetdbg"
)

func TestTreePrint(t *testing.T) {
	window := widget.New("MainWindow")
	panel := widget.New("Frame").SetParent(window)
	widget.New("PushButton").SetID("capture").SetParent(panel)

	out := widgetdbg.TreePrint(window)
	t.Logf("tree =\n%s", out)
	if !strings.Contains(out, "PushButton#capture") {
		t.Error("expected tree dump to contain the button, doesn't")
	}
}

func TestTreePrintStyled(t *testing.T) {
	button := widget.New("PushButton")
	out := widgetdbg.TreePrintStyled(button, func(w *widget.Widget) *style.PropertyMap {
		pmap := style.NewPropertyMap()
		pmap.Add("color", "red")
		return pmap
	})
	t.Logf("tree =\n%s", out)
	if !strings.Contains(out, "color: red") {
		t.Error("expected annotated dump to contain resolved property, doesn't")
	}
}
