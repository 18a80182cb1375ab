/*
Package widgetdbg implements helpers to debug a widget tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widgetdbg

import (
	"fmt"
	"sort"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/widget"
	tp "github.com/xlab/treeprint"
)

// TreePrint returns an ASCII rendering of a widget tree, rooted at root.
func TreePrint(root *widget.Widget) string {
	p := tp.New()
	ppw(p, root, nil)
	return p.String()
}

// TreePrintStyled renders a widget tree with each widget annotated by
// the properties the given resolver yields for it. resolve will usually
// close over an engine:
//
//	widgetdbg.TreePrintStyled(root, func(w *widget.Widget) *style.PropertyMap {
//	    return engine.Resolve(w, "")
//	})
//
func TreePrintStyled(root *widget.Widget, resolve func(*widget.Widget) *style.PropertyMap) string {
	p := tp.New()
	ppw(p, root, resolve)
	return p.String()
}

func ppw(p tp.Tree, w *widget.Widget, resolve func(*widget.Widget) *style.PropertyMap) {
	if w == nil {
		return
	}
	label := w.String()
	if resolve != nil {
		label += " " + propsString(resolve(w))
	}
	if len(w.Children()) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range w.Children() {
		ppw(branch, ch, resolve)
	}
}

func propsString(pmap *style.PropertyMap) string {
	kvs := pmap.Properties()
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	s := "{"
	for i, kv := range kvs {
		if i > 0 {
			s += "; "
		}
		s += fmt.Sprintf("%s: %s", kv.Key, kv.Value)
	}
	return s + "}"
}
