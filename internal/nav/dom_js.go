//go:build js && wasm

package nav

import "syscall/js"

// DOM reads geometry from and scrolls the browser window.
type DOM struct {
	HeaderSelector string
}

// NewDOM returns a DOM bound to the page's <header> element.
func NewDOM() *DOM {
	return &DOM{HeaderSelector: "header"}
}

func (d *DOM) document() js.Value {
	return js.Global().Get("document")
}

func (d *DOM) Ready() bool {
	doc := d.document()
	if doc.IsUndefined() || doc.IsNull() {
		return false
	}
	return doc.Get("readyState").String() != "loading"
}

func (d *DOM) ElementTop(id string) (float64, bool) {
	el := d.document().Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return 0, false
	}
	rect := el.Call("getBoundingClientRect")
	return rect.Get("top").Float() + js.Global().Get("scrollY").Float(), true
}

func (d *DOM) HeaderHeight() (float64, bool) {
	el := d.document().Call("querySelector", d.HeaderSelector)
	if el.IsNull() || el.IsUndefined() {
		return 0, false
	}
	return el.Get("offsetHeight").Float(), true
}

func (d *DOM) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	opts := js.Global().Get("Object").New()
	opts.Set("top", top)
	opts.Set("behavior", behavior)
	js.Global().Call("scrollTo", opts)
}
