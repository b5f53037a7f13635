//go:build js && wasm

// Command wasm binds the page navigation to the browser. Build with
// GOOS=js GOARCH=wasm go build -o public/static/nav.wasm ./web/wasm
package main

import (
	"strconv"
	"syscall/js"

	"github.com/ahmedsharif09/portfolio/internal/nav"
)

func main() {
	doc := js.Global().Get("document")
	menuEl := doc.Call("getElementById", "mobile-menu")
	toggles := doc.Call("querySelectorAll", "[data-menu-toggle]")

	dom := nav.NewDOM()
	opts := []nav.Option{
		nav.WithMenuListener(func(open bool) {
			if !menuEl.IsNull() {
				menuEl.Get("classList").Call("toggle", "hidden", !open)
			}
			for i := 0; i < toggles.Length(); i++ {
				toggles.Index(i).Call("setAttribute", "aria-expanded", strconv.FormatBool(open))
			}
		}),
	}
	if h, err := strconv.ParseFloat(doc.Get("body").Call("getAttribute", "data-header-height").String(), 64); err == nil {
		opts = append(opts, nav.WithDefaultHeaderHeight(h))
	}
	ctrl := nav.NewController(dom, dom, opts...)

	bind := func(selector string, fn func(el js.Value)) {
		els := doc.Call("querySelectorAll", selector)
		for i := 0; i < els.Length(); i++ {
			el := els.Index(i)
			el.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
				args[0].Call("preventDefault")
				fn(el)
				return nil
			}))
		}
	}

	bind("[data-section]", func(el js.Value) {
		ctrl.ScrollToSection(el.Call("getAttribute", "data-section").String())
	})
	bind("[data-nav-top]", func(js.Value) { ctrl.ScrollToTop() })
	bind("[data-menu-toggle]", func(js.Value) { ctrl.ToggleMenu() })

	select {}
}
