// Package nav scrolls the page to a named section while keeping the fixed
// header from covering the section's top edge.
package nav

// Section names the page anchors reachable from the navigation bar.
type Section string

const (
	Services  Section = "services"
	About     Section = "about"
	Portfolio Section = "portfolio"
	Contact   Section = "contact"
)

// Sections lists the navigation entries in display order.
var Sections = []Section{Services, About, Portfolio, Contact}

// Label is the text shown for the section in the desktop nav bar.
func (s Section) Label() string {
	switch s {
	case Contact:
		return "Contact Me"
	case About:
		return "About Me"
	default:
		return string(s)
	}
}

// DefaultHeaderHeight is used when no header element can be measured.
// It matches the rendered height of the site header (py-5 + 40px row).
const DefaultHeaderHeight = 80.0

// Document is the read side of the page geometry.
type Document interface {
	// Ready reports whether the document can be queried yet.
	Ready() bool
	// ElementTop returns the element's top edge relative to the document
	// origin, i.e. its viewport top plus the current scroll offset.
	ElementTop(id string) (float64, bool)
	// HeaderHeight returns the measured height of the fixed header.
	HeaderHeight() (float64, bool)
}

// Scroller performs the scroll side effect.
type Scroller interface {
	ScrollTo(top float64, smooth bool)
}

// Target is the scroll position that places an element whose top edge sits
// at elementTop directly below a header of the given height.
func Target(elementTop, headerHeight float64) float64 {
	return elementTop - headerHeight
}

// Menu is the mobile navigation overlay flag.
type Menu struct {
	open     bool
	onChange func(open bool)
}

// IsOpen reports whether the overlay is shown.
func (m *Menu) IsOpen() bool { return m.open }

// Toggle flips the overlay.
func (m *Menu) Toggle() { m.set(!m.open) }

// Close hides the overlay.
func (m *Menu) Close() { m.set(false) }

func (m *Menu) set(open bool) {
	m.open = open
	if m.onChange != nil {
		m.onChange(open)
	}
}

// Controller owns the menu state and handles navigation clicks.
type Controller struct {
	doc                 Document
	scroller            Scroller
	menu                Menu
	defaultHeaderHeight float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaultHeaderHeight overrides the fallback header height.
func WithDefaultHeaderHeight(h float64) Option {
	return func(c *Controller) { c.defaultHeaderHeight = h }
}

// WithMenuListener is called every time the menu flag is written.
func WithMenuListener(fn func(open bool)) Option {
	return func(c *Controller) { c.menu.onChange = fn }
}

// NewController returns a Controller with a closed menu.
func NewController(doc Document, scroller Scroller, opts ...Option) *Controller {
	c := &Controller{
		doc:                 doc,
		scroller:            scroller,
		defaultHeaderHeight: DefaultHeaderHeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Menu exposes the controller's menu state.
func (c *Controller) Menu() *Menu { return &c.menu }

// ToggleMenu flips the mobile menu.
func (c *Controller) ToggleMenu() { c.menu.Toggle() }

// ScrollToSection closes the menu and smooth-scrolls to the element with the
// given id. Unknown ids and an unready document are ignored.
func (c *Controller) ScrollToSection(id string) {
	c.menu.Close()

	if c.doc == nil || c.scroller == nil || !c.doc.Ready() {
		return
	}
	top, ok := c.doc.ElementTop(id)
	if !ok {
		return
	}
	header, ok := c.doc.HeaderHeight()
	if !ok {
		header = c.defaultHeaderHeight
	}
	c.scroller.ScrollTo(Target(top, header), true)
}

// ScrollToTop smooth-scrolls to the document origin.
func (c *Controller) ScrollToTop() {
	if c.scroller == nil {
		return
	}
	c.scroller.ScrollTo(0, true)
}
