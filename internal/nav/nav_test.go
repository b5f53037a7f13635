package nav

import "testing"

type fakeDoc struct {
	ready    bool
	elements map[string]float64
	header   float64
	noHeader bool
}

func (d *fakeDoc) Ready() bool { return d.ready }

func (d *fakeDoc) ElementTop(id string) (float64, bool) {
	top, ok := d.elements[id]
	return top, ok
}

func (d *fakeDoc) HeaderHeight() (float64, bool) {
	if d.noHeader {
		return 0, false
	}
	return d.header, true
}

type scrollCall struct {
	top    float64
	smooth bool
}

type fakeScroller struct {
	calls []scrollCall
}

func (s *fakeScroller) ScrollTo(top float64, smooth bool) {
	s.calls = append(s.calls, scrollCall{top, smooth})
}

func newPage() *fakeDoc {
	return &fakeDoc{
		ready:  true,
		header: 80,
		elements: map[string]float64{
			"services":  700,
			"about":     1300,
			"portfolio": 1800,
			"contact":   2400,
		},
	}
}

func TestScrollToSectionContact(t *testing.T) {
	s := &fakeScroller{}
	c := NewController(newPage(), s)

	c.ScrollToSection("contact")

	if len(s.calls) != 1 {
		t.Fatalf("expected 1 scroll, got %d", len(s.calls))
	}
	if s.calls[0].top != 2320 {
		t.Errorf("expected target 2320, got %v", s.calls[0].top)
	}
	if !s.calls[0].smooth {
		t.Error("expected smooth scroll")
	}
}

func TestScrollToSectionOffsets(t *testing.T) {
	doc := newPage()
	for _, sec := range Sections {
		s := &fakeScroller{}
		c := NewController(doc, s)
		c.ScrollToSection(string(sec))

		if len(s.calls) != 1 {
			t.Fatalf("%s: expected 1 scroll, got %d", sec, len(s.calls))
		}
		want := doc.elements[string(sec)] - doc.header
		if s.calls[0].top != want {
			t.Errorf("%s: expected %v, got %v", sec, want, s.calls[0].top)
		}
		if s.calls[0].top < 0 {
			t.Errorf("%s: negative target %v", sec, s.calls[0].top)
		}
	}
}

func TestScrollToSectionDefaultHeader(t *testing.T) {
	doc := newPage()
	doc.noHeader = true

	s := &fakeScroller{}
	NewController(doc, s).ScrollToSection("about")
	if got := s.calls[0].top; got != 1300-DefaultHeaderHeight {
		t.Errorf("expected %v, got %v", 1300-DefaultHeaderHeight, got)
	}

	s = &fakeScroller{}
	NewController(doc, s, WithDefaultHeaderHeight(64)).ScrollToSection("about")
	if got := s.calls[0].top; got != 1236 {
		t.Errorf("expected 1236, got %v", got)
	}
}

func TestScrollToSectionNoOps(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		id   string
	}{
		{"unknown id", newPage(), "pricing"},
		{"empty id", newPage(), ""},
		{"not ready", &fakeDoc{elements: map[string]float64{"contact": 10}}, "contact"},
		{"nil document", nil, "contact"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeScroller{}
			c := NewController(tt.doc, s)
			c.ToggleMenu()

			c.ScrollToSection(tt.id)

			if len(s.calls) != 0 {
				t.Errorf("expected no scroll, got %v", s.calls)
			}
			if c.Menu().IsOpen() {
				t.Error("menu should be closed")
			}
		})
	}
}

func TestScrollToSectionClosesMenu(t *testing.T) {
	var writes []bool
	c := NewController(newPage(), &fakeScroller{}, WithMenuListener(func(open bool) {
		writes = append(writes, open)
	}))

	c.ToggleMenu()
	if !c.Menu().IsOpen() {
		t.Fatal("menu should be open after toggle")
	}
	c.ScrollToSection("services")
	if c.Menu().IsOpen() {
		t.Error("menu should be closed after navigation")
	}

	c.ScrollToSection("services")
	if c.Menu().IsOpen() {
		t.Error("menu should stay closed")
	}

	want := []bool{true, false, false}
	if len(writes) != len(want) {
		t.Fatalf("expected writes %v, got %v", want, writes)
	}
	for i := range want {
		if writes[i] != want[i] {
			t.Errorf("write %d: expected %v, got %v", i, want[i], writes[i])
		}
	}
}

func TestScrollToSectionRepeated(t *testing.T) {
	s := &fakeScroller{}
	c := NewController(newPage(), s)

	c.ScrollToSection("portfolio")
	c.ScrollToSection("portfolio")

	if len(s.calls) != 2 {
		t.Fatalf("expected 2 scrolls, got %d", len(s.calls))
	}
	if s.calls[0] != s.calls[1] {
		t.Errorf("expected identical targets, got %v and %v", s.calls[0], s.calls[1])
	}
}

func TestScrollToTop(t *testing.T) {
	s := &fakeScroller{}
	NewController(newPage(), s).ScrollToTop()
	if len(s.calls) != 1 || s.calls[0].top != 0 {
		t.Errorf("expected scroll to 0, got %v", s.calls)
	}
}

func TestSectionLabel(t *testing.T) {
	tests := map[Section]string{
		Services:  "services",
		About:     "About Me",
		Portfolio: "portfolio",
		Contact:   "Contact Me",
	}
	for sec, want := range tests {
		if got := sec.Label(); got != want {
			t.Errorf("%s: expected %q, got %q", sec, want, got)
		}
	}
}
