package router

import (
	"testing"

	"github.com/abhisek/tably/internal/screen"

	tea "charm.land/bubbletea/v2"
)

type stubScreen struct {
	name  string
	inits int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string           { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func TestRouter_PushPop(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}
	r := New(a)

	if r.Depth() != 1 || r.Active() != a {
		t.Fatalf("fresh router: depth=%d active=%v", r.Depth(), r.Active())
	}

	r.Update(PushScreenMsg{Screen: b})
	if r.Depth() != 2 || r.Active() != b {
		t.Errorf("after push: depth=%d active=%v", r.Depth(), r.Active())
	}
	if b.inits != 1 {
		t.Errorf("pushed screen initialized %d times, want 1", b.inits)
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != a {
		t.Errorf("after pop: depth=%d active=%v", r.Depth(), r.Active())
	}
}

func TestRouter_PopNeverEmptiesStack(t *testing.T) {
	a := &stubScreen{name: "a"}
	r := New(a)

	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != a {
		t.Errorf("after popping the root: depth=%d active=%v", r.Depth(), r.Active())
	}
}

func TestRouter_Replace(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}
	c := &stubScreen{name: "c"}
	r := New(a)

	r.Update(PushScreenMsg{Screen: b})
	r.Update(ReplaceScreenMsg{Screen: c})
	if r.Depth() != 2 || r.Active() != c {
		t.Errorf("after replace: depth=%d active=%v", r.Depth(), r.Active())
	}
	if c.inits != 1 {
		t.Errorf("replacement screen initialized %d times, want 1", c.inits)
	}

	// Popping the replacement lands back on the root, not the replaced
	// screen.
	r.Update(PopScreenMsg{})
	if r.Active() != a {
		t.Errorf("after pop: active=%v, want root", r.Active())
	}
}

func TestRouter_ViewRendersActive(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	if got := r.View(80, 24); got != "root" {
		t.Errorf("View = %q, want root view", got)
	}
}
