package htmltree

import (
	"errors"
	"io"
)

// View is anything that can be rendered into a markup fragment.
type View interface {
	Render(w io.Writer) error
}

// GlobalAttrs holds the attribute slots shared by every attributed view:
// class, id, style and title. A nil slot renders nothing.
type GlobalAttrs struct {
	Class *string
	ID    *string
	Style *string
	Title *string
}

// Attributed is a View carrying the global attribute slots.
type Attributed interface {
	View
	Globals() *GlobalAttrs
}

// Builtin is an attributed view whose markup reduces to a raw production
// rule; its Render is defined as Raw.
type Builtin interface {
	Attributed
	Raw(w io.Writer) error
}

// InheritGlobals value-copies the four global attribute slots from src onto
// dst. Content and tag are untouched, and no slot is aliased: mutating src
// afterwards does not affect dst.
func InheritGlobals(dst, src Attributed) {
	d, s := dst.Globals(), src.Globals()
	d.Class = cloneString(s.Class)
	d.ID = cloneString(s.ID)
	d.Style = cloneString(s.Style)
	d.Title = cloneString(s.Title)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// ErrUnimplemented is reported when a view type has not supplied its own
// render production.
var ErrUnimplemented = errors.New("htmltree: view has no render production")

// UnimplementedView can be embedded by view types whose production rule is
// still pending. Rendering it fails immediately with ErrUnimplemented.
type UnimplementedView struct{}

// Render implements View by failing.
func (UnimplementedView) Render(io.Writer) error {
	return ErrUnimplemented
}
