package htmltree

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Builder is a transient stand-in for an element that needs several
// required attributes before it is renderable. It starts out building and
// becomes complete the instant the last required slot is filled, in
// whatever order the calls arrive; from then on every call resolves against
// the finished element. An incomplete builder refuses to render.
type Builder struct {
	el      *Element
	missing map[string]struct{}
}

var (
	_ View       = (*Builder)(nil)
	_ Attributed = (*Builder)(nil)
)

// NewBuilder wraps el, deferring completion until every named required
// attribute has been set.
func NewBuilder(el *Element, required ...string) *Builder {
	b := &Builder{el: el, missing: make(map[string]struct{}, len(required))}
	for _, name := range required {
		b.missing[name] = struct{}{}
	}
	return b
}

// Set stores value for the named attribute and returns the chain.
func (b *Builder) Set(name string, value any) *Builder {
	b.el.Set(name, value)
	delete(b.missing, name)
	return b
}

// SetBool enables the named boolean attribute, as Element.SetBool.
func (b *Builder) SetBool(name string, on ...bool) *Builder {
	b.el.SetBool(name, on...)
	delete(b.missing, name)
	return b
}

// Complete reports whether every required attribute has been set.
func (b *Builder) Complete() bool {
	return len(b.missing) == 0
}

// Element returns the finished concrete element once the builder is
// complete. Before that it returns nil and false.
func (b *Builder) Element() (*Element, bool) {
	if !b.Complete() {
		return nil, false
	}
	return b.el, true
}

// Missing lists the required attributes still unset, sorted by name.
func (b *Builder) Missing() []string {
	names := make([]string, 0, len(b.missing))
	for name := range b.missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render draws the finished element. While any required attribute is
// missing it fails, naming the absent fields.
func (b *Builder) Render(w io.Writer) error {
	return Select(b.Complete(),
		Lazy(true, func() error { return b.el.Render(w) }),
		FallbackLazy[bool](func() error {
			return fmt.Errorf("htmltree: <%s> is missing required attributes: %s",
				b.el.Tag(), strings.Join(b.Missing(), ", "))
		}),
	)
}

// Class sets the class global attribute on the underlying element.
func (b *Builder) Class(v string) *Builder {
	b.el.Class(v)
	return b
}

// ID sets the id global attribute on the underlying element.
func (b *Builder) ID(v string) *Builder {
	b.el.ID(v)
	return b
}

// Style sets the style global attribute on the underlying element.
func (b *Builder) Style(v string) *Builder {
	b.el.Style(v)
	return b
}

// TitleAttr sets the title global attribute on the underlying element.
func (b *Builder) TitleAttr(v string) *Builder {
	b.el.TitleAttr(v)
	return b
}

// Globals exposes the underlying element's global attribute slots.
func (b *Builder) Globals() *GlobalAttrs {
	return b.el.Globals()
}

// InheritGlobals copies the four global slots from src onto the underlying
// element and returns the chain.
func (b *Builder) InheritGlobals(src Attributed) *Builder {
	InheritGlobals(b, src)
	return b
}
