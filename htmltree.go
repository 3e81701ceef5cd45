// Package htmltree composes trees of typed views and collapses them into
// HTML markup.
//
// Views are built from per-tag constructors (see the el subpackage) and
// combined with plain strings, slices, and projection views. Rendering is a
// pure, synchronous string transform: no I/O, no validation, no escaping of
// bare scalar content.
//
// # Core Types
//
// View is the root capability: anything that can render itself into a
// writer. Attributed refines it with the four global attribute slots
// (class, id, style, title). Element is the generic builtin element, built
// from a tag name and a declared attribute schema, with chainable setters
// for every declared attribute.
//
// # Composition
//
// An element's content slot accepts a single view, an ordered sequence, a
// bare scalar, or any mixture; the draw algorithm treats them uniformly:
//
//	el.Div(el.Class("card"),
//	    el.H1("Title"),
//	    el.P("Content"),
//	)
//
// # Deferred construction
//
// Elements with several required attributes (images, for instance) can be
// assembled through a Builder, which stays inert until every required slot
// is filled and refuses to render before then.
package htmltree

import (
	"strings"
)

// Render collapses content into its markup string. Content follows the
// draw contract of RenderTo: a View, an ordered sequence, or a bare scalar.
func Render(content any) (string, error) {
	var sb strings.Builder
	if err := RenderTo(&sb, content); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustRender is Render for content known not to fail, such as static trees.
// It panics on error.
func MustRender(content any) string {
	s, err := Render(content)
	if err != nil {
		panic(err)
	}
	return s
}
