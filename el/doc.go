// Package el provides the per-tag element constructors and typed attribute
// helpers for htmltree.
//
// Each constructor is a data-driven instantiation of the generic element
// factory with a fixed tag name and attribute schema:
//
//	el.Div(el.Class("card"), el.ID("main"),
//	    el.H1("Title"),
//	    el.P("Content"),
//	)
//
// Elements whose schema has several required attributes (Img) return a
// builder that stays inert until every required slot is filled.
package el
