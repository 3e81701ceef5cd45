package htmltree

import (
	"fmt"
	"io"
	"reflect"
)

// RenderTo recursively draws content into w. Content is classified into
// exactly one of three cases: a View renders itself; an ordered sequence
// draws each element in order with no separator; anything else passes
// through as its string form, unescaped. nil draws nothing.
//
// This is what lets an element's content slot hold a single view, a slice
// of views, plain text, numbers, or any mixture of those.
//
// The content graph must be acyclic; a cycle does not terminate.
func RenderTo(w io.Writer, content any) error {
	switch c := content.(type) {
	case nil:
		return nil
	case View:
		return c.Render(w)
	case []View:
		for _, v := range c {
			if err := RenderTo(w, v); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, v := range c {
			if err := RenderTo(w, v); err != nil {
				return err
			}
		}
		return nil
	case string:
		_, err := io.WriteString(w, c)
		return err
	case []byte:
		_, err := w.Write(c)
		return err
	}

	// Typed slices ([]*Element, []int, ...) are sequences too.
	if rv := reflect.ValueOf(content); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			if err := RenderTo(w, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}

	_, err := fmt.Fprintf(w, "%v", content)
	return err
}
