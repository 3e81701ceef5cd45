package htmltree

import (
	"fmt"
	"html"
	"io"
)

// textView renders HTML-escaped text.
type textView string

// Render implements View.
func (t textView) Render(w io.Writer) error {
	_, err := io.WriteString(w, html.EscapeString(string(t)))
	return err
}

// Text returns a view rendering content with HTML escaping. Bare strings
// handed to the draw algorithm pass through unescaped; wrap caller-supplied
// text in Text when escaping is wanted.
func Text(content string) View {
	return textView(content)
}

// Textf creates a formatted text view.
func Textf(format string, args ...any) View {
	return Text(fmt.Sprintf(format, args...))
}

// rawView renders its markup verbatim.
type rawView string

// Render implements View.
func (r rawView) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	return err
}

// Raw creates an unescaped markup view.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(markup string) View {
	return rawView(markup)
}

// fragment groups content without a wrapper element.
type fragment []any

// Render implements View.
func (f fragment) Render(w io.Writer) error {
	for _, c := range f {
		if err := RenderTo(w, c); err != nil {
			return err
		}
	}
	return nil
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) View {
	return fragment(children)
}
