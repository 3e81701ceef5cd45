// Package document decodes YAML document models into renderable view trees.
//
// A model is a page title plus a body of nested nodes. Each node carries a
// tag name, the four global attribute slots, a free-form attribute map and
// either text or child nodes:
//
//	title: Hello
//	body:
//	  - tag: h1
//	    text: Hello, world
//	  - tag: p
//	    class: lead
//	    text: Rendered from a model.
package document

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/htmltree-dev/htmltree"
	"github.com/htmltree-dev/htmltree/el"
)

// Node is one element of the document model.
type Node struct {
	Tag      string         `yaml:"tag"`
	Text     string         `yaml:"text,omitempty"`
	Class    string         `yaml:"class,omitempty"`
	ID       string         `yaml:"id,omitempty"`
	Style    string         `yaml:"style,omitempty"`
	Title    string         `yaml:"title,omitempty"`
	Attrs    map[string]any `yaml:"attrs,omitempty"`
	Children []Node         `yaml:"children,omitempty"`
}

// Document is a full page model.
type Document struct {
	Title string `yaml:"title,omitempty"`
	Lang  string `yaml:"lang,omitempty"`
	Body  []Node `yaml:"body"`
}

// Parse decodes a YAML document model.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document: decoding model: %w", err)
	}
	return &doc, nil
}

// Compile builds the view tree for the whole page: an html element wrapping
// a head (charset meta plus the page title) and the compiled body.
func (d *Document) Compile() htmltree.View {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}
	body := make([]any, 0, len(d.Body))
	for _, n := range d.Body {
		body = append(body, n.Compile())
	}
	return htmltree.Fragment(
		htmltree.Raw("<!DOCTYPE html>"),
		el.Html(el.Lang(lang),
			el.Head(
				el.Meta(el.Charset("utf-8")),
				el.Title(htmltree.Text(d.Title)),
			),
			el.Body(body...),
		),
	)
}

// Compile builds the view for a single node. Model text is escaped; an
// empty tag defaults to div.
func (n Node) Compile() htmltree.View {
	tag := n.Tag
	if tag == "" {
		tag = "div"
	}
	content := make([]any, 0, len(n.Children)+1)
	if n.Text != "" {
		content = append(content, htmltree.Text(n.Text))
	}
	for _, child := range n.Children {
		content = append(content, child.Compile())
	}
	elem := htmltree.NewElement(tag, content, nil, nil)
	if n.Class != "" {
		elem.Class(n.Class)
	}
	if n.ID != "" {
		elem.ID(n.ID)
	}
	if n.Style != "" {
		elem.Style(n.Style)
	}
	if n.Title != "" {
		elem.TitleAttr(n.Title)
	}
	// Map order is unstable; sort for deterministic output.
	names := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if b, ok := n.Attrs[name].(bool); ok {
			elem.SetBool(name, b)
			continue
		}
		elem.Set(name, n.Attrs[name])
	}
	return elem
}
