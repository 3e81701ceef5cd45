package htmltree

import "io"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Element is the generic builtin element: a fixed tag name, content set at
// construction, and a declared attribute schema whose values stay mutable
// through the chainable setters until Render is invoked.
type Element struct {
	tag     string
	content any
	specs   []AttrSpec // required ++ optional, in declaration order
	values  map[string]any
	globals GlobalAttrs
}

var (
	_ View       = (*Element)(nil)
	_ Attributed = (*Element)(nil)
	_ Builtin    = (*Element)(nil)
)

// NewElement builds an element for tag with the given content and attribute
// schema. Required attributes are declared, not enforced: one left unset
// simply renders as absent.
func NewElement(tag string, content any, required, optional []AttrSpec) *Element {
	specs := make([]AttrSpec, 0, len(required)+len(optional))
	specs = append(specs, required...)
	specs = append(specs, optional...)
	return &Element{
		tag:     tag,
		content: content,
		specs:   specs,
		values:  make(map[string]any),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Set stores value for the named attribute and returns the element for
// chaining. An undeclared name is appended to the schema as a value-kind
// attribute, rendered after the declared ones.
func (e *Element) Set(name string, value any) *Element {
	if !e.declared(name) {
		e.specs = append(e.specs, AttrSpec{Name: name, Kind: KindValue})
	}
	e.values[name] = value
	return e
}

// SetBool enables the named boolean attribute, or disables it when called
// with an explicit false. Chainable like Set.
func (e *Element) SetBool(name string, on ...bool) *Element {
	v := true
	if len(on) > 0 {
		v = on[0]
	}
	if !e.declared(name) {
		e.specs = append(e.specs, AttrSpec{Name: name, Kind: KindBool})
	}
	e.values[name] = v
	return e
}

func (e *Element) declared(name string) bool {
	for _, spec := range e.specs {
		if spec.Name == name {
			return true
		}
	}
	return false
}

// Apply routes constructor attributes into the element: the four global
// names land in the global slots, everything else goes through Set/SetBool.
func (e *Element) Apply(attrs ...Attr) *Element {
	for _, a := range attrs {
		if a.IsEmpty() {
			continue
		}
		switch a.Key {
		case "class":
			e.Class(attrToString(a.Value))
		case "id":
			e.ID(attrToString(a.Value))
		case "style":
			e.Style(attrToString(a.Value))
		case "title":
			e.TitleAttr(attrToString(a.Value))
		default:
			if b, ok := a.Value.(bool); ok {
				e.SetBool(a.Key, b)
			} else {
				e.Set(a.Key, a.Value)
			}
		}
	}
	return e
}

// Class sets the class global attribute.
func (e *Element) Class(v string) *Element {
	e.globals.Class = &v
	return e
}

// ID sets the id global attribute.
func (e *Element) ID(v string) *Element {
	e.globals.ID = &v
	return e
}

// Style sets the style global attribute.
func (e *Element) Style(v string) *Element {
	e.globals.Style = &v
	return e
}

// TitleAttr sets the title global attribute (named to avoid suggesting the
// <title> element).
func (e *Element) TitleAttr(v string) *Element {
	e.globals.Title = &v
	return e
}

// Globals exposes the global attribute slots.
func (e *Element) Globals() *GlobalAttrs {
	return &e.globals
}

// InheritGlobals copies the four global slots from src onto the element and
// returns it for chaining.
func (e *Element) InheritGlobals(src Attributed) *Element {
	InheritGlobals(e, src)
	return e
}

// Raw produces the element markup: the open tag with the attribute values
// current at this instant, the recursively drawn content, and the closing
// tag. Void tags stop after the open tag.
func (e *Element) Raw(w io.Writer) error {
	if e == nil {
		return nil
	}
	open := "<" + e.tag
	if attrs := renderCommonAttrs(e.specs, e.values, &e.globals, true); attrs != "" {
		open += " " + attrs
	}
	if _, err := io.WriteString(w, open+">"); err != nil {
		return err
	}
	if IsVoidElement(e.tag) {
		return nil
	}
	if err := RenderTo(w, e.content); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+e.tag+">")
	return err
}

// Render implements View; for builtin elements it is defined as Raw.
func (e *Element) Render(w io.Writer) error {
	return e.Raw(w)
}
