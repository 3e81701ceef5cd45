package htmltree

import (
	"fmt"
	"strconv"
	"strings"
)

// AttrKind selects how an attribute value renders.
type AttrKind uint8

const (
	// KindValue renders as name="value" when a value is set.
	KindValue AttrKind = iota
	// KindBool renders as the bare name when truthy, nothing otherwise.
	KindBool
)

// AttrSpec declares one attribute of an element schema: its name and its
// rendering kind.
type AttrSpec struct {
	Name string
	Kind AttrKind
}

// Attr is a concrete attribute value handed to an element constructor.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty reports whether this is the zero attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// renderAttr renders a single attribute fragment. A nil value contributes
// nothing. KindValue yields name="value"; KindBool yields the bare name for
// truthy values and nothing for false.
func renderAttr(name string, value any, kind AttrKind) string {
	if value == nil {
		return ""
	}
	return Select(kind,
		Lazy(KindValue, func() string {
			return name + `="` + attrToString(value) + `"`
		}),
		Lazy(KindBool, func() string {
			if truthy(value) {
				return name
			}
			return ""
		}),
		Fallback[AttrKind](""),
	)
}

// renderGlobalAttrs renders the class, id, style and title slots, in that
// fixed order, with empty fragments filtered and survivors joined by a
// single space.
func renderGlobalAttrs(g *GlobalAttrs) string {
	if g == nil {
		return ""
	}
	slots := []struct {
		name string
		val  *string
	}{
		{"class", g.Class},
		{"id", g.ID},
		{"style", g.Style},
		{"title", g.Title},
	}
	frags := make([]string, 0, len(slots))
	for _, slot := range slots {
		var v any
		if slot.val != nil {
			v = *slot.val
		}
		if frag := renderAttr(slot.name, v, KindValue); frag != "" {
			frags = append(frags, frag)
		}
	}
	return strings.Join(frags, " ")
}

// renderCommonAttrs renders the declared attributes in schema order, then
// the global attributes when requested. Unset attributes contribute nothing,
// never a stray separator; the result carries no leading, trailing or
// doubled space.
func renderCommonAttrs(specs []AttrSpec, values map[string]any, globals *GlobalAttrs, includeGlobals bool) string {
	frags := make([]string, 0, len(specs))
	for _, spec := range specs {
		if frag := renderAttr(spec.Name, values[spec.Name], spec.Kind); frag != "" {
			frags = append(frags, frag)
		}
	}
	declared := strings.Join(frags, " ")
	if !includeGlobals {
		return declared
	}
	global := renderGlobalAttrs(globals)
	switch {
	case declared == "":
		return global
	case global == "":
		return declared
	}
	return declared + " " + global
}

// truthy decides whether a boolean-kind attribute renders.
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	default:
		return value != nil
	}
}

// attrToString converts an attribute value to its rendered string form.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
