package htmltree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElementRendersTagAndContent(t *testing.T) {
	got := render(t, NewElement("p", "hi", nil, nil))
	if !strings.Contains(got, "<p") || !strings.Contains(got, "</p>") || !strings.Contains(got, "hi") {
		t.Fatalf("Render() = %q, want a <p> wrapping %q", got, "hi")
	}
	if strings.Contains(got, "<p ") {
		t.Fatalf("Render() = %q carries an attribute fragment with no attributes set", got)
	}
}

func TestElementDeclaredAttrsRenderBeforeGlobals(t *testing.T) {
	e := NewElement("video", nil, nil, []AttrSpec{{Name: "controls", Kind: KindBool}})
	e.SetBool("controls").Class("x")
	got := render(t, e)
	if want := `<video controls class="x"></video>`; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestElementSchemaOrderIsRenderingOrder(t *testing.T) {
	e := NewElement("img", nil,
		[]AttrSpec{{Name: "src", Kind: KindValue}, {Name: "alt", Kind: KindValue}},
		[]AttrSpec{{Name: "width", Kind: KindValue}},
	)
	// Set in reverse of declaration order; output follows the schema.
	e.Set("width", 10).Set("alt", "a").Set("src", "s")
	got := render(t, e)
	if want := `<img src="s" alt="a" width="10">`; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestElementMissingRequiredAttrRendersAsAbsent(t *testing.T) {
	e := NewElement("a", "x", []AttrSpec{{Name: "href", Kind: KindValue}}, nil)
	if got, want := render(t, e), "<a>x</a>"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestElementSetUndeclaredAppendsValueAttr(t *testing.T) {
	e := NewElement("div", nil, nil, nil).Set("data-x", "1").Class("c")
	got := render(t, e)
	if want := `<div data-x="1" class="c"></div>`; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestElementChainableSettersReturnReceiver(t *testing.T) {
	e := NewElement("div", nil, nil, nil)
	if e.Class("a").ID("b").Style("c").TitleAttr("d") != e {
		t.Fatalf("global setters must return the element for chaining")
	}
	if e.Set("x", 1).SetBool("y") != e {
		t.Fatalf("Set/SetBool must return the element for chaining")
	}
}

func TestVoidElementsOmitClosingTag(t *testing.T) {
	if got := render(t, NewElement("br", nil, nil, nil)); got != "<br>" {
		t.Fatalf("Render(br) = %q, want %q", got, "<br>")
	}
	e := NewElement("input", nil, nil, []AttrSpec{{Name: "type", Kind: KindValue}}).Set("type", "text")
	if got, want := render(t, e), `<input type="text">`; got != want {
		t.Fatalf("Render(input) = %q, want %q", got, want)
	}
}

func TestAttributeValuesAreReadAtRenderTime(t *testing.T) {
	e := NewElement("span", "x", nil, []AttrSpec{{Name: "data-n", Kind: KindValue}})
	e.Set("data-n", 1)
	if got := render(t, e); got != `<span data-n="1">x</span>` {
		t.Fatalf("Render() = %q", got)
	}
	e.Set("data-n", 2)
	if got := render(t, e); got != `<span data-n="2">x</span>` {
		t.Fatalf("Render() after mutation = %q", got)
	}
}

func TestInheritGlobalsCopiesExactlyTheFourSlots(t *testing.T) {
	src := NewElement("div", "source content", nil, nil).
		Class("a").ID("b").Style("c").TitleAttr("d")
	dst := NewElement("span", "dest content", nil, nil).InheritGlobals(src)

	if diff := cmp.Diff(src.Globals(), dst.Globals()); diff != "" {
		t.Fatalf("globals mismatch after InheritGlobals (-src +dst):\n%s", diff)
	}
	got := render(t, dst)
	if !strings.HasPrefix(got, "<span ") || !strings.Contains(got, "dest content") {
		t.Fatalf("InheritGlobals must not touch tag or content: %q", got)
	}

	// No aliasing: mutating the source afterwards leaves the copy alone.
	src.Class("changed")
	if *dst.Globals().Class != "a" {
		t.Fatalf("destination class = %q after source mutation, want %q", *dst.Globals().Class, "a")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	e := NewElement("p", []any{"hi ", NewElement("b", "there", nil, nil)}, nil, nil).Class("x")
	first := render(t, e)
	second := render(t, e)
	if first != second {
		t.Fatalf("re-render differs: %q vs %q", first, second)
	}
}
