package htmltree

import (
	"strings"
	"testing"
)

func imgElement() *Element {
	return NewElement("img", nil,
		[]AttrSpec{{Name: "src", Kind: KindValue}, {Name: "alt", Kind: KindValue}},
		nil,
	)
}

func TestBuilderStaysBuildingUntilAllRequiredSet(t *testing.T) {
	b := NewBuilder(imgElement(), "src", "alt")

	if b.Complete() {
		t.Fatalf("fresh builder should not be complete")
	}
	if chain := b.Set("src", "a.png"); chain != b {
		t.Fatalf("Set on an incomplete builder must return the chain")
	}
	if _, ok := b.Element(); ok {
		t.Fatalf("builder with one of two required fields should not be complete")
	}

	b.Set("alt", "a picture")
	el, ok := b.Element()
	if !ok || el == nil {
		t.Fatalf("builder with all required fields should yield the element")
	}
}

func TestBuilderOutputEqualsDirectConstructionRegardlessOfOrder(t *testing.T) {
	direct := imgElement().Set("src", "a.png").Set("alt", "a picture")
	want := render(t, direct)

	forward := NewBuilder(imgElement(), "src", "alt").Set("src", "a.png").Set("alt", "a picture")
	reverse := NewBuilder(imgElement(), "src", "alt").Set("alt", "a picture").Set("src", "a.png")

	if got := render(t, forward); got != want {
		t.Fatalf("builder (src first) = %q, want %q", got, want)
	}
	if got := render(t, reverse); got != want {
		t.Fatalf("builder (alt first) = %q, want %q", got, want)
	}
}

func TestIncompleteBuilderRefusesToRender(t *testing.T) {
	b := NewBuilder(imgElement(), "src", "alt").Set("src", "a.png")
	_, err := Render(b)
	if err == nil {
		t.Fatalf("rendering an incomplete builder should fail")
	}
	if !strings.Contains(err.Error(), "alt") {
		t.Fatalf("error %q should name the missing attribute", err)
	}
	if strings.Contains(err.Error(), "src,") || strings.Contains(err.Error(), ", src") {
		t.Fatalf("error %q should not name attributes already set", err)
	}
}

func TestBuilderMissingListsSortedNames(t *testing.T) {
	b := NewBuilder(imgElement(), "src", "alt")
	got := b.Missing()
	if len(got) != 2 || got[0] != "alt" || got[1] != "src" {
		t.Fatalf("Missing() = %v, want [alt src]", got)
	}
}

func TestBuilderForwardsGlobalsToElement(t *testing.T) {
	b := NewBuilder(imgElement(), "src", "alt").
		Class("hero").
		Set("src", "a.png").
		Set("alt", "a picture")
	got := render(t, b)
	if want := `<img src="a.png" alt="a picture" class="hero">`; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestBuilderInheritGlobals(t *testing.T) {
	src := NewElement("div", nil, nil, nil).Class("a").TitleAttr("t")
	b := NewBuilder(imgElement(), "src", "alt").InheritGlobals(src)
	if got := b.Globals().Class; got == nil || *got != "a" {
		t.Fatalf("builder did not inherit class from source")
	}
	src.Class("changed")
	if *b.Globals().Class != "a" {
		t.Fatalf("builder globals alias the source")
	}
}
