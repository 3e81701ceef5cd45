package htmltree

import (
	"errors"
	"testing"
)

func TestRenderEntryPointEqualsNodeRender(t *testing.T) {
	e := NewElement("p", "hi", nil, nil).Class("x")
	viaEntry, err := Render(e)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if viaEntry != MustRender(e) {
		t.Fatalf("Render and MustRender disagree")
	}
	if want := `<p class="x">hi</p>`; viaEntry != want {
		t.Fatalf("Render() = %q, want %q", viaEntry, want)
	}
}

func TestUnimplementedViewFailsLoudly(t *testing.T) {
	type pending struct {
		UnimplementedView
	}
	_, err := Render(pending{})
	if !errors.Is(err, ErrUnimplemented) {
		t.Fatalf("Render(pending) error = %v, want ErrUnimplemented", err)
	}
}

func TestMustRenderPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustRender should panic when rendering fails")
		}
	}()
	MustRender(struct{ UnimplementedView }{})
}

func TestEndToEndDocument(t *testing.T) {
	page := NewElement("div", []any{
		NewElement("h1", "Title", nil, nil),
		Map([]string{"a", "b"}, func(s string) any {
			return NewElement("p", s, nil, nil)
		}),
	}, nil, nil).Class("page")

	got := MustRender(page)
	want := `<div class="page"><h1>Title</h1><p>a</p><p>b</p></div>`
	if got != want {
		t.Fatalf("MustRender() = %q, want %q", got, want)
	}
}
