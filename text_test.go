package htmltree

import "testing"

func TestTextEscapes(t *testing.T) {
	if got, want := render(t, Text(`<b> & "x"`)), "&lt;b&gt; &amp; &#34;x&#34;"; got != want {
		t.Fatalf("Render(Text) = %q, want %q", got, want)
	}
}

func TestTextfFormats(t *testing.T) {
	if got, want := render(t, Textf("%d items", 3)), "3 items"; got != want {
		t.Fatalf("Render(Textf) = %q, want %q", got, want)
	}
}

func TestRawPassesThrough(t *testing.T) {
	if got, want := render(t, Raw("<b>hi</b>")), "<b>hi</b>"; got != want {
		t.Fatalf("Render(Raw) = %q, want %q", got, want)
	}
}

func TestFragmentGroupsWithoutWrapper(t *testing.T) {
	f := Fragment("a", NewElement("b", "c", nil, nil), 1)
	if got, want := render(t, f), "a<b>c</b>1"; got != want {
		t.Fatalf("Render(Fragment) = %q, want %q", got, want)
	}
}
