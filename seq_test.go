package htmltree

import "testing"

func TestMapProjectsInOrder(t *testing.T) {
	v := Map([]int{1, 2, 3}, func(n int) any { return n * 2 })
	if got := render(t, v); got != "246" {
		t.Fatalf("Render(Map) = %q, want %q", got, "246")
	}
}

func TestMapProjectsToViews(t *testing.T) {
	v := Map([]string{"a", "b"}, func(s string) any {
		return NewElement("li", s, nil, nil)
	})
	if got, want := render(t, v), "<li>a</li><li>b</li>"; got != want {
		t.Fatalf("Render(Map) = %q, want %q", got, want)
	}
}

func TestMapRunsProjectorLazilyPerRender(t *testing.T) {
	calls := 0
	v := Map([]int{1, 2, 3}, func(n int) any {
		calls++
		return n
	})
	if calls != 0 {
		t.Fatalf("projector ran %d times before render, want 0", calls)
	}
	render(t, v)
	if calls != 3 {
		t.Fatalf("projector ran %d times after one render, want 3", calls)
	}
	render(t, v)
	if calls != 6 {
		t.Fatalf("projector ran %d times after two renders, want 6 (no memoization)", calls)
	}
}

func TestMapOutputCountMatchesInputCount(t *testing.T) {
	// Skipping an element means projecting to an empty string; the draw
	// still happens once per input.
	v := Map([]int{1, 2, 3, 4}, func(n int) any {
		if n%2 == 0 {
			return ""
		}
		return n
	})
	if got := render(t, v); got != "13" {
		t.Fatalf("Render(Map) = %q, want %q", got, "13")
	}
}

func TestMapEmptySequence(t *testing.T) {
	v := Map(nil, func(n int) any { return n })
	if got := render(t, v); got != "" {
		t.Fatalf("Render(Map(empty)) = %q, want empty", got)
	}
}
