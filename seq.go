package htmltree

import "io"

// mapView projects a data sequence through a caller-supplied function at
// render time.
type mapView[T any] struct {
	items   []T
	project func(T) any
}

// Map returns a view that renders items by passing each one through project
// and drawing the result, in sequence order with no separator. The
// projector runs lazily, once per element per render: nothing is memoized,
// filtered or deduplicated, so the output count always matches the input
// count and a re-render re-invokes the projector. Projectors must be pure;
// an element to be skipped should project to an empty string.
func Map[T any](items []T, project func(T) any) View {
	return &mapView[T]{items: items, project: project}
}

// Render implements View.
func (m *mapView[T]) Render(w io.Writer) error {
	for _, item := range m.items {
		if err := RenderTo(w, m.project(item)); err != nil {
			return err
		}
	}
	return nil
}
