package htmltree

import "fmt"

// Case is a single arm of a Select dispatch: an eager value or a lazy
// producer, optionally marked as the fallback arm.
type Case[K comparable, V any] struct {
	key      K
	value    V
	produce  func() V
	fallback bool
}

// Of builds an eager case for key.
func Of[K comparable, V any](key K, value V) Case[K, V] {
	return Case[K, V]{key: key, value: value}
}

// Lazy builds a case whose value is produced only if the case is selected.
func Lazy[K comparable, V any](key K, produce func() V) Case[K, V] {
	return Case[K, V]{key: key, produce: produce}
}

// Fallback builds the mandatory default arm.
func Fallback[K comparable, V any](value V) Case[K, V] {
	return Case[K, V]{value: value, fallback: true}
}

// FallbackLazy builds a default arm evaluated only when selected.
func FallbackLazy[K comparable, V any](produce func() V) Case[K, V] {
	return Case[K, V]{produce: produce, fallback: true}
}

// Select returns the value of the first case matching key, or the fallback
// value when no case matches. Lazy arms are evaluated only on selection, so
// branches that are expensive or unsafe to compute stay untouched unless
// chosen. A fallback arm is mandatory: a Select wired without one is a
// configuration defect and panics.
func Select[K comparable, V any](key K, cases ...Case[K, V]) V {
	def := -1
	for i, c := range cases {
		if c.fallback {
			def = i
			break
		}
	}
	if def < 0 {
		panic(fmt.Sprintf("htmltree: Select(%v) wired without a fallback case", key))
	}
	for _, c := range cases {
		if !c.fallback && c.key == key {
			return c.eval()
		}
	}
	return cases[def].eval()
}

func (c Case[K, V]) eval() V {
	if c.produce != nil {
		return c.produce()
	}
	return c.value
}
