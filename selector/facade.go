package selector

import "fmt"

// Free functions below are the usual entry points: each starts a fresh
// Builder and delegates, so every fluent chain gets its own instance.

// Element starts a selector with an element part.
func Element(value string) *Builder {
	return New().Element(value)
}

// ID starts a selector with an id part.
func ID(value string) *Builder {
	return New().ID(value)
}

// Class starts a selector with a class part.
func Class(value string) *Builder {
	return New().Class(value)
}

// Attr starts a selector with an attribute part.
func Attr(value string) *Builder {
	return New().Attr(value)
}

// PseudoClass starts a selector with a pseudo-class part.
func PseudoClass(value string) *Builder {
	return New().PseudoClass(value)
}

// PseudoElement starts a selector with a pseudo-element part.
func PseudoElement(value string) *Builder {
	return New().PseudoElement(value)
}

// Combine joins two rendered selectors with a combinator on a fresh Builder.
func Combine(left fmt.Stringer, combinator string, right fmt.Stringer) *Builder {
	return New().Combine(left, combinator, right)
}
