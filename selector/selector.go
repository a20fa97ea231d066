// Package selector builds CSS selector strings from typed parts, enforcing
// the part order and cardinality rules CSS imposes on a compound selector.
package selector

import (
	"fmt"
)

// Kind identifies a selector part category. Declaration order fixes the rank
// used for ordering checks: parts may only be appended in non-decreasing rank.
type Kind int

const (
	KindElement Kind = iota + 1
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// onceOnly reports whether a selector may carry at most one part of this kind.
func (k Kind) onceOnly() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// render returns the part with its kind-specific prefix attached.
func (k Kind) render(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// Builder accumulates selector text part by part. A Builder is cheap, belongs
// to a single fluent chain and must not be shared between goroutines; the
// zero value is ready to use.
//
// Part methods validate before mutating: on a rule violation the builder
// records the error, keeps its prior state and turns every further part call
// into a no-op, so the first violation is what Err and Result report.
type Builder struct {
	text string
	used [KindPseudoElement + 1]bool
	last Kind
	err  error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) append(k Kind, value string) *Builder {
	if b.err != nil {
		return b
	}
	if k < b.last {
		b.err = fmt.Errorf("%s after %s: %w", k, b.last, ErrPartOrder)
		return b
	}
	if k.onceOnly() && b.used[k] {
		b.err = fmt.Errorf("second %s: %w", k, ErrPartCount)
		return b
	}
	b.text += k.render(value)
	if k.onceOnly() {
		b.used[k] = true
	}
	b.last = k
	return b
}

// Element appends an element (tag) part. At most one per selector.
func (b *Builder) Element(value string) *Builder {
	return b.append(KindElement, value)
}

// ID appends an id part rendered as "#value". At most one per selector.
func (b *Builder) ID(value string) *Builder {
	return b.append(KindID, value)
}

// Class appends a class part rendered as ".value". Classes repeat freely.
func (b *Builder) Class(value string) *Builder {
	return b.append(KindClass, value)
}

// Attr appends an attribute part rendered as "[value]". The value is taken
// as-is, including any match operator (e.g. `href^="#"`).
func (b *Builder) Attr(value string) *Builder {
	return b.append(KindAttribute, value)
}

// PseudoClass appends a pseudo-class part rendered as ":value".
func (b *Builder) PseudoClass(value string) *Builder {
	return b.append(KindPseudoClass, value)
}

// PseudoElement appends a pseudo-element part rendered as "::value". At most
// one per selector.
func (b *Builder) PseudoElement(value string) *Builder {
	return b.append(KindPseudoElement, value)
}

// Combine replaces everything accumulated so far with
//
//	left.String() + " " + combinator + " " + right.String()
//
// The combinator is passed through untouched, operands contribute only their
// rendered text and are not modified. Part-kind bookkeeping is reset, so a
// combined builder is not meant to take further part calls. An error already
// recorded on an operand Builder carries over to the receiver.
func (b *Builder) Combine(left fmt.Stringer, combinator string, right fmt.Stringer) *Builder {
	b.used = [KindPseudoElement + 1]bool{}
	b.last = 0
	b.err = nil
	for _, s := range []fmt.Stringer{left, right} {
		if o, ok := s.(interface{ Err() error }); ok && o.Err() != nil && b.err == nil {
			b.err = o.Err()
		}
	}
	b.text = left.String() + " " + combinator + " " + right.String()
	return b
}

// String returns the selector text accumulated so far. It never fails and
// may be called any number of times; parts appended after a violation are
// not part of the text.
func (b *Builder) String() string {
	return b.text
}

// Err returns the first rule violation recorded on this builder, if any.
func (b *Builder) Err() error {
	return b.err
}

// Result returns the rendered selector, or the first recorded violation.
func (b *Builder) Result() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.text, nil
}
