package css

import (
	"errors"
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"cssb/selector"
)

// Part is a single selector fragment tagged with its kind. Value carries no
// prefix: for "#main" the value is "main".
type Part struct {
	Kind  selector.Kind
	Value string
}

// Compound is a combinator-free run of parts, e.g. "a#main.x[href]".
type Compound struct {
	Parts []Part
}

// Build replays the compound through a fresh selector builder, which is the
// single authority on part ordering and cardinality. Check Err on the result.
func (c Compound) Build() *selector.Builder {
	b := selector.New()
	for _, p := range c.Parts {
		switch p.Kind {
		case selector.KindElement:
			b.Element(p.Value)
		case selector.KindID:
			b.ID(p.Value)
		case selector.KindClass:
			b.Class(p.Value)
		case selector.KindAttribute:
			b.Attr(p.Value)
		case selector.KindPseudoClass:
			b.PseudoClass(p.Value)
		case selector.KindPseudoElement:
			b.PseudoElement(p.Value)
		}
	}
	return b
}

// Selector is one parsed selector: compounds joined by combinators.
// Combinators has one entry per adjacent compound pair and holds ">", "+",
// "~" or " " for the descendant relation.
type Selector struct {
	Raw         string
	Compounds   []Compound
	Combinators []string
}

// rawText lets already-rendered selector text participate in Combine.
type rawText string

func (r rawText) String() string { return string(r) }

// Canonical renders the selector through the builder, surfacing any part
// ordering or cardinality violation.
func (s Selector) Canonical() (string, error) {
	if len(s.Compounds) == 0 {
		return "", fmt.Errorf("selector %q: no parts", s.Raw)
	}
	first := s.Compounds[0].Build()
	if err := first.Err(); err != nil {
		return "", fmt.Errorf("selector %q: %w", s.Raw, err)
	}
	out := first.String()
	for i, comb := range s.Combinators {
		next := s.Compounds[i+1].Build()
		if err := next.Err(); err != nil {
			return "", fmt.Errorf("selector %q: %w", s.Raw, err)
		}
		if comb == " " {
			out += " " + next.String()
		} else {
			out = selector.Combine(rawText(out), comb, next).String()
		}
	}
	return out, nil
}

// ParseSelector tokenizes a single selector string (no selector groups) into
// its compounds and combinators. Only part shapes are recognized here; order
// and cardinality are judged later by Canonical. Attribute and functional
// pseudo-class contents are carried verbatim.
func ParseSelector(s string) (Selector, error) {
	sel := Selector{Raw: strings.TrimSpace(s)}
	if sel.Raw == "" {
		return sel, errors.New("empty selector")
	}

	l := css.NewLexer(parse.NewInputString(sel.Raw))

	var (
		cur      Compound
		pending  string // explicit combinator waiting for its right side
		sawSpace bool
		colons   int
	)

	flush := func() error {
		if len(cur.Parts) == 0 {
			return fmt.Errorf("selector %q: combinator without left side", sel.Raw)
		}
		comb := pending
		if comb == "" {
			comb = " "
		}
		sel.Compounds = append(sel.Compounds, cur)
		sel.Combinators = append(sel.Combinators, comb)
		cur = Compound{}
		pending = ""
		return nil
	}

	appendPart := func(k selector.Kind, v string) error {
		if (sawSpace || pending != "") && len(cur.Parts) > 0 {
			if err := flush(); err != nil {
				return err
			}
		}
		sawSpace = false
		cur.Parts = append(cur.Parts, Part{Kind: k, Value: v})
		return nil
	}

	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		if colons > 0 && tt != css.IdentToken && tt != css.FunctionToken && tt != css.ColonToken {
			return sel, fmt.Errorf("selector %q: dangling ':'", sel.Raw)
		}

		switch tt {
		case css.WhitespaceToken:
			sawSpace = true

		case css.CommaToken:
			return sel, fmt.Errorf("selector %q: selector groups are not supported here", sel.Raw)

		case css.ColonToken:
			colons++
			if colons > 2 {
				return sel, fmt.Errorf("selector %q: too many colons", sel.Raw)
			}

		case css.IdentToken, css.FunctionToken:
			value := string(data)
			if tt == css.FunctionToken {
				// consume up to the matching ")" and keep the raw text
				inner, err := collectParens(l)
				if err != nil {
					return sel, fmt.Errorf("selector %q: %w", sel.Raw, err)
				}
				value += inner + ")"
			}
			switch colons {
			case 2:
				if err := appendPart(selector.KindPseudoElement, value); err != nil {
					return sel, err
				}
			case 1:
				if err := appendPart(selector.KindPseudoClass, value); err != nil {
					return sel, err
				}
			default:
				if tt == css.FunctionToken {
					return sel, fmt.Errorf("selector %q: unexpected function %q", sel.Raw, value)
				}
				if err := appendPart(selector.KindElement, value); err != nil {
					return sel, err
				}
			}
			colons = 0

		case css.HashToken:
			if err := appendPart(selector.KindID, strings.TrimPrefix(string(data), "#")); err != nil {
				return sel, err
			}

		case css.LeftBracketToken:
			value, err := collectUntil(l, css.RightBracketToken)
			if err != nil {
				return sel, fmt.Errorf("selector %q: %w", sel.Raw, err)
			}
			if err := appendPart(selector.KindAttribute, strings.TrimSpace(value)); err != nil {
				return sel, err
			}

		case css.DelimToken:
			switch d := string(data); d {
			case ".":
				ct, cdata := l.Next()
				if ct != css.IdentToken {
					return sel, fmt.Errorf("selector %q: '.' must be followed by a class name", sel.Raw)
				}
				if err := appendPart(selector.KindClass, string(cdata)); err != nil {
					return sel, err
				}
			case ">", "+", "~":
				if len(cur.Parts) == 0 {
					return sel, fmt.Errorf("selector %q: combinator %q without left side", sel.Raw, d)
				}
				pending = d
				sawSpace = false
			case "*":
				if err := appendPart(selector.KindElement, "*"); err != nil {
					return sel, err
				}
			default:
				return sel, fmt.Errorf("selector %q: unexpected %q", sel.Raw, d)
			}

		default:
			return sel, fmt.Errorf("selector %q: unexpected token %q", sel.Raw, string(data))
		}
	}
	if err := l.Err(); err != nil && err.Error() != "EOF" {
		return sel, fmt.Errorf("selector %q: %w", sel.Raw, err)
	}
	if colons > 0 {
		return sel, fmt.Errorf("selector %q: dangling ':'", sel.Raw)
	}
	if pending != "" {
		return sel, fmt.Errorf("selector %q: dangling combinator %q", sel.Raw, pending)
	}
	if len(cur.Parts) == 0 {
		if len(sel.Compounds) == 0 {
			return sel, errors.New("empty selector")
		}
		return sel, fmt.Errorf("selector %q: trailing combinator", sel.Raw)
	}
	sel.Compounds = append(sel.Compounds, cur)
	return sel, nil
}

// collectParens gathers raw token text until the parenthesis opened by a
// function token is closed. The closing ")" is consumed but not returned.
func collectParens(l *css.Lexer) (string, error) {
	var sb strings.Builder
	depth := 1
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return "", errors.New("unbalanced parenthesis")
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return sb.String(), nil
			}
		}
		sb.Write(data)
	}
}

// collectUntil gathers raw token text until the given closing token.
func collectUntil(l *css.Lexer, end css.TokenType) (string, error) {
	var sb strings.Builder
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return "", errors.New("unterminated attribute selector")
		case end:
			return sb.String(), nil
		}
		sb.Write(data)
	}
}
