package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/maruel/natural"
)

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func cssEscapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	// "0" has neither unit nor keyword - look at how Raw starts
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   Selector         // Parsed selector
	Properties map[string]Value // Property name -> value
}

// GetProperty returns the value for a property, or empty Value if not found.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// selectorText is what gets written out for the rule: the canonical form when
// the selector passes the part rules, its raw text otherwise.
func (r Rule) selectorText() string {
	if s, err := r.Selector.Canonical(); err == nil {
		return s
	}
	return r.Selector.Raw
}

// MediaBlock represents a @media block with its raw query and nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, or Import is non-nil.
type StylesheetItem struct {
	Rule       *Rule       // A plain rule (selector + properties)
	MediaBlock *MediaBlock // A @media block containing nested rules
	Import     *string     // An @import URL
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Selector rule violations and skipped constructs
}

// Imports returns all @import URLs from the stylesheet in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// RulesBySelector returns all top-level rules whose canonical (or raw, when
// not canonicalizable) selector text matches the given string.
func (s *Stylesheet) RulesBySelector(sel string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.selectorText() == sel {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// Selectors returns the unique selector texts used anywhere in the
// stylesheet, including inside @media blocks, in natural sort order.
func (s *Stylesheet) Selectors() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(r Rule) {
		t := r.selectorText()
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			add(*item.Rule)
		case item.MediaBlock != nil:
			for _, r := range item.MediaBlock.Rules {
				add(r)
			}
		}
	}
	sort.Sort(natural.StringSlice(out))
	return out
}

// WriteOpts controls stylesheet rendering.
type WriteOpts struct {
	Indent     string // indentation unit, two spaces when empty
	BlankLines bool   // blank line between top-level items
}

func (o WriteOpts) indent() string {
	if o.Indent == "" {
		return "  "
	}
	return o.Indent
}

// DefaultWriteOpts matches the historical fixed rendering.
var DefaultWriteOpts = WriteOpts{Indent: "  ", BlankLines: true}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	return s.Write(w, DefaultWriteOpts)
}

// Write renders the stylesheet with the given options. Selectors are written
// in canonical form where possible.
func (s *Stylesheet) Write(w io.Writer, opts WriteOpts) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", cssEscapeDoubleQuoted(*item.Import))
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock, opts)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, opts.indent(), "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		if opts.BlankLines && i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w, prefixing every line with lead.
func writeRule(w io.Writer, rule *Rule, indent, lead string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", lead, rule.selectorText())
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, rule.Properties, lead+indent)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprintf(w, "%s}\n", lead)
	total += n
	return total, err
}

// writeProperties writes property declarations sorted alphabetically.
func writeProperties(w io.Writer, props map[string]Value, lead string) (int, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		n, err := fmt.Fprintf(w, "%s%s: %s;\n", lead, name, props[name].Raw)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock, opts WriteOpts) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], opts.indent(), opts.indent())
		total += n
		if err != nil {
			return total, err
		}
		if opts.BlankLines && i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
