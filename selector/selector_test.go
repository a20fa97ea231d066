package selector_test

import (
	"errors"
	"testing"

	"cssb/selector"
)

func TestBuilder_FullChain(t *testing.T) {
	got, err := selector.New().
		Element("a").
		ID("main").
		Class("x").
		Attr("href").
		Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	if want := "a#main.x[href]"; got != want {
		t.Errorf("Result() = %q, want %q", got, want)
	}
}

func TestBuilder_Prefixes(t *testing.T) {
	tests := []struct {
		name  string
		build func() *selector.Builder
		want  string
	}{
		{"element", func() *selector.Builder { return selector.Element("div") }, "div"},
		{"id", func() *selector.Builder { return selector.ID("nav") }, "#nav"},
		{"class", func() *selector.Builder { return selector.Class("draggable") }, ".draggable"},
		{"attr", func() *selector.Builder { return selector.Attr(`type="text"`) }, `[type="text"]`},
		{"pseudo-class", func() *selector.Builder { return selector.PseudoClass("hover") }, ":hover"},
		{"pseudo-element", func() *selector.Builder { return selector.PseudoElement("after") }, "::after"},
		{
			"everything",
			func() *selector.Builder {
				return selector.Element("li").ID("main").Class("a").Class("b").
					Attr("href").PseudoClass("hover").PseudoClass("focus").PseudoElement("before")
			},
			"li#main.a.b[href]:hover:focus::before",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.build()
			if err := b.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := b.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuilder_RepeatedClassesAlwaysLegal(t *testing.T) {
	b := selector.Class("a").Class("b").Class("c")
	if err := b.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := b.String(), ".a.b.c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilder_OrderViolations(t *testing.T) {
	tests := []struct {
		name  string
		build func() *selector.Builder
	}{
		{"element after class", func() *selector.Builder { return selector.Class("x").Element("div") }},
		{"element after id", func() *selector.Builder { return selector.ID("x").Element("div") }},
		{"id after class", func() *selector.Builder { return selector.Class("x").ID("main") }},
		{"class after attribute", func() *selector.Builder { return selector.Attr("href").Class("x") }},
		{"attribute after pseudo-class", func() *selector.Builder { return selector.PseudoClass("hover").Attr("href") }},
		{"pseudo-class after pseudo-element", func() *selector.Builder { return selector.PseudoElement("after").PseudoClass("hover") }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.build().Err(); !errors.Is(err, selector.ErrPartOrder) {
				t.Errorf("Err() = %v, want ErrPartOrder", err)
			}
		})
	}
}

func TestBuilder_CountViolations(t *testing.T) {
	tests := []struct {
		name  string
		build func() *selector.Builder
	}{
		{"id twice", func() *selector.Builder { return selector.ID("a").ID("b") }},
		{"element twice", func() *selector.Builder { return selector.Element("div").Element("span") }},
		{"pseudo-element twice", func() *selector.Builder { return selector.PseudoElement("before").PseudoElement("after") }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.build().Err(); !errors.Is(err, selector.ErrPartCount) {
				t.Errorf("Err() = %v, want ErrPartCount", err)
			}
		})
	}
}

func TestBuilder_RepeatableKinds(t *testing.T) {
	b := selector.Attr("href").Attr("target").PseudoClass("hover").PseudoClass("focus")
	if err := b.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := b.String(), "[href][target]:hover:focus"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilder_FailedCallLeavesStateIntact(t *testing.T) {
	b := selector.Element("div").Class("x")
	before := b.String()

	b.Element("span") // order violation
	if err := b.Err(); !errors.Is(err, selector.ErrPartOrder) {
		t.Fatalf("Err() = %v, want ErrPartOrder", err)
	}
	if got := b.String(); got != before {
		t.Errorf("text changed after failed call: %q -> %q", before, got)
	}

	// further calls are no-ops and keep the first error
	b.Class("y").ID("main")
	if got := b.String(); got != before {
		t.Errorf("text changed after calls past the error: %q -> %q", before, got)
	}
	if err := b.Err(); !errors.Is(err, selector.ErrPartOrder) {
		t.Errorf("first error not preserved, got %v", err)
	}
}

func TestBuilder_ResultReportsError(t *testing.T) {
	if _, err := selector.ID("a").ID("b").Result(); !errors.Is(err, selector.ErrPartCount) {
		t.Errorf("Result() error = %v, want ErrPartCount", err)
	}
}

func TestBuilder_StringIdempotent(t *testing.T) {
	b := selector.Element("div").ID("main").Class("x")
	first := b.String()
	second := b.String()
	if first != second {
		t.Errorf("String() not idempotent: %q vs %q", first, second)
	}
}

func TestCombine(t *testing.T) {
	got := selector.Combine(selector.Element("div").ID("main"), "+", selector.Element("span")).String()
	if want := "div#main + span"; got != want {
		t.Errorf("Combine() = %q, want %q", got, want)
	}
}

func TestCombine_Nested(t *testing.T) {
	inner := selector.Combine(selector.Element("ul"), ">", selector.Element("li"))
	got := selector.Combine(inner, "~", selector.Class("note")).String()
	if want := "ul > li ~ .note"; got != want {
		t.Errorf("nested Combine() = %q, want %q", got, want)
	}
}

func TestCombine_CombinatorPassThrough(t *testing.T) {
	// any token is accepted, including ones CSS does not define
	got := selector.Combine(selector.Element("a"), "??", selector.Element("b")).String()
	if want := "a ?? b"; got != want {
		t.Errorf("Combine() = %q, want %q", got, want)
	}
}

func TestCombine_ReplacesAccumulatedState(t *testing.T) {
	b := selector.Element("div").Class("x")
	b.Combine(selector.Element("p"), ">", selector.Element("em"))
	if got, want := b.String(), "p > em"; got != want {
		t.Errorf("Combine() on used builder = %q, want %q", got, want)
	}
}

func TestCombine_OperandErrorCarriesOver(t *testing.T) {
	bad := selector.Class("x").Element("div") // order violation
	b := selector.Combine(bad, "+", selector.Element("span"))
	if err := b.Err(); !errors.Is(err, selector.ErrPartOrder) {
		t.Errorf("Err() = %v, want operand's ErrPartOrder", err)
	}
}

func TestFacade_FreshBuilderPerCall(t *testing.T) {
	a := selector.Class("a")
	b := selector.Class("b")
	if a == b {
		t.Fatal("facade returned the same builder twice")
	}
	if a.String() == b.String() {
		t.Errorf("independent chains rendered the same text %q", a.String())
	}
}
