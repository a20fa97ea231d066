package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"cssb/css"
)

func TestStylesheet_Dump(t *testing.T) {
	input := `@import url("base.css");
div#main > p.note { color: red; margin: 0 }
@media print { body { font-size: 10pt } }
`
	sheet := css.NewParser(zap.NewNop()).Parse([]byte(input))

	dump := sheet.Dump()
	for _, want := range []string{
		"Stylesheet: 3 items",
		"@import",
		`url: "base.css"`,
		`selector: "div#main > p.note"`,
		`element "div"`,
		`id "main"`,
		`combinator: ">"`,
		`class "note"`,
		`color: "red"`,
		"@media",
		`query: "print"`,
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q:\n%s", want, dump)
		}
	}
}

func TestStylesheet_DumpNil(t *testing.T) {
	var sheet *css.Stylesheet
	if got := sheet.Dump(); got != "<nil Stylesheet>" {
		t.Errorf("Dump() on nil = %q", got)
	}
}
