package css

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"cssb/utils/debug"
)

// Dump returns a readable tree of the parsed stylesheet: selectors broken
// down into their typed parts, properties and warnings. It exists solely for
// manual inspection during debugging.
func (s *Stylesheet) Dump() string {
	if s == nil {
		return "<nil Stylesheet>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Stylesheet: %d items", len(s.Items))

	for i, item := range s.Items {
		switch {
		case item.Import != nil:
			tw.Line(1, "Item[%d] @import", i)
			tw.Field(2, "url", *item.Import)
		case item.Rule != nil:
			tw.Line(1, "Item[%d] rule", i)
			dumpRule(tw, item.Rule, 2)
		case item.MediaBlock != nil:
			tw.Line(1, "Item[%d] @media", i)
			tw.Field(2, "query", item.MediaBlock.Query)
			for j := range item.MediaBlock.Rules {
				tw.Line(2, "Rule[%d]", j)
				dumpRule(tw, &item.MediaBlock.Rules[j], 3)
			}
		}
	}

	if len(s.Warnings) > 0 {
		tw.Line(0, "Warnings: %d", len(s.Warnings))
		for _, w := range s.Warnings {
			tw.Field(1, "warning", w)
		}
	}
	return tw.String()
}

func dumpRule(tw *debug.TreeWriter, rule *Rule, depth int) {

	tw.Field(depth, "selector", rule.Selector.Raw)
	for i, c := range rule.Selector.Compounds {
		if i > 0 {
			tw.Field(depth+1, "combinator", rule.Selector.Combinators[i-1])
		}
		for _, p := range c.Parts {
			tw.Line(depth+1, "%s %q", p.Kind, p.Value)
		}
	}

	keys := slices.Collect(maps.Keys(rule.Properties))
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		tw.Field(depth+1, k, rule.Properties[k].Raw)
	}
}
