package cssc

import (
	"fmt"
	"strings"

	"github.com/titpetric/cssc/event"
)

// dumpTokens renders one line per top-level lexeme: its offset (-1 for
// rules and comments, which carry none), kind, and a short raw-text
// summary. Unlike Dump, it does not recurse into rule
// bodies; it reports exactly the events cssparser.Parse produced at depth 0.
func dumpTokens(events []event.Event) string {
	var buf strings.Builder
	for _, ev := range events {
		offset, kind, text := tokenInfo(ev)
		fmt.Fprintf(&buf, "%d\t%s\t%s\n", offset, kind, text)
	}
	return buf.String()
}

func tokenInfo(ev event.Event) (offset int, kind, text string) {
	switch e := ev.(type) {
	case event.Rule:
		return -1, "rule", strings.Join(e.Selectors, ", ")
	case event.UnevaluatedProperty:
		return e.Offset, "property", e.Name + ": " + e.ValueText
	case event.Variable:
		return e.Offset, "variable", e.Name + ": " + e.ValueText
	case event.Mixin:
		return e.Offset, "mixin", e.Name
	case event.MixinCall:
		return e.Offset, "mixin_call", e.Name
	case event.Comment:
		return -1, "comment", string(e)
	default:
		return -1, "unknown", fmt.Sprintf("%T", ev)
	}
}
