// Package stream implements Component F: formatting of the optimized event
// tree into one of five output styles.
package stream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/titpetric/cssc/errs"
	"github.com/titpetric/cssc/event"
	"github.com/titpetric/cssc/internal/strings"
)

// Style names one of the five output styles.
type Style string

const (
	Nested     Style = "nested"
	Expanded   Style = "expanded"
	Compact    Style = "compact"
	Compressed Style = "compressed"
	Debug      Style = "debug"
)

// params holds the named format parameters for a single output style.
type params struct {
	selectorSeparator      string
	selectorBraceSeparator string
	bracePropertySeparator string
	beforeProperty         func(nesting int) string
	afterProperty          string
	propertyBraceSeparator string
	ruleSeparator          string
	compressSelectors      bool
	oneLinePerRule         bool
	dropComments           bool
	compact                bool // joins multi-line comments onto one line
}

func paramsFor(style Style) (params, error) {
	switch style {
	case Nested:
		return params{
			selectorSeparator:      ", ",
			selectorBraceSeparator: " ",
			bracePropertySeparator: "\n",
			beforeProperty:         func(n int) string { return strings.Repeat("  ", n) },
			afterProperty:          "\n",
			propertyBraceSeparator: "\n",
			ruleSeparator:          "\n",
		}, nil
	case Expanded:
		return params{
			selectorSeparator:      ", ",
			selectorBraceSeparator: " ",
			bracePropertySeparator: "\n",
			beforeProperty:         func(n int) string { return "" },
			afterProperty:          "\n",
			propertyBraceSeparator: "\n",
			ruleSeparator:          "\n",
		}, nil
	case Compact:
		return params{
			selectorSeparator:      ", ",
			selectorBraceSeparator: " ",
			bracePropertySeparator: " ",
			beforeProperty:         func(n int) string { return "" },
			afterProperty:          " ",
			propertyBraceSeparator: " ",
			ruleSeparator:          "\n",
			oneLinePerRule:         true,
			compact:                true,
		}, nil
	case Compressed:
		return params{
			selectorSeparator:      ",",
			selectorBraceSeparator: "",
			bracePropertySeparator: "",
			beforeProperty:         func(n int) string { return "" },
			afterProperty:          "",
			propertyBraceSeparator: "",
			ruleSeparator:          "",
			compressSelectors:      true,
			dropComments:           true,
		}, nil
	}
	return params{}, errs.New(errs.InvalidStyle, "unknown style %q", style)
}

// Stream renders events (the substituted, optimized top-level event stream)
// into w according to style.
func Stream(events []event.Event, style Style, w io.Writer) error {
	if style == Debug {
		_, err := io.WriteString(w, Dump(events))
		return err
	}
	p, err := paramsFor(style)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	for i, ev := range events {
		if i > 0 {
			buf.WriteString(p.ruleSeparator)
		}
		if err := writeTopLevel(&buf, ev, p); err != nil {
			return err
		}
	}
	if buf.Len() > 0 && !p.compressSelectors {
		buf.WriteString("\n")
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func writeTopLevel(buf *bytes.Buffer, ev event.Event, p params) error {
	switch e := ev.(type) {
	case event.Rule:
		return writeRule(buf, e, 0, p)
	case event.Comment:
		if !p.dropComments {
			buf.WriteString(renderComment(e, p))
		}
		return nil
	default:
		return errs.New(errs.UnexpectedTopLevelElement, "unexpected event %T at top level", ev)
	}
}

func writeRule(buf *bytes.Buffer, rule event.Rule, nesting int, p params) error {
	buf.WriteString(joinSelectors(rule.Selectors, p))
	buf.WriteString(p.selectorBraceSeparator)
	buf.WriteString("{")

	var leading []event.Event // properties and comments
	var children []event.Rule
	for _, c := range rule.Children {
		switch v := c.(type) {
		case event.Rule:
			children = append(children, v)
		case event.Comment:
			if !p.dropComments {
				leading = append(leading, v)
			}
		default:
			leading = append(leading, v)
		}
	}

	wroteAny := false
	for i, item := range leading {
		if i == 0 {
			buf.WriteString(p.bracePropertySeparator)
		} else {
			buf.WriteString(p.afterProperty)
		}
		buf.WriteString(p.beforeProperty(nesting + 1))
		isLast := i == len(leading)-1 && len(children) == 0
		if err := writeLeaf(buf, item, p, isLast); err != nil {
			return err
		}
		wroteAny = true
	}

	for i, child := range children {
		if !wroteAny {
			buf.WriteString(p.bracePropertySeparator)
		} else {
			buf.WriteString(p.afterProperty)
		}
		buf.WriteString(p.beforeProperty(nesting + 1))
		if err := writeRule(buf, child, nesting+1, p); err != nil {
			return err
		}
		wroteAny = true
		_ = i
	}

	if wroteAny {
		buf.WriteString(p.propertyBraceSeparator)
		buf.WriteString(p.beforeProperty(nesting))
	}
	buf.WriteString("}")
	return nil
}

func writeLeaf(buf *bytes.Buffer, ev event.Event, p params, isLast bool) error {
	switch e := ev.(type) {
	case event.Property:
		text := e.Name
		if p.compressSelectors { // compressed style also compacts property punctuation
			text += ":" + e.Value.String()
		} else {
			text += ": " + e.Value.String()
		}
		buf.WriteString(text)
		if !(p.compressSelectors && isLast) {
			buf.WriteString(";")
		}
		return nil
	case event.Comment:
		buf.WriteString(renderComment(e, p))
		return nil
	default:
		return errs.New(errs.UnexpectedTopLevelElement, "unexpected event %T in rule body", ev)
	}
}

func joinSelectors(selectors []string, p params) string {
	out := make([]string, len(selectors))
	for i, s := range selectors {
		if p.compressSelectors {
			s = strings.ReplaceAll(s, " > ", ">")
			s = strings.ReplaceAll(s, " + ", "+")
		}
		out[i] = s
	}
	return strings.Join(out, p.selectorSeparator)
}

func renderComment(c event.Comment, p params) string {
	text := string(c)
	if p.compact {
		lines := strings.Split(text, "\n")
		for i := range lines {
			lines[i] = strings.TrimSpace(lines[i])
		}
		return strings.Join(lines, " ")
	}
	return text
}

// Dump renders a diagnostic textual form of the event tree; it is not CSS.
func Dump(events []event.Event) string {
	var buf bytes.Buffer
	for _, ev := range events {
		dumpEvent(&buf, ev, 0)
	}
	return buf.String()
}

func dumpEvent(buf *bytes.Buffer, ev event.Event, nesting int) {
	indent := strings.Repeat("  ", nesting)
	switch e := ev.(type) {
	case event.Rule:
		fmt.Fprintf(buf, "%sRule %v\n", indent, e.Selectors)
		for _, c := range e.Children {
			dumpEvent(buf, c, nesting+1)
		}
	case event.Property:
		fmt.Fprintf(buf, "%sProperty %s: %s\n", indent, e.Name, e.Value.String())
	case event.UnevaluatedProperty:
		fmt.Fprintf(buf, "%sUnevaluatedProperty %s: %s\n", indent, e.Name, e.ValueText)
	case event.Variable:
		fmt.Fprintf(buf, "%sVariable %s: %s\n", indent, e.Name, e.ValueText)
	case event.Mixin:
		fmt.Fprintf(buf, "%sMixin %s\n", indent, e.Name)
	case event.MixinCall:
		fmt.Fprintf(buf, "%sMixinCall %s\n", indent, e.Name)
	case event.Comment:
		fmt.Fprintf(buf, "%sComment %s\n", indent, string(e))
	default:
		fmt.Fprintf(buf, "%s%T\n", indent, ev)
	}
}
