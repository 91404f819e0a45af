// Package event defines the data model shared by the parser, substituter,
// optimizer and streamer: the event stream that describes a stylesheet and
// the value parts that describe a property value.
package event

import "fmt"

// Op is a single arithmetic or grouping operator recognized by the value
// tokenizer and expression evaluator.
type Op string

const (
	OpAdd    Op = "+"
	OpSub    Op = "-"
	OpMul    Op = "*"
	OpDiv    Op = "/"
	OpMod    Op = "%"
	OpLParen Op = "("
	OpRParen Op = ")"
	OpComma  Op = ","
)

// ValuePart is one atom of a property value: a number, a color, a string, a
// variable reference, an operator, or a space-separated list of parts.
type ValuePart interface {
	valuePart()
	// String returns the CSS text this value part renders as.
	String() string
}

// NumberValue is a scalar with an optional unit.
type NumberValue struct {
	Scalar   float64
	Unit     string // empty when unitless
	Computed bool   // true when produced by arithmetic or bound to a variable, false when lexed literally
}

func (NumberValue) valuePart() {}

func (n NumberValue) String() string {
	return formatNumber(n.Scalar) + n.Unit
}

func formatNumber(f float64) string {
	s := fmt.Sprintf("%.6f", f)
	// trim trailing zeros, then a trailing decimal point
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

// ColorValue is an RGB color. Original preserves the source spelling so the
// streamer can emit whichever of #rrggbb / original is shorter.
type ColorValue struct {
	Red, Green, Blue int
	Original         string
}

func (ColorValue) valuePart() {}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// NewColorValue builds a ColorValue, clamping channels into [0,255].
func NewColorValue(r, g, b int, original string) ColorValue {
	return ColorValue{Red: clampChannel(r), Green: clampChannel(g), Blue: clampChannel(b), Original: original}
}

func (c ColorValue) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

func (c ColorValue) String() string {
	hex := c.hex()
	if c.Original != "" && len(c.Original) < len(hex) {
		return c.Original
	}
	return hex
}

// StringValue is a bare word, quoted string, or keyword.
type StringValue string

func (StringValue) valuePart()    {}
func (s StringValue) String() string { return string(s) }

// VariableValue is a variable reference as lexed. The evaluator replaces it
// with its bound value, or with a StringValue of its name when it is unbound.
type VariableValue string

func (VariableValue) valuePart()    {}
func (v VariableValue) String() string { return string(v) }

// OperatorValue is an operator or grouping token carried through as a value
// part before evaluation reduces it away.
type OperatorValue Op

func (OperatorValue) valuePart()    {}
func (o OperatorValue) String() string { return string(o) }

// ListValue is a space-separated (or evaluated comma) sequence of parts.
type ListValue struct {
	Parts     []ValuePart
	Separator string // ", " or " "
}

func (ListValue) valuePart() {}

func (l ListValue) String() string {
	out := ""
	for i, p := range l.Parts {
		if i > 0 {
			out += l.Separator
		}
		out += p.String()
	}
	return out
}

// MixinParameter is one formal parameter of a mixin definition.
type MixinParameter struct {
	Name    string
	Default ValuePart // nil when the parameter has no default
}

// MixinArgument is one actual argument at a mixin call site.
type MixinArgument struct {
	Name  string // empty for positional arguments
	Value ValuePart
}

// Event is one node of the parsed event stream: a rule, a raw or evaluated
// property, a variable or mixin definition, a mixin call, or a comment.
type Event interface {
	event()
}

// Rule is a selector list and a nested body of events.
type Rule struct {
	Selectors []string
	Children  []Event
}

func (Rule) event() {}

// UnevaluatedProperty is a property whose value has not yet been run through
// the expression evaluator.
type UnevaluatedProperty struct {
	Name      string
	ValueText string
	Offset    int
}

func (UnevaluatedProperty) event() {}

// Property is a property whose value has been evaluated.
type Property struct {
	Name  string
	Value ValuePart
}

func (Property) event() {}

// Variable is a top-level or nested variable binding.
type Variable struct {
	Name      string
	ValueText string
	Offset    int
}

func (Variable) event() {}

// Mixin is a mixin definition: a name, its formal parameters, and its body
// captured verbatim for re-parsing at each call site.
type Mixin struct {
	Name       string
	Parameters []MixinParameter
	BodyText   string
	Offset     int
}

func (Mixin) event() {}

// MixinCall invokes a previously defined mixin (or, per surface grammar, an
// @extend in property position).
type MixinCall struct {
	Name      string
	Arguments []MixinArgument
	Offset    int
}

func (MixinCall) event() {}

// Comment is a verbatim block comment body, delimiters included.
type Comment string

func (Comment) event() {}
