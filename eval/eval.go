// Package eval implements Component B: reduction of a lexed value-part
// sequence to a single value part under shunting-yard operator precedence,
// unit arithmetic, and color arithmetic.
package eval

import (
	"strconv"

	"github.com/titpetric/cssc/errs"
	"github.com/titpetric/cssc/event"
	"github.com/titpetric/cssc/valuelex"
)

// Scope resolves a variable name to its bound value part.
type Scope map[string]event.ValuePart

// Evaluate lexes and reduces a value string against scope, producing a
// single ValuePart (a ListValue when the source contains top-level commas
// or space-separated operands with no operator between them).
func Evaluate(valueText string, offset int, scope Scope) (event.ValuePart, error) {
	parts, err := valuelex.Lex(valueText, offset)
	if err != nil {
		return nil, err
	}
	parts, err = classify(parts, offset, scope)
	if err != nil {
		return nil, err
	}
	return evalCommaList(parts, offset)
}

// classify resolves variables and recognizes hex-color strings, leaving
// everything else untouched.
func classify(parts []event.ValuePart, offset int, scope Scope) ([]event.ValuePart, error) {
	out := make([]event.ValuePart, len(parts))
	for i, p := range parts {
		switch v := p.(type) {
		case event.VariableValue:
			if bound, ok := scope[string(v)]; ok {
				out[i] = bound
			} else {
				out[i] = event.StringValue(string(v))
			}
		case event.StringValue:
			if len(v) > 0 && v[0] == '#' {
				c, err := parseHexColor(string(v), offset)
				if err != nil {
					return nil, err
				}
				out[i] = c
			} else {
				out[i] = v
			}
		default:
			out[i] = p
		}
	}
	return out, nil
}

func parseHexColor(s string, offset int) (event.ColorValue, error) {
	if len(s) != 4 && len(s) != 7 {
		return event.ColorValue{}, errs.At(errs.InvalidColor, offset, "invalid hex color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		expanded := make([]byte, 0, 6)
		for _, c := range []byte(hex) {
			expanded = append(expanded, c, c)
		}
		hex = string(expanded)
	}
	r, err1 := strconv.ParseInt(hex[0:2], 16, 32)
	g, err2 := strconv.ParseInt(hex[2:4], 16, 32)
	b, err3 := strconv.ParseInt(hex[4:6], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return event.ColorValue{}, errs.At(errs.InvalidColor, offset, "invalid hex color %q", s)
	}
	return event.NewColorValue(int(r), int(g), int(b), s), nil
}

// evalCommaList splits on top-level commas, evaluating each segment and
// assembling a ListValue when more than one segment is present.
func evalCommaList(parts []event.ValuePart, offset int) (event.ValuePart, error) {
	segments := splitTopLevel(parts, event.OperatorValue(event.OpComma))
	if len(segments) == 1 {
		return evalSpaceList(segments[0], offset)
	}
	results := make([]event.ValuePart, 0, len(segments))
	for _, seg := range segments {
		v, err := evalSpaceList(seg, offset)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return event.ListValue{Parts: results, Separator: ", "}, nil
}

// evalSpaceList groups tokens into adjacency runs (operand, operand with no
// operator between, at paren depth 0) and evaluates each run, assembling a
// space-separated ListValue when more than one run is present.
func evalSpaceList(parts []event.ValuePart, offset int) (event.ValuePart, error) {
	runs := splitByAdjacency(parts)
	if len(runs) == 0 {
		return nil, errs.At(errs.ExpectedValue, offset, "expected a value")
	}
	if len(runs) == 1 {
		return reduceExpression(runs[0], offset)
	}
	results := make([]event.ValuePart, 0, len(runs))
	for _, run := range runs {
		v, err := reduceExpression(run, offset)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return event.ListValue{Parts: results, Separator: " "}, nil
}

func isOperand(p event.ValuePart) bool {
	switch p.(type) {
	case event.OperatorValue:
		return false
	default:
		return true
	}
}

func splitByAdjacency(parts []event.ValuePart) [][]event.ValuePart {
	var runs [][]event.ValuePart
	var current []event.ValuePart
	depth := 0
	prevWasOperand := false

	for _, p := range parts {
		op, isOp := p.(event.OperatorValue)
		isLParen := isOp && event.Op(op) == event.OpLParen
		isRParen := isOp && event.Op(op) == event.OpRParen
		operand := isOperand(p)

		if depth == 0 && operand && prevWasOperand && len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}

		current = append(current, p)

		if isLParen {
			depth++
		}
		if isRParen {
			depth--
		}
		prevWasOperand = operand || isRParen
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

func splitTopLevel(parts []event.ValuePart, sep event.ValuePart) [][]event.ValuePart {
	sepOp, isSep := sep.(event.OperatorValue)
	var segments [][]event.ValuePart
	var current []event.ValuePart
	depth := 0
	for _, p := range parts {
		if op, ok := p.(event.OperatorValue); ok {
			switch event.Op(op) {
			case event.OpLParen:
				depth++
			case event.OpRParen:
				depth--
			}
			if isSep && depth == 0 && op == sepOp {
				segments = append(segments, current)
				current = nil
				continue
			}
		}
		current = append(current, p)
	}
	segments = append(segments, current)
	return segments
}

var precedence = map[event.Op]int{
	event.OpMul: 2,
	event.OpDiv: 2,
	event.OpMod: 2,
	event.OpAdd: 1,
	event.OpSub: 1,
}

// reduceExpression runs shunting-yard over a single arithmetic run (no
// top-level commas or space breaks) and returns the reduced value.
func reduceExpression(tokens []event.ValuePart, offset int) (event.ValuePart, error) {
	var values []event.ValuePart
	var ops []event.Op

	apply := func() error {
		if len(ops) == 0 {
			return errs.At(errs.ExpectedOperator, offset, "expected an operator")
		}
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if len(values) < 2 {
			return errs.At(errs.ExpectedValue, offset, "expected a value before %s", op)
		}
		right := values[len(values)-1]
		left := values[len(values)-2]
		values = values[:len(values)-2]
		result, err := reduceBinary(left, op, right, offset)
		if err != nil {
			return err
		}
		values = append(values, result)
		return nil
	}

	for _, tok := range tokens {
		opv, isOp := tok.(event.OperatorValue)
		if !isOp {
			values = append(values, tok)
			continue
		}
		op := event.Op(opv)
		switch op {
		case event.OpLParen:
			ops = append(ops, op)
		case event.OpRParen:
			for len(ops) > 0 && ops[len(ops)-1] != event.OpLParen {
				if err := apply(); err != nil {
					return nil, err
				}
			}
			if len(ops) == 0 {
				return nil, errs.At(errs.UnexpectedEof, offset, "unmatched )")
			}
			ops = ops[:len(ops)-1] // discard "("
		default:
			for len(ops) > 0 && ops[len(ops)-1] != event.OpLParen && precedence[ops[len(ops)-1]] >= precedence[op] {
				if err := apply(); err != nil {
					return nil, err
				}
			}
			ops = append(ops, op)
		}
	}

	for len(ops) > 0 {
		if err := apply(); err != nil {
			return nil, err
		}
	}

	if len(values) != 1 {
		return nil, errs.At(errs.ExpectedValue, offset, "malformed expression")
	}
	return values[0], nil
}
