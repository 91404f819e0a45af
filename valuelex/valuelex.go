// Package valuelex implements Component A: a lexer that turns a property
// value string (or a mixin argument) into a flat sequence of value parts,
// leaving interpretation of operators, grouping and variables to the
// expression evaluator.
package valuelex

import (
	"strconv"
	"strings"

	"github.com/titpetric/cssc/errs"
	"github.com/titpetric/cssc/event"
)

const operatorChars = "+-*/%(),"

// Lex scans a value string into a sequence of value parts. offset is the
// byte offset of the start of s within the original source, used to tag
// errors with an absolute position.
func Lex(s string, offset int) ([]event.ValuePart, error) {
	var parts []event.ValuePart
	pos := 0
	n := len(s)

	for pos < n {
		c := s[pos]

		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			pos++
			continue
		}

		switch {
		case isDigit(c) || (c == '.' && pos+1 < n && isDigit(s[pos+1])):
			start := pos
			for pos < n && isDigit(s[pos]) {
				pos++
			}
			if pos < n && s[pos] == '.' {
				pos++
				for pos < n && isDigit(s[pos]) {
					pos++
				}
			}
			numText := s[start:pos]
			unitStart := pos
			for pos < n && isLetter(s[pos]) {
				pos++
			}
			if pos < n && s[pos] == '%' {
				pos++
			}
			unit := s[unitStart:pos]
			scalar, err := strconv.ParseFloat(numText, 64)
			if err != nil {
				return nil, errs.At(errs.TokenizerError, offset+start, "invalid number %q", numText)
			}
			parts = append(parts, event.NumberValue{Scalar: scalar, Unit: unit})

		case c == '$':
			start := pos
			pos++
			for pos < n && !isSpace(s[pos]) && !strings.ContainsRune(operatorChars, rune(s[pos])) {
				pos++
			}
			parts = append(parts, event.VariableValue(s[start:pos]))

		case strings.ContainsRune(operatorChars, rune(c)):
			parts = append(parts, event.OperatorValue(string(c)))
			pos++

		default:
			start := pos
			for pos < n && !isSpace(s[pos]) && !strings.ContainsRune(operatorChars, rune(s[pos])) {
				pos++
			}
			if pos == start {
				// operator-like byte we don't recognize as such; consume it
				// raw rather than loop forever.
				pos++
			}
			parts = append(parts, event.StringValue(s[start:pos]))
		}
	}

	return parts, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
