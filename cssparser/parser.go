// Package cssparser implements Component C: a single-pass, byte-oriented
// scanner that turns source text into a tree of events. Selectors,
// property values and mixin bodies are kept as slices of the original
// source string rather than copied.
package cssparser

import (
	"github.com/titpetric/cssc/errs"
	"github.com/titpetric/cssc/event"
	"github.com/titpetric/cssc/internal/strings"
)

type parser struct {
	src string
	pos int
}

// Parse scans src into a top-level event stream.
func Parse(src string) ([]event.Event, error) {
	p := &parser{src: src}
	var events []event.Event
	for {
		p.skipWhitespace()
		if p.atEOF() {
			break
		}
		ev, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// ParseBody re-parses a captured mixin body (a rule-body fragment, not a
// full top-level source) into its constituent events. Used by the
// substituter at each mixin call site.
func ParseBody(src string) ([]event.Event, error) {
	p := &parser{src: src}
	var events []event.Event
	for {
		p.skipWhitespace()
		if p.atEOF() {
			return events, nil
		}
		ev, err := p.parseBodyElement()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
}

func (p *parser) atEOF() bool { return p.pos >= len(p.src) }

func (p *parser) peekByte() byte {
	if p.atEOF() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipWhitespace() {
	for !p.atEOF() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// peekNonWSByte returns the next non-whitespace byte without consuming it.
func (p *parser) peekNonWSByte() (byte, bool) {
	i := p.pos
	for i < len(p.src) && isSpace(p.src[i]) {
		i++
	}
	if i >= len(p.src) {
		return 0, false
	}
	return p.src[i], true
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.src[p.pos:], s)
}

// parseTopLevel parses one of: variable, mixin, mixin_call, comment, rule.
func (p *parser) parseTopLevel() (event.Event, error) {
	switch {
	case p.peekByte() == '$':
		return p.parseVariable()
	case p.hasPrefix("@mixin"):
		return p.parseMixinDef()
	case p.hasPrefix("@include") || p.hasPrefix("@extend"):
		return p.parseMixinCall()
	case p.hasPrefix("/*"):
		return p.parseComment()
	default:
		return p.parseRule()
	}
}

// parseBodyElements parses the (property | variable | mixin_call | rule |
// comment)* body of a rule, stopping at the matching '}'.
func (p *parser) parseBodyElements() ([]event.Event, error) {
	var events []event.Event
	for {
		p.skipWhitespace()
		if p.atEOF() {
			return nil, errs.At(errs.UnexpectedEof, p.pos, "unterminated rule body")
		}
		if p.peekByte() == '}' {
			p.pos++
			return events, nil
		}
		ev, err := p.parseBodyElement()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
}

func (p *parser) parseBodyElement() (event.Event, error) {
	switch {
	case p.peekByte() == '$':
		return p.parseVariable()
	case p.hasPrefix("@mixin"):
		return p.parseMixinDef()
	case p.hasPrefix("@include") || p.hasPrefix("@extend"):
		return p.parseMixinCall()
	case p.hasPrefix("/*"):
		return p.parseComment()
	case isIdentStart(p.peekByte()):
		return p.parsePropertyOrRule()
	default:
		return p.parseRule()
	}
}

// parsePropertyOrRule implements the §4.C disambiguation: scan a name, peek
// the next non-whitespace byte. ':' means property, anything else (in
// practice '{' or a selector combinator) means the name was a selector and
// parsing rewinds to re-enter as a rule.
func (p *parser) parsePropertyOrRule() (event.Event, error) {
	saved := p.pos
	name := p.scanIdent()
	next, ok := p.peekNonWSByte()
	if ok && next == ':' {
		p.skipWhitespace()
		p.pos++ // ':'
		p.skipWhitespace()
		valueOffset := p.pos
		valueText, err := p.scanUntilTopLevelByte(';')
		if err != nil {
			return nil, err
		}
		p.pos++ // ';'
		return event.UnevaluatedProperty{Name: name, ValueText: valueText, Offset: valueOffset}, nil
	}
	p.pos = saved
	return p.parseRule()
}

func (p *parser) parseRule() (event.Event, error) {
	selectorStart := p.pos
	depth := 0
	for {
		if p.atEOF() {
			return nil, errs.At(errs.UnexpectedEof, selectorStart, "unterminated selector, expected {")
		}
		c := p.src[p.pos]
		if c == '(' {
			depth++
		} else if c == ')' {
			depth--
		} else if c == '{' && depth == 0 {
			break
		}
		p.pos++
	}
	selectorText := p.src[selectorStart:p.pos]
	p.pos++ // '{'

	selectors := splitTopLevelComma(selectorText)
	if len(selectors) == 0 {
		return nil, errs.At(errs.TokenizerError, selectorStart, "empty selector list")
	}

	children, err := p.parseBodyElements()
	if err != nil {
		return nil, err
	}
	return event.Rule{Selectors: selectors, Children: children}, nil
}

func (p *parser) parseVariable() (event.Event, error) {
	p.pos++ // '$'
	name := "$" + p.scanIdent()
	p.skipWhitespace()
	if p.peekByte() != ':' {
		return nil, errs.At(errs.TokenizerError, p.pos, "expected : after variable name")
	}
	p.pos++
	p.skipWhitespace()
	valueOffset := p.pos
	valueText, err := p.scanUntilTopLevelByte(';')
	if err != nil {
		return nil, err
	}
	p.pos++ // ';'
	return event.Variable{Name: name, ValueText: valueText, Offset: valueOffset}, nil
}

func (p *parser) parseMixinDef() (event.Event, error) {
	offset := p.pos
	p.pos += len("@mixin")
	p.skipWhitespace()
	name := p.scanMixinName()
	p.skipWhitespace()
	if p.peekByte() != '(' {
		return nil, errs.At(errs.TokenizerError, p.pos, "expected ( after mixin name")
	}
	p.pos++
	paramsText, err := p.scanUntilMatching('(', ')')
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.peekByte() != '{' {
		return nil, errs.At(errs.TokenizerError, p.pos, "expected { to open mixin body")
	}
	p.pos++
	bodyText, err := p.scanUntilMatching('{', '}')
	if err != nil {
		return nil, err
	}

	params := parseParameterList(paramsText)
	return event.Mixin{Name: name, Parameters: params, BodyText: bodyText, Offset: offset}, nil
}

func (p *parser) parseMixinCall() (event.Event, error) {
	offset := p.pos
	if p.hasPrefix("@include") {
		p.pos += len("@include")
	} else {
		p.pos += len("@extend")
	}
	p.skipWhitespace()
	name := p.scanMixinName()
	p.skipWhitespace()
	var argsText string
	if p.peekByte() == '(' {
		p.pos++
		var err error
		argsText, err = p.scanUntilMatching('(', ')')
		if err != nil {
			return nil, err
		}
	}
	p.skipWhitespace()
	if p.peekByte() != ';' {
		return nil, errs.At(errs.TokenizerError, p.pos, "expected ; after mixin call")
	}
	p.pos++

	args := parseArgumentList(argsText)
	return event.MixinCall{Name: name, Arguments: args, Offset: offset}, nil
}

func (p *parser) parseComment() (event.Event, error) {
	start := p.pos
	idx := strings.Index(p.src[p.pos:], "*/")
	if idx < 0 {
		return nil, errs.At(errs.UnexpectedEof, start, "unterminated comment")
	}
	end := p.pos + idx + 2
	text := p.src[start:end]
	p.pos = end
	return event.Comment(text), nil
}

// scanUntilTopLevelByte scans up to (not including) the next occurrence of
// stop that is not nested inside parentheses, and returns the scanned text
// with the cursor left positioned on stop.
func (p *parser) scanUntilTopLevelByte(stop byte) (string, error) {
	start := p.pos
	depth := 0
	for {
		if p.atEOF() {
			return "", errs.At(errs.UnexpectedEof, start, "expected %q", string(stop))
		}
		c := p.src[p.pos]
		if c == '(' {
			depth++
		} else if c == ')' {
			depth--
		} else if c == stop && depth == 0 {
			return p.src[start:p.pos], nil
		}
		p.pos++
	}
}

// scanUntilMatching scans content after an already-consumed opening byte,
// tracking nested occurrences of open/close, and returns the text up to
// (not including) the matching close, consuming the close byte.
func (p *parser) scanUntilMatching(open, close byte) (string, error) {
	start := p.pos
	depth := 1
	for {
		if p.atEOF() {
			return "", errs.At(errs.UnexpectedEof, start, "expected matching %q", string(close))
		}
		c := p.src[p.pos]
		if c == open {
			depth++
		} else if c == close {
			depth--
			if depth == 0 {
				text := p.src[start:p.pos]
				p.pos++
				return text, nil
			}
		}
		p.pos++
	}
}

func (p *parser) scanIdent() string {
	start := p.pos
	for !p.atEOF() && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// scanMixinName allows dotted/namespaced names in addition to plain idents.
func (p *parser) scanMixinName() string {
	start := p.pos
	for !p.atEOF() && (isIdentChar(p.src[p.pos]) || p.src[p.pos] == '.') {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// splitTopLevelComma splits on commas that are not nested inside
// parentheses, trimming each part.
func splitTopLevelComma(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	var out []string
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
