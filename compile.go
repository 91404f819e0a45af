// Package cssc implements Component G, the pipeline driver: it wires the
// tokenizer/parser, substituter and optimizer together and streams the
// result in one of the supported output styles.
package cssc

import (
	"io"

	"github.com/titpetric/cssc/cssparser"
	"github.com/titpetric/cssc/errs"
	"github.com/titpetric/cssc/optimize"
	"github.com/titpetric/cssc/stream"
	"github.com/titpetric/cssc/subst"
)

// Style selects one of the five substituted-and-optimized output renderings,
// or one of the two pre-substitution debug dump modes.
type Style string

const (
	Nested     Style = "nested"
	Expanded   Style = "expanded"
	Compact    Style = "compact"
	Compressed Style = "compressed"
	Debug      Style = "debug"
	Tokens     Style = "tokens"
	AST        Style = "ast"
)

// Compile parses source, resolves variables and mixins, flattens
// ancestor-only nested rules, and writes the result to w in style.
//
// The tokens and ast styles short-circuit before substitution runs: they
// dump the raw parsed event stream for diagnostic use and never touch
// variable or mixin resolution.
func Compile(source string, style Style, w io.Writer) error {
	events, err := cssparser.Parse(source)
	if err != nil {
		return err
	}

	switch style {
	case Tokens:
		_, err := io.WriteString(w, dumpTokens(events))
		return err
	case AST:
		_, err := io.WriteString(w, stream.Dump(events))
		return err
	}

	resolved, err := subst.Substitute(events)
	if err != nil {
		return err
	}

	optimized, err := optimize.Optimize(resolved)
	if err != nil {
		return err
	}

	streamStyle, err := toStreamStyle(style)
	if err != nil {
		return err
	}
	return stream.Stream(optimized, streamStyle, w)
}

func toStreamStyle(s Style) (stream.Style, error) {
	switch s {
	case Nested:
		return stream.Nested, nil
	case Expanded:
		return stream.Expanded, nil
	case Compact:
		return stream.Compact, nil
	case Compressed:
		return stream.Compressed, nil
	case Debug:
		return stream.Debug, nil
	}
	return "", errs.New(errs.InvalidStyle, "unknown style %q", s)
}
