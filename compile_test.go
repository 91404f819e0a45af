package cssc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/titpetric/cssc"
)

func compile(t *testing.T, src string, style cssc.Style) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, cssc.Compile(src, style, &buf))
	return buf.String()
}

func TestCompileSimpleProperty(t *testing.T) {
	got := compile(t, ".a { width: 15px; }", cssc.Nested)
	require.Equal(t, ".a {\n  width: 15px;\n}\n", got)
}

func TestCompileFlattensAncestorOnlyNesting(t *testing.T) {
	src := `
div {
  span {
    img {
      color: blue;
    }
  }
}
`
	got := compile(t, src, cssc.Nested)
	require.Equal(t, "div span img {\n  color: blue;\n}\n", got)
}

func TestCompileFlattensDownToFirstPropertyBearingLevel(t *testing.T) {
	src := `
div {
  span {
    img {
      color: blue;
      strong {
        font-weight: bold;
      }
    }
  }
}
`
	got := compile(t, src, cssc.Nested)
	require.Equal(t, "div span img {\n  color: blue;\n  strong {\n    font-weight: bold;\n  }\n}\n", got)
}

func TestCompileAmpersandSubstitution(t *testing.T) {
	got := compile(t, ".btn { &:hover { color: red; } }", cssc.Nested)
	require.Equal(t, ".btn:hover {\n  color: red;\n}\n", got)
}

func TestCompileColorArithmetic(t *testing.T) {
	got := compile(t, ".a { color: #010203 + #040506; }", cssc.Nested)
	require.Equal(t, ".a {\n  color: #050709;\n}\n", got)
}

func TestCompileMixinArgumentBinding(t *testing.T) {
	src := `
@mixin border($width, $style: solid, $color: black) {
  border-width: $width;
  border-style: $style;
  border-color: $color;
}
.box {
  @include border(1px, $color: red);
}
`
	got := compile(t, src, cssc.Expanded)
	require.Equal(t, ".box {\nborder-width: 1px;\nborder-style: solid;\nborder-color: red;\n}\n", got)
}

func TestCompileCompressedStyle(t *testing.T) {
	got := compile(t, ".a > .b, .a + .c { x: 1; }", cssc.Compressed)
	require.Equal(t, ".a>.b,.a+.c{x:1}", got)
}

func TestCompileInvalidStyleErrors(t *testing.T) {
	var buf strings.Builder
	err := cssc.Compile(".a { x: 1; }", cssc.Style("loud"), &buf)
	require.Error(t, err)
}

func TestCompileTokensModeBypassesSubstitution(t *testing.T) {
	got := compile(t, "$undefined-ok: 1px;\n.a { width: $undefined-ok; }", cssc.Tokens)
	require.Contains(t, got, "variable")
	require.Contains(t, got, "rule")
}

func TestCompileASTModeDumpsPreSubstitutionTree(t *testing.T) {
	got := compile(t, ".a { width: 1px; }", cssc.AST)
	require.Contains(t, got, "UnevaluatedProperty width: 1px")
}

func TestCompileDebugStyle(t *testing.T) {
	got := compile(t, ".a { width: 1px; }", cssc.Debug)
	require.Contains(t, got, "Rule [.a]")
	require.Contains(t, got, "Property width: 1px")
}
