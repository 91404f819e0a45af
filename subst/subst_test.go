package subst_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/titpetric/cssc/cssparser"
	"github.com/titpetric/cssc/event"
	"github.com/titpetric/cssc/subst"
)

func compile(t *testing.T, src string) []event.Event {
	t.Helper()
	events, err := cssparser.Parse(src)
	require.NoError(t, err)
	resolved, err := subst.Substitute(events)
	require.NoError(t, err)
	return resolved
}

func TestSubstituteVariable(t *testing.T) {
	resolved := compile(t, "$size: 10px; .a { width: $size; }")
	require.Len(t, resolved, 1)
	rule := resolved[0].(event.Rule)
	prop := rule.Children[0].(event.Property)
	require.Equal(t, "width", prop.Name)
	require.Equal(t, "10px", prop.Value.String())
}

func TestSubstituteScopeDoesNotLeak(t *testing.T) {
	src := `
.a {
  $local: 1px;
  width: $local;
}
.b {
  width: $local;
}
`
	resolved := compile(t, src)
	require.Len(t, resolved, 2)

	a := resolved[0].(event.Rule)
	aWidth := a.Children[0].(event.Property)
	require.Equal(t, "1px", aWidth.Value.String())

	// $local was never bound in the outer scope, so it survives in .b as a
	// literal token rather than resolving to .a's binding.
	b := resolved[1].(event.Rule)
	bWidth := b.Children[0].(event.Property)
	require.Equal(t, "$local", bWidth.Value.String())
}

func TestSubstituteMixinNamedAndPositionalArguments(t *testing.T) {
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
	resolved := compile(t, src)
	rule := resolved[0].(event.Rule)
	require.Len(t, rule.Children, 3)

	width := rule.Children[0].(event.Property)
	require.Equal(t, "1px", width.Value.String())

	style := rule.Children[1].(event.Property)
	require.Equal(t, "solid", style.Value.String())

	color := rule.Children[2].(event.Property)
	require.Equal(t, "red", color.Value.String())
}

func TestSubstituteMissingMixinArgumentErrors(t *testing.T) {
	src := `
@mixin border($width) {
  border-width: $width;
}
.box {
  @include border();
}
`
	events, err := cssparser.Parse(src)
	require.NoError(t, err)
	_, err = subst.Substitute(events)
	require.Error(t, err)
}

func TestSubstituteUndefinedMixinErrors(t *testing.T) {
	events, err := cssparser.Parse(".box { @include missing(); }")
	require.NoError(t, err)
	_, err = subst.Substitute(events)
	require.Error(t, err)
}
