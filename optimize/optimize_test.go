package optimize_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/titpetric/cssc/cssparser"
	"github.com/titpetric/cssc/event"
	"github.com/titpetric/cssc/optimize"
	"github.com/titpetric/cssc/subst"
)

func pipeline(t *testing.T, src string) []event.Event {
	t.Helper()
	events, err := cssparser.Parse(src)
	require.NoError(t, err)
	resolved, err := subst.Substitute(events)
	require.NoError(t, err)
	optimized, err := optimize.Optimize(resolved)
	require.NoError(t, err)
	return optimized
}

func TestOptimizeFlattensAncestorOnlyChain(t *testing.T) {
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
	out := pipeline(t, src)
	require.Len(t, out, 1)

	imgRule := out[0].(event.Rule)
	require.Equal(t, []string{"div span img"}, imgRule.Selectors)
	require.Len(t, imgRule.Children, 2)

	color := imgRule.Children[0].(event.Property)
	require.Equal(t, "color", color.Name)

	// img has its own direct property, so it stops collapsing: strong stays
	// nested inside it rather than being flattened into a sibling rule.
	strongRule := imgRule.Children[1].(event.Rule)
	require.Equal(t, []string{"strong"}, strongRule.Selectors)
	fontWeight := strongRule.Children[0].(event.Property)
	require.Equal(t, "font-weight", fontWeight.Name)
}

func TestOptimizeAmpersandSubstitution(t *testing.T) {
	src := `
.btn {
  &:hover {
    color: red;
  }
}
`
	out := pipeline(t, src)
	require.Len(t, out, 1)
	rule := out[0].(event.Rule)
	require.Equal(t, []string{".btn:hover"}, rule.Selectors)
}

func TestDistributeCrossProduct(t *testing.T) {
	got := optimize.Distribute([]string{"a", "b"}, []string{"c", "d"})
	require.Equal(t, []string{"a c", "a d", "b c", "b d"}, got)
}

func TestDistributeNoAncestors(t *testing.T) {
	got := optimize.Distribute(nil, []string{"c", "d"})
	require.Equal(t, []string{"c", "d"}, got)
}

func TestOptimizeHoistsCommentOutOfCollapsedRule(t *testing.T) {
	out := pipeline(t, "div { /* note */ span { x: 1; } }")
	require.Len(t, out, 2)

	comment, ok := out[0].(event.Comment)
	require.True(t, ok)
	require.Equal(t, "/* note */", string(comment))

	rule := out[1].(event.Rule)
	require.Equal(t, []string{"div span"}, rule.Selectors)
}

func TestOptimizeAmpersandSubstitutionStructurallyMatches(t *testing.T) {
	out := pipeline(t, ".btn { &:hover { color: red; } }")
	want := []event.Event{
		event.Rule{
			Selectors: []string{".btn:hover"},
			Children: []event.Event{
				event.Property{Name: "color", Value: event.StringValue("red")},
			},
		},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("optimized tree mismatch (-want +got):\n%s", diff)
	}
}
