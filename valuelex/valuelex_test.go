package valuelex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/titpetric/cssc/event"
	"github.com/titpetric/cssc/valuelex"
)

func TestLexNumbers(t *testing.T) {
	parts, err := valuelex.Lex("10px", 0)
	require.NoError(t, err)
	require.Equal(t, []event.ValuePart{event.NumberValue{Scalar: 10, Unit: "px"}}, parts)
}

func TestLexArithmeticExpression(t *testing.T) {
	parts, err := valuelex.Lex("1px + 2px", 0)
	require.NoError(t, err)
	require.Equal(t, []event.ValuePart{
		event.NumberValue{Scalar: 1, Unit: "px"},
		event.OperatorValue("+"),
		event.NumberValue{Scalar: 2, Unit: "px"},
	}, parts)
}

func TestLexVariableReference(t *testing.T) {
	// '-' is an operator character, so it ends the variable name.
	parts, err := valuelex.Lex("$base-size", 0)
	require.NoError(t, err)
	require.Equal(t, []event.ValuePart{
		event.VariableValue("$base"),
		event.OperatorValue("-"),
		event.StringValue("size"),
	}, parts)
}

func TestLexHexColorAsString(t *testing.T) {
	parts, err := valuelex.Lex("#ff0000", 0)
	require.NoError(t, err)
	require.Equal(t, []event.ValuePart{event.StringValue("#ff0000")}, parts)
}

func TestLexCommaSeparatedList(t *testing.T) {
	parts, err := valuelex.Lex("Arial, Helvetica", 0)
	require.NoError(t, err)
	require.Equal(t, []event.ValuePart{
		event.StringValue("Arial"),
		event.OperatorValue(","),
		event.StringValue("Helvetica"),
	}, parts)
}

func TestLexWithBaseOffset(t *testing.T) {
	// the digit scan only yields text that ParseFloat accepts, so the
	// invalid-number error path cannot be reached; this checks that a
	// non-zero base offset leaves the lexed parts unchanged.
	parts, err := valuelex.Lex("5px", 100)
	require.NoError(t, err)
	require.Equal(t, []event.ValuePart{event.NumberValue{Scalar: 5, Unit: "px"}}, parts)
}
