package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/titpetric/cssc/event"
)

func TestNumberValueString(t *testing.T) {
	cases := []struct {
		in   event.NumberValue
		want string
	}{
		{event.NumberValue{Scalar: 10, Unit: "px"}, "10px"},
		{event.NumberValue{Scalar: 1.5, Unit: "em"}, "1.5em"},
		{event.NumberValue{Scalar: 0, Unit: "%"}, "0%"},
		{event.NumberValue{Scalar: 3.100000, Unit: ""}, "3.1"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.in.String())
	}
}

func TestColorValuePrefersShorterOriginal(t *testing.T) {
	c := event.NewColorValue(0xff, 0x00, 0xff, "#f0f")
	require.Equal(t, "#f0f", c.String())

	computed := event.NewColorValue(1, 2, 3, "")
	require.Equal(t, "#010203", computed.String())
}

func TestColorValueClamps(t *testing.T) {
	c := event.NewColorValue(300, -10, 128, "")
	require.Equal(t, 255, c.Red)
	require.Equal(t, 0, c.Green)
	require.Equal(t, 128, c.Blue)
}

func TestListValueString(t *testing.T) {
	l := event.ListValue{
		Parts:     []event.ValuePart{event.NumberValue{Scalar: 1, Unit: "px"}, event.NumberValue{Scalar: 2, Unit: "px"}},
		Separator: " ",
	}
	require.Equal(t, "1px 2px", l.String())
}
