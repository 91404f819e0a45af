package eval

import (
	"math"

	"github.com/titpetric/cssc/errs"
	"github.com/titpetric/cssc/event"
)

// reduceBinary applies op to two already-evaluated operands, per the unit
// and color arithmetic rules.
func reduceBinary(left event.ValuePart, op event.Op, right event.ValuePart, offset int) (event.ValuePart, error) {
	if ln, ok := left.(event.NumberValue); ok {
		if rn, ok := right.(event.NumberValue); ok {
			return reduceNumberNumber(ln, op, rn, offset)
		}
	}
	if lc, ok := left.(event.ColorValue); ok {
		if rc, ok := right.(event.ColorValue); ok {
			return reduceColorColor(lc, op, rc, offset)
		}
		if rn, ok := right.(event.NumberValue); ok {
			return reduceColorNumber(lc, op, rn, offset)
		}
	}
	if rc, ok := right.(event.ColorValue); ok {
		if ln, ok := left.(event.NumberValue); ok {
			return reduceColorNumber(rc, op, ln, offset)
		}
	}

	if op == event.OpAdd {
		return event.StringValue(left.String() + right.String()), nil
	}
	return nil, errs.At(errs.InvalidOperator, offset, "operator %s is not valid between %T and %T", op, left, right)
}

func combineUnits(a, b string) (string, error) {
	if a == "" {
		return b, nil
	}
	if b == "" {
		return a, nil
	}
	if a == b {
		return a, nil
	}
	return "", errs.New(errs.IncompatibleUnits, "incompatible units %q and %q", a, b)
}

func reduceNumberNumber(l event.NumberValue, op event.Op, r event.NumberValue, offset int) (event.ValuePart, error) {
	switch op {
	case event.OpAdd, event.OpSub, event.OpMod:
		unit, err := combineUnits(l.Unit, r.Unit)
		if err != nil {
			if e, ok := err.(*errs.Error); ok {
				e.Offset = offset
			}
			return nil, err
		}
		var scalar float64
		switch op {
		case event.OpAdd:
			scalar = l.Scalar + r.Scalar
		case event.OpSub:
			scalar = l.Scalar - r.Scalar
		case event.OpMod:
			scalar = math.Mod(l.Scalar, r.Scalar)
		}
		return event.NumberValue{Scalar: scalar, Unit: unit, Computed: true}, nil

	case event.OpMul:
		if l.Unit != "" && r.Unit != "" {
			if l.Unit == r.Unit {
				return nil, errs.At(errs.InvalidSquareUnits, offset, "square unit %s*%s is not a valid CSS value", l.Unit, r.Unit)
			}
			return nil, errs.At(errs.IncompatibleUnits, offset, "incompatible units %q and %q", l.Unit, r.Unit)
		}
		unit := l.Unit
		if unit == "" {
			unit = r.Unit
		}
		return event.NumberValue{Scalar: l.Scalar * r.Scalar, Unit: unit, Computed: true}, nil

	case event.OpDiv:
		if r.Scalar == 0 {
			return nil, errs.At(errs.InvalidOperator, offset, "division by zero")
		}
		var unit string
		switch {
		case l.Unit == r.Unit:
			unit = ""
		case r.Unit == "":
			unit = l.Unit
		case l.Unit == "":
			unit = r.Unit
		default:
			return nil, errs.At(errs.IncompatibleUnits, offset, "incompatible units %q and %q", l.Unit, r.Unit)
		}
		return event.NumberValue{Scalar: l.Scalar / r.Scalar, Unit: unit, Computed: true}, nil
	}
	return nil, errs.At(errs.InvalidOperator, offset, "unsupported numeric operator %s", op)
}

func reduceColorNumber(c event.ColorValue, op event.Op, n event.NumberValue, offset int) (event.ValuePart, error) {
	apply := func(channel int) (int, error) {
		switch op {
		case event.OpAdd:
			return channel + int(n.Scalar), nil
		case event.OpSub:
			return channel - int(n.Scalar), nil
		case event.OpMul:
			return int(float64(channel) * n.Scalar), nil
		case event.OpDiv:
			if n.Scalar == 0 {
				return 0, errs.At(errs.InvalidOperator, offset, "division by zero")
			}
			return int(float64(channel) / n.Scalar), nil
		}
		return 0, errs.At(errs.InvalidOperator, offset, "unsupported color operator %s", op)
	}
	r, err := apply(c.Red)
	if err != nil {
		return nil, err
	}
	g, err := apply(c.Green)
	if err != nil {
		return nil, err
	}
	b, err := apply(c.Blue)
	if err != nil {
		return nil, err
	}
	return event.NewColorValue(r, g, b, ""), nil
}

func reduceColorColor(l event.ColorValue, op event.Op, r event.ColorValue, offset int) (event.ValuePart, error) {
	apply := func(a, b int) (int, error) {
		switch op {
		case event.OpAdd:
			return a + b, nil
		case event.OpSub:
			return a - b, nil
		case event.OpMul:
			return a * b, nil
		case event.OpDiv:
			if b == 0 {
				return 0, errs.At(errs.InvalidOperator, offset, "division by zero")
			}
			return a / b, nil
		}
		return 0, errs.At(errs.InvalidOperator, offset, "unsupported color operator %s", op)
	}
	red, err := apply(l.Red, r.Red)
	if err != nil {
		return nil, err
	}
	green, err := apply(l.Green, r.Green)
	if err != nil {
		return nil, err
	}
	blue, err := apply(l.Blue, r.Blue)
	if err != nil {
		return nil, err
	}
	return event.NewColorValue(red, green, blue, ""), nil
}
