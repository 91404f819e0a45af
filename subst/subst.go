// Package subst implements Component D: the variable/mixin substituter.
// It walks the top-level event stream, threading lexically scoped variable
// and mixin tables, expands mixin calls, and evaluates property values
// against the current scope.
package subst

import (
	"maps"

	"github.com/titpetric/cssc/cssparser"
	"github.com/titpetric/cssc/errs"
	"github.com/titpetric/cssc/eval"
	"github.com/titpetric/cssc/event"
)

// Substitute walks events starting from empty top-level variable and mixin
// tables and returns the resolved top-level rule/comment stream.
func Substitute(events []event.Event) ([]event.Event, error) {
	vars := map[string]event.ValuePart{}
	mixins := map[string]event.Mixin{}
	return process(events, vars, mixins)
}

// process walks one level of the event tree against the given scope,
// mutating vars/mixins in place (callers must pass an already-cloned copy
// when recursing into a nested rule or mixin body, per the scope discipline
// in §4.D: child bindings never leak to the parent).
func process(events []event.Event, vars map[string]event.ValuePart, mixins map[string]event.Mixin) ([]event.Event, error) {
	var out []event.Event
	for _, ev := range events {
		switch e := ev.(type) {
		case event.Variable:
			val, err := eval.Evaluate(e.ValueText, e.Offset, eval.Scope(vars))
			if err != nil {
				return nil, err
			}
			if nv, ok := val.(event.NumberValue); ok {
				nv.Computed = true
				val = nv
			}
			vars[e.Name] = val

		case event.Mixin:
			mixins[e.Name] = e

		case event.UnevaluatedProperty:
			val, err := eval.Evaluate(e.ValueText, e.Offset, eval.Scope(vars))
			if err != nil {
				return nil, err
			}
			out = append(out, event.Property{Name: e.Name, Value: val})

		case event.MixinCall:
			expanded, err := expandMixinCall(e, vars, mixins)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)

		case event.Rule:
			childVars := maps.Clone(vars)
			childMixins := maps.Clone(mixins)
			children, err := process(e.Children, childVars, childMixins)
			if err != nil {
				return nil, err
			}
			out = append(out, event.Rule{Selectors: e.Selectors, Children: children})

		case event.Comment:
			out = append(out, e)

		default:
			return nil, errs.New(errs.UnexpectedTopLevelElement, "unexpected event %T in substitution", ev)
		}
	}
	return out, nil
}

func expandMixinCall(call event.MixinCall, vars map[string]event.ValuePart, mixins map[string]event.Mixin) ([]event.Event, error) {
	mixin, ok := mixins[call.Name]
	if !ok {
		return nil, errs.At(errs.ExpectedMixin, call.Offset, "mixin %q is not defined", call.Name)
	}

	callScope, err := bindArguments(mixin.Parameters, call.Arguments, vars, call.Offset)
	if err != nil {
		return nil, err
	}

	bodyEvents, err := cssparser.ParseBody(mixin.BodyText)
	if err != nil {
		return nil, err
	}

	return process(bodyEvents, callScope, maps.Clone(mixins))
}

// bindArguments resolves each formal parameter against the call's named and
// positional arguments (or its default), per the §4.D algorithm: a
// positional argument is matched by the parameter's own declaration-order
// index, never renumbered to account for arguments consumed by name.
// Resolved values are evaluated against the caller's scope, then coerced to
// their string display form, because the mixin body is re-lexed from text.
// The returned scope is a copy of the caller's variables with the bound
// parameters added on top.
func bindArguments(params []event.MixinParameter, args []event.MixinArgument, callerScope map[string]event.ValuePart, offset int) (map[string]event.ValuePart, error) {
	named := make(map[string]event.MixinArgument, len(args))
	for _, a := range args {
		if a.Name != "" {
			named[a.Name] = a
		}
	}

	result := make(map[string]event.ValuePart, len(callerScope)+len(params))
	maps.Copy(result, callerScope)
	for i, param := range params {
		var raw event.ValuePart
		found := false

		if a, ok := named[param.Name]; ok {
			raw = a.Value
			found = true
		}
		if !found && i < len(args) && args[i].Name == "" {
			raw = args[i].Value
			found = true
		}
		if !found && param.Default != nil {
			raw = param.Default
			found = true
		}
		if !found {
			return nil, errs.At(errs.ExpectedMixinArgument, offset, "missing argument for parameter %s", param.Name)
		}

		val, err := eval.Evaluate(raw.String(), offset, eval.Scope(callerScope))
		if err != nil {
			return nil, err
		}
		result[param.Name] = event.StringValue(val.String())
	}
	return result, nil
}
