package cssparser

import (
	"github.com/titpetric/cssc/event"
	"github.com/titpetric/cssc/internal/strings"
)

// parseParameterList splits a raw mixin parameter list on top-level commas;
// each element of the form "$name: default" is split into name/default,
// otherwise it has no default. The default text is kept unevaluated,
// wrapped as a StringValue placeholder; the substituter evaluates it
// against the call-site scope at each call that falls back to it.
func parseParameterList(raw string) []event.MixinParameter {
	var params []event.MixinParameter
	for _, part := range splitTopLevelComma(raw) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, defaultText, hasDefault := splitNameValue(part)
		param := event.MixinParameter{Name: name}
		if hasDefault {
			param.Default = event.StringValue(defaultText)
		}
		params = append(params, param)
	}
	return params
}

// parseArgumentList splits a raw mixin call argument list on top-level
// commas; an element starting with "$name:" is a named argument, otherwise
// positional. Values are kept unevaluated (see parseParameterList).
func parseArgumentList(raw string) []event.MixinArgument {
	var args []event.MixinArgument
	for _, part := range splitTopLevelComma(raw) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, valueText, named := splitNameValue(part)
		arg := event.MixinArgument{Value: event.StringValue(valueText)}
		if named {
			arg.Name = name
		}
		args = append(args, arg)
	}
	return args
}

// splitNameValue splits "$name: rest" into ("$name", "rest", true). It
// returns ("", part, false) when part does not start with '$', and
// (part, part, false) for a "$name" with no following ':'.
func splitNameValue(part string) (name, rest string, ok bool) {
	if len(part) == 0 || part[0] != '$' {
		return "", part, false
	}
	i := 1
	for i < len(part) && isIdentChar(part[i]) {
		i++
	}
	j := i
	for j < len(part) && part[j] == ' ' {
		j++
	}
	if j >= len(part) || part[j] != ':' {
		// a bare "$name" with no default/value annotation
		return part, part, false
	}
	name = part[:i]
	rest = strings.TrimSpace(part[j+1:])
	return name, rest, true
}
