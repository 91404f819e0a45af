// Package optimize implements Component E: flattening of rules whose
// bodies contain only nested rules, distributing parent selectors onto
// their descendants via the cross-product selector-distribution operator
// shared with the streamer.
package optimize

import (
	"github.com/titpetric/cssc/errs"
	"github.com/titpetric/cssc/event"
	"github.com/titpetric/cssc/internal/strings"
)

// Optimize flattens the top-level event stream so that every emitted rule
// has at least one direct property child.
func Optimize(events []event.Event) ([]event.Event, error) {
	var out []event.Event
	for _, ev := range events {
		switch e := ev.(type) {
		case event.Rule:
			out = append(out, optimizeRule(e)...)
		case event.Comment:
			out = append(out, e)
		default:
			return nil, errs.New(errs.UnexpectedTopLevelElement, "unexpected event %T at top level", ev)
		}
	}
	return out, nil
}

func hasDirectProperty(children []event.Event) bool {
	for _, c := range children {
		if _, ok := c.(event.Property); ok {
			return true
		}
	}
	return false
}

// optimizeRule returns the list of top-level-shaped rules that rule
// expands to: itself, unchanged, the moment it has at least one direct
// property (its nested rules are left nested rather than flattened
// further), or the collapsed concatenation of its child rules (with this
// rule's selectors distributed onto them) when it has none.
func optimizeRule(rule event.Rule) []event.Event {
	if hasDirectProperty(rule.Children) {
		return []event.Event{rule}
	}

	var collapsed []event.Event
	for _, c := range rule.Children {
		childRule, ok := c.(event.Rule)
		if !ok {
			// a comment has no selector to distribute; carry it through to
			// the output stream unchanged instead of dropping it with the
			// rule it was nested under.
			if comment, ok := c.(event.Comment); ok {
				collapsed = append(collapsed, comment)
			}
			continue
		}
		merged := event.Rule{
			Selectors: Distribute(rule.Selectors, childRule.Selectors),
			Children:  childRule.Children,
		}
		collapsed = append(collapsed, optimizeRule(merged)...)
	}
	return collapsed
}

// Distribute implements the shared selector-distribution operator: given a
// list of ancestor selectors and a list of child selectors, it returns the
// cross product "ancestor child" for every pair, substituting a literal '&'
// in the child with the trimmed ancestor instead of concatenating.
func Distribute(ancestors, children []string) []string {
	if len(ancestors) == 0 {
		return children
	}
	out := make([]string, 0, len(ancestors)*len(children))
	for _, ancestor := range ancestors {
		trimmed := strings.TrimSpace(ancestor)
		for _, child := range children {
			if strings.Contains(child, "&") {
				out = append(out, strings.ReplaceAll(child, "&", trimmed))
			} else {
				out = append(out, trimmed+" "+child)
			}
		}
	}
	return out
}
