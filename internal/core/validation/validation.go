// Package validation runs declarative campaign input rules. A rule is a
// pure function from input to zero or more violations; the runner just
// concatenates what each rule reports.
package validation

import "strings"

// Violation is a single human-readable complaint attached to a field.
type Violation struct {
	Field   string
	Message string
}

// Violations aggregates rule output.
type Violations []Violation

// ByField groups messages by field name for per-field rendering.
func (v Violations) ByField() map[string][]string {
	out := make(map[string][]string, len(v))
	for _, violation := range v {
		out[violation.Field] = append(out[violation.Field], violation.Message)
	}
	return out
}

// Join flattens all messages into one newline-separated string for
// simple display.
func (v Violations) Join() string {
	messages := make([]string, len(v))
	for i, violation := range v {
		messages[i] = violation.Message
	}
	return strings.Join(messages, "\n")
}

// Error is the structured validation failure returned by the service's
// ValidateInput. It carries the full violation set, not a single message.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	return "campaign input validation failed:\n" + e.Violations.Join()
}

// CampaignFields is the view of an input both variants expose to the
// rules. String fields report presence so the partial variant can leave
// them out without tripping the non-blank rules.
type CampaignFields interface {
	TitleField() (value string, present bool)
	SlugField() (value string, present bool)
	TargetFields() (hasTarget bool, targetAmount int64)
}

// Rule inspects an input and reports violations. Rules have no side
// effects and do not depend on each other.
type Rule func(CampaignFields) Violations

// Run evaluates every rule against the input and aggregates the
// violations in rule order.
func Run(in CampaignFields, rules ...Rule) Violations {
	var all Violations
	for _, rule := range rules {
		all = append(all, rule(in)...)
	}
	return all
}

// CampaignRules is the standard rule set applied to campaign input
// before persistence.
func CampaignRules() []Rule {
	return []Rule{TitleNotBlank, SlugNotBlank, TargetAmountConsistent}
}
