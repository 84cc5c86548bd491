package logic

import "github.com/formpulse/formpulse-engine/internal/survey"

// RuleOutcome reports the first matching rule of an evaluation pass.
// A zero outcome (Matched false) means no rule fired, which is a normal
// result, not an error.
type RuleOutcome struct {
	Matched        bool               `json:"matched"`
	Rule           *survey.LogicRule  `json:"matched_rule,omitempty"`
	Action         survey.LogicAction `json:"action,omitempty"`
	NextQuestionID string             `json:"next_question_id,omitempty"`
}

// EvaluateRules walks rules in authored order and returns the first whose
// condition holds against the snapshot. Later rules are not evaluated once
// one matches. Show and skip actions expose the rule's target as the next
// question id; end terminates the flow and carries no target.
func EvaluateRules(rules []survey.LogicRule, ctx Context) RuleOutcome {
	for i := range rules {
		r := &rules[i]
		if !Evaluate(r.Condition, ctx) {
			continue
		}
		out := RuleOutcome{Matched: true, Rule: r, Action: r.Action}
		if r.Action == survey.ActionShow || r.Action == survey.ActionSkip {
			out.NextQuestionID = r.TargetQuestionID
		}
		return out
	}
	return RuleOutcome{}
}
