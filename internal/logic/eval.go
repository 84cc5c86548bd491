package logic

import (
	"strconv"
	"strings"

	"github.com/formpulse/formpulse-engine/internal/survey"
)

// Context is a read-only snapshot of the respondent's progress. The engine
// never mutates it; it is safe to share across concurrent evaluations.
type Context struct {
	Questions []survey.Question
	Answers   survey.AnswerSet
}

// Evaluate runs a condition against the snapshot. Malformed conditions
// evaluate to false: one bad rule must degrade to "no match", never halt the
// respondent flow.
func Evaluate(condition string, ctx Context) bool {
	expr, err := Parse(condition)
	if err != nil {
		return false
	}
	return expr.eval(ctx)
}

func (e logicalExpr) eval(ctx Context) bool {
	if e.op == "&&" {
		return e.left.eval(ctx) && e.right.eval(ctx)
	}
	return e.left.eval(ctx) || e.right.eval(ctx)
}

func (e compareExpr) eval(ctx Context) bool {
	ans := ctx.Answers[e.questionID] // zero value stands in for "not answered"
	raw := ans.Scalar()

	// When the literal parses as a number, both sides coerce numerically.
	// Otherwise only == compares, case-sensitively, as strings.
	if target, err := strconv.ParseFloat(e.literal, 64); err == nil {
		val, ok := parseNumberLoose(raw)
		if !ok {
			return false
		}
		switch e.op {
		case "==":
			return val == target
		case ">=":
			return val >= target
		case ">":
			return val > target
		case "<=":
			return val <= target
		case "<":
			return val < target
		}
		return false
	}

	if e.op == "==" {
		return raw == e.literal
	}
	return false
}

func (e containsExpr) eval(ctx Context) bool {
	ans, ok := ctx.Answers.Get(e.questionID)
	if !ok {
		return false
	}
	want := strings.TrimSpace(e.value)
	for _, item := range ans.Items() {
		if strings.TrimSpace(item) == want {
			return true
		}
	}
	return false
}

// parseNumberLoose accepts plain numbers and answers with a numeric prefix,
// e.g. Likert-style "4 (Agree)".
func parseNumberLoose(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if fields := strings.Fields(s); len(fields) > 0 {
		if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
