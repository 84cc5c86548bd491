package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formpulse/formpulse-engine/internal/survey"
)

func TestEvaluateRulesFirstMatchWins(t *testing.T) {
	rules := []survey.LogicRule{
		{ID: "r1", Condition: `answer("q1") >= 5`, Action: survey.ActionSkip, TargetQuestionID: "q9"},
		{ID: "r2", Condition: `answer("q1") >= 3`, Action: survey.ActionShow, TargetQuestionID: "q5"},
		{ID: "r3", Condition: `answer("q1") >= 1`, Action: survey.ActionEnd},
	}
	ctx := ctxWith(survey.AnswerSet{"q1": survey.StringAnswer("4")})

	out := EvaluateRules(rules, ctx)
	require.True(t, out.Matched)
	assert.Equal(t, "r2", out.Rule.ID, "rules after the first match must not fire")
	assert.Equal(t, survey.ActionShow, out.Action)
	assert.Equal(t, "q5", out.NextQuestionID)
}

func TestEvaluateRulesSimpleMatch(t *testing.T) {
	rules := []survey.LogicRule{
		{ID: "r1", Condition: `answer("q1") >= 3`, Action: survey.ActionSkip, TargetQuestionID: "q4"},
	}
	out := EvaluateRules(rules, ctxWith(survey.AnswerSet{"q1": survey.StringAnswer("4")}))
	require.True(t, out.Matched)
	assert.Equal(t, survey.ActionSkip, out.Action)
	assert.Equal(t, "q4", out.NextQuestionID)
}

func TestEvaluateRulesNoMatch(t *testing.T) {
	rules := []survey.LogicRule{
		{ID: "r1", Condition: `answer("q1") == "No" && contains("q2", "Missing")`, Action: survey.ActionEnd},
	}
	ctx := ctxWith(survey.AnswerSet{
		"q1": survey.StringAnswer("Yes"),
		"q2": survey.ListAnswer("A", "B"),
	})

	out := EvaluateRules(rules, ctx)
	assert.False(t, out.Matched)
	assert.Nil(t, out.Rule)
	assert.Empty(t, out.NextQuestionID)
}

func TestEvaluateRulesEndCarriesNoTarget(t *testing.T) {
	rules := []survey.LogicRule{
		{ID: "r1", Condition: `answer("q1") == "Yes"`, Action: survey.ActionEnd, TargetQuestionID: "ignored"},
	}
	out := EvaluateRules(rules, ctxWith(survey.AnswerSet{"q1": survey.StringAnswer("Yes")}))
	require.True(t, out.Matched)
	assert.Equal(t, survey.ActionEnd, out.Action)
	assert.Empty(t, out.NextQuestionID)
}

func TestEvaluateRulesBadRuleDoesNotHaltFlow(t *testing.T) {
	rules := []survey.LogicRule{
		{ID: "broken", Condition: `answer("q1" ===`, Action: survey.ActionEnd},
		{ID: "ok", Condition: `answer("q1") >= 1`, Action: survey.ActionShow, TargetQuestionID: "q2"},
	}
	out := EvaluateRules(rules, ctxWith(survey.AnswerSet{"q1": survey.StringAnswer("2")}))
	require.True(t, out.Matched)
	assert.Equal(t, "ok", out.Rule.ID)
}

func TestEvaluateRulesEmpty(t *testing.T) {
	out := EvaluateRules(nil, ctxWith(survey.AnswerSet{}))
	assert.False(t, out.Matched)
}
