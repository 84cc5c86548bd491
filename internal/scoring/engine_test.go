package scoring_test

import (
	"reflect"
	"testing"

	"github.com/formpulse/formpulse-engine/internal/scoring"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

/* ---------------- Shared fixture: an engagement pulse with likert items ---------------- */

func engagementQuestions() []survey.Question {
	return []survey.Question{
		{ID: "q1", Type: survey.TypeRating, RatingScale: 5, ScoringCategory: "engagement"},
		{ID: "q2", Type: survey.TypeNPS, ScoringCategory: "engagement"},
		{ID: "q3", Type: survey.TypeMultipleChoice, ScoringCategory: "engagement", Options: []string{
			"1 (Strongly Disagree)", "2 (Disagree)", "3 (Neutral)", "4 (Agree)", "5 (Strongly Agree)",
		}},
	}
}

func engagementConfig() *scoring.ScoreConfiguration {
	return &scoring.ScoreConfiguration{
		Enabled:     true,
		Categories:  []scoring.ScoreCategory{{ID: "engagement", Name: "Engagement"}},
		ScoreRanges: scoring.DefaultBands(),
	}
}

func TestCalculateScoresDisabled(t *testing.T) {
	if got := scoring.CalculateScores(engagementQuestions(), survey.AnswerSet{}, nil, nil); got != nil {
		t.Fatalf("nil config: got %v, want nil", got)
	}
	cfg := engagementConfig()
	cfg.Enabled = false
	if got := scoring.CalculateScores(engagementQuestions(), survey.AnswerSet{}, cfg, nil); got != nil {
		t.Fatalf("disabled config: got %v, want nil", got)
	}
}

func TestCalculateScoresTopMarks(t *testing.T) {
	answers := survey.AnswerSet{
		"q1": survey.StringAnswer("5"),
		"q2": survey.StringAnswer("10"),
		"q3": survey.StringAnswer("5 (Strongly Agree)"),
	}
	results := scoring.CalculateScores(engagementQuestions(), answers, engagementConfig(), nil)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Score != r.MaxScore {
		t.Fatalf("top marks: score %g, max %g", r.Score, r.MaxScore)
	}
	if r.Percentage() != 100 {
		t.Fatalf("percentage = %g, want 100", r.Percentage())
	}

	bands := scoring.ResolveCategoryBands(scoring.SnapshotsFromResults(results), engagementConfig())
	if b := bands["engagement"]; b == nil || b.Label != "Highly Effective" {
		t.Fatalf("band = %+v, want Highly Effective", bands["engagement"])
	}
}

func TestCalculateScoresMiddleMarks(t *testing.T) {
	answers := survey.AnswerSet{
		"q1": survey.StringAnswer("3"),
		"q2": survey.StringAnswer("7"),
		"q3": survey.StringAnswer("3 (Neutral)"),
	}
	cfg := engagementConfig()
	results := scoring.CalculateScores(engagementQuestions(), answers, cfg, nil)
	r := results[0]

	pct := r.Percentage()
	if pct < 60 || pct > 70 {
		t.Fatalf("percentage = %g, want within [60,70]", pct)
	}
	bands := scoring.ResolveCategoryBands(scoring.SnapshotsFromResults(results), cfg)
	if b := bands["engagement"]; b == nil || b.Label != "Developing" {
		t.Fatalf("band = %+v, want Developing", bands["engagement"])
	}
}

func TestCalculateScoresIdempotent(t *testing.T) {
	answers := survey.AnswerSet{
		"q1": survey.StringAnswer("4"),
		"q2": survey.StringAnswer("8"),
	}
	first := scoring.CalculateScores(engagementQuestions(), answers, engagementConfig(), nil)
	second := scoring.CalculateScores(engagementQuestions(), answers, engagementConfig(), nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("not idempotent: %v vs %v", first, second)
	}
}

func TestCalculateScoresPartialAnswers(t *testing.T) {
	// Skipping q2 shrinks the denominator; it must never produce NaN or a crash.
	answers := survey.AnswerSet{
		"q1": survey.StringAnswer("3"),
		"q3": survey.StringAnswer("3 (Neutral)"),
	}
	results := scoring.CalculateScores(engagementQuestions(), answers, engagementConfig(), nil)
	r := results[0]
	// 3/5 per answered question over two answered questions, onto the default 20 ceiling
	if r.Score != 12 {
		t.Fatalf("score = %g, want 12", r.Score)
	}
	if r.Score < 0 || r.Score > r.MaxScore {
		t.Fatalf("score %g outside [0,%g]", r.Score, r.MaxScore)
	}
}

func TestCalculateScoresEmptyCategory(t *testing.T) {
	cfg := engagementConfig()
	cfg.Categories = append(cfg.Categories, scoring.ScoreCategory{ID: "wellbeing", Name: "Wellbeing"})

	results := scoring.CalculateScores(engagementQuestions(), survey.AnswerSet{"q1": survey.StringAnswer("5")}, cfg, nil)
	if len(results) != 2 {
		t.Fatalf("got %d results, want one per declared category", len(results))
	}
	var wellbeing *scoring.CategoryScoreResult
	for i := range results {
		if results[i].CategoryID == "wellbeing" {
			wellbeing = &results[i]
		}
	}
	if wellbeing == nil {
		t.Fatal("no result for zero-question category")
	}
	if wellbeing.Score != 0 || wellbeing.MaxScore <= 0 {
		t.Fatalf("zero-question category: score %g, max %g", wellbeing.Score, wellbeing.MaxScore)
	}
}

func TestCalculateScoresPreCalculated(t *testing.T) {
	cfg := engagementConfig()
	cfg.Categories = append(cfg.Categories, scoring.ScoreCategory{ID: "wellbeing", Name: "Wellbeing"})
	answers := survey.AnswerSet{"q1": survey.StringAnswer("5")}

	pre := map[string]float64{"wellbeing": 14}
	results := scoring.CalculateScores(engagementQuestions(), answers, cfg, pre)
	for _, r := range results {
		switch r.CategoryID {
		case "wellbeing":
			if r.Score != 14 {
				t.Fatalf("pre-calculated score not used verbatim: %g", r.Score)
			}
		case "engagement":
			if r.Score != 20 {
				t.Fatalf("normalized score = %g, want 20", r.Score)
			}
		}
	}

	// Out-of-range supplied scores still clamp to the configured ceiling.
	results = scoring.CalculateScores(engagementQuestions(), answers, cfg, map[string]float64{"wellbeing": 999})
	for _, r := range results {
		if r.CategoryID == "wellbeing" && r.Score != r.MaxScore {
			t.Fatalf("clamp: score %g, max %g", r.Score, r.MaxScore)
		}
	}
}

func TestCalculateScoresTaggedBandCeiling(t *testing.T) {
	cfg := engagementConfig()
	cfg.ScoreRanges = []scoring.ScoreBand{
		{Min: 0, Max: 49, Label: "Low", Category: "engagement"},
		{Min: 50, Max: 100, Label: "High", Category: "engagement"},
	}
	answers := survey.AnswerSet{
		"q1": survey.StringAnswer("5"),
		"q2": survey.StringAnswer("10"),
		"q3": survey.StringAnswer("5 (Strongly Agree)"),
	}
	results := scoring.CalculateScores(engagementQuestions(), answers, cfg, nil)
	if r := results[0]; r.MaxScore != 100 || r.Score != 100 {
		t.Fatalf("tagged ceiling: score %g / %g, want 100 / 100", r.Score, r.MaxScore)
	}
}

func TestCalculateScoresAllClamped(t *testing.T) {
	weighted := []survey.Question{
		{ID: "w1", Type: survey.TypeRating, ScoringCategory: "engagement", ScoreWeight: 3},
		{ID: "w2", Type: survey.TypeText, ScoringCategory: "engagement"},
	}
	answers := survey.AnswerSet{
		"w1": survey.StringAnswer("5"),
		"w2": survey.StringAnswer("free text"),
	}
	results := scoring.CalculateScores(weighted, answers, engagementConfig(), nil)
	for _, r := range results {
		if r.Score < 0 || r.Score > r.MaxScore {
			t.Fatalf("score %g outside [0,%g]", r.Score, r.MaxScore)
		}
	}
}

func TestOverallPercentage(t *testing.T) {
	answers := survey.AnswerSet{
		"q1": survey.StringAnswer("5"),
		"q2": survey.StringAnswer("10"),
		"q3": survey.StringAnswer("5 (Strongly Agree)"),
	}
	if pct := scoring.OverallPercentage(engagementQuestions(), answers); pct != 100 {
		t.Fatalf("pct = %g, want 100", pct)
	}
	if pct := scoring.OverallPercentage(engagementQuestions(), survey.AnswerSet{}); pct != 0 {
		t.Fatalf("no answers: pct = %g, want 0", pct)
	}
}
