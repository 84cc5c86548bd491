package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/formpulse/formpulse-engine/internal/survey"
)

// extractor converts one answered question into (earned, max possible) points.
// Malformed answers earn 0 without error; a scoring glitch must never block a
// respondent from finishing.
type extractor func(q survey.Question, ans survey.AnswerValue) (points, maxPoints float64)

var extractors = map[survey.QuestionType]extractor{
	survey.TypeRating:         extractRating,
	survey.TypeNPS:            extractNPS,
	survey.TypeNumber:         extractNumber,
	survey.TypeMultipleChoice: extractChoice,
	survey.TypeCheckbox:       extractCheckbox,
	survey.TypeText:           extractPresence,
	survey.TypeTextarea:       extractPresence,
}

// ExtractPoints maps a single answer onto the question's point scale.
// Question types without an extractor are non-scorable and return (0, 0);
// the aggregator excludes them.
func ExtractPoints(q survey.Question, ans survey.AnswerValue) (points, maxPoints float64) {
	ex, ok := extractors[q.Type]
	if !ok {
		return 0, 0
	}
	return ex(q, ans)
}

// Scorable reports whether a question type ever contributes points.
func Scorable(t survey.QuestionType) bool {
	_, ok := extractors[t]
	return ok
}

func extractRating(q survey.Question, ans survey.AnswerValue) (float64, float64) {
	scale := float64(q.RatingScale)
	if scale <= 0 {
		scale = 5
	}
	v, ok := ans.Float()
	if !ok {
		return 0, scale
	}
	return clamp(v, 0, scale), scale
}

func extractNPS(_ survey.Question, ans survey.AnswerValue) (float64, float64) {
	v, ok := ans.Float()
	if !ok {
		return 0, 10
	}
	return clamp(v, 0, 10), 10
}

// extractNumber earns the answered value against itself; the aggregator
// re-scales, so an answered number counts as a full contribution.
func extractNumber(_ survey.Question, ans survey.AnswerValue) (float64, float64) {
	v, ok := ans.Float()
	if !ok || v <= 0 {
		return 0, 0
	}
	return v, v
}

// extractChoice scores single-choice answers. Precedence: authored per-option
// points, then a leading integer in the answer text (Likert-style labels like
// "5 (Strongly Agree)"), then the option's ordinal position rescaled to a
// 5-point ceiling. The ordinal fallback is a compatibility heuristic; keep it
// exactly as is.
func extractChoice(q survey.Question, ans survey.AnswerValue) (float64, float64) {
	label := strings.TrimSpace(ans.Scalar())
	if label == "" {
		return 0, 5
	}

	if len(q.OptionScores) > 0 {
		maxOpt := 0.0
		for _, v := range q.OptionScores {
			if v > maxOpt {
				maxOpt = v
			}
		}
		if maxOpt > 0 {
			return clamp(q.OptionScores[label], 0, maxOpt), maxOpt
		}
	}

	if n, ok := parseLeadingInt(label); ok {
		return clamp(float64(n), 0, 5), 5
	}

	if idx := optionIndex(q.Options, label); idx >= 0 {
		n := float64(len(q.Options))
		pts := math.Ceil(float64(idx+1) / n * math.Min(n, 5))
		return clamp(pts, 0, 5), 5
	}
	return 0, 5
}

func extractCheckbox(_ survey.Question, ans survey.AnswerValue) (float64, float64) {
	selected := float64(len(ans.Items()))
	return clamp(selected, 0, 5), 5
}

// extractPresence gives free-text answers a single binary point.
func extractPresence(_ survey.Question, ans survey.AnswerValue) (float64, float64) {
	if ans.IsEmpty() {
		return 0, 1
	}
	return 1, 1
}

// parseLeadingInt reads a run of digits at the start of s.
func parseLeadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func optionIndex(options []string, label string) int {
	for i, o := range options {
		if strings.TrimSpace(o) == label {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
