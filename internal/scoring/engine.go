package scoring

import (
	"math"

	"github.com/formpulse/formpulse-engine/internal/survey"
)

// defaultCategoryMax is the normalization ceiling for categories that have no
// configured bands.
const defaultCategoryMax = 20

// pointsPerQuestion is the per-question unit scale the aggregator normalizes
// onto: every answered scorable question contributes up to 5 units no matter
// what raw point range its type uses.
const pointsPerQuestion = 5

type categoryAccumulator struct {
	units  float64 // earned, rescaled to the 5-unit-per-question scale
	weight float64 // effective question count (score weights, default 1)
}

// CalculateScores aggregates answers into per-category scores.
//
// Returns nil when cfg is absent or scoring is disabled; otherwise one result
// per declared category, including categories with zero answered questions.
// Unanswered questions are skipped and shrink the normalization denominator.
// When preCalculated supplies a category's score (e.g. from an external
// scoring source), that value is used verbatim for that category and only
// clamped to the configured range.
func CalculateScores(questions []survey.Question, answers survey.AnswerSet, cfg *ScoreConfiguration, preCalculated map[string]float64) []CategoryScoreResult {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	acc := map[string]*categoryAccumulator{}
	for _, q := range questions {
		if q.ScoringCategory == "" || !Scorable(q.Type) {
			continue
		}
		ans, ok := answers.Get(q.ID)
		if !ok || ans.IsEmpty() {
			continue
		}
		pts, max := ExtractPoints(q, ans)
		if max <= 0 {
			continue
		}
		w := q.ScoreWeight
		if w <= 0 {
			w = 1
		}
		a := acc[q.ScoringCategory]
		if a == nil {
			a = &categoryAccumulator{}
			acc[q.ScoringCategory] = a
		}
		a.units += pts / max * pointsPerQuestion * w
		a.weight += w
	}

	results := make([]CategoryScoreResult, 0, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		maxScore := maxConfiguredScore(cfg, cat.ID)
		var score float64
		if pre, ok := preCalculated[cat.ID]; ok {
			score = pre
		} else if a := acc[cat.ID]; a != nil && a.weight > 0 {
			score = math.Round(a.units / (a.weight * pointsPerQuestion) * maxScore)
		}
		score = clamp(score, 0, maxScore)

		res := CategoryScoreResult{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Score:        score,
			MaxScore:     maxScore,
		}
		if band := resolveCategoryBand(cat.ID, res.Percentage(), cfg); band != nil {
			res.Interpretation = band.Interpretation
		}
		results = append(results, res)
	}
	return results
}

// OverallPercentage collapses all answered scorable questions onto a 0-100
// scale, category membership aside. This is the score resolveOverallBand
// consumers feed back in.
func OverallPercentage(questions []survey.Question, answers survey.AnswerSet) float64 {
	var units, weight float64
	for _, q := range questions {
		if !Scorable(q.Type) {
			continue
		}
		ans, ok := answers.Get(q.ID)
		if !ok || ans.IsEmpty() {
			continue
		}
		pts, max := ExtractPoints(q, ans)
		if max <= 0 {
			continue
		}
		w := q.ScoreWeight
		if w <= 0 {
			w = 1
		}
		units += pts / max * pointsPerQuestion * w
		weight += w
	}
	if weight == 0 {
		return 0
	}
	return clamp(units/(weight*pointsPerQuestion)*100, 0, 100)
}

// maxConfiguredScore is the highest band ceiling tagged with the category
// across every band-set in the configuration, or defaultCategoryMax when the
// category has no bands at all.
func maxConfiguredScore(cfg *ScoreConfiguration, categoryID string) float64 {
	max := 0.0
	scan := func(bands []ScoreBand, tagged bool) {
		for _, b := range bands {
			if tagged && b.Category != categoryID {
				continue
			}
			if b.Max > max {
				max = b.Max
			}
		}
	}
	scan(cfg.ScoreRanges, true)
	if rs := cfg.ResultsScreen; rs != nil {
		scan(rs.ScoreRanges, true)
		for _, cc := range rs.Categories {
			if cc.CategoryID == categoryID && cc.BandsMode == BandsCustom {
				scan(cc.Bands, false)
			}
		}
	}
	if max <= 0 {
		return defaultCategoryMax
	}
	return max
}
