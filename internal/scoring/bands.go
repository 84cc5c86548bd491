package scoring

// canonicalBands is the built-in 5-band interpretive set used when a survey
// ships no bands of its own, and the source of the fallback band for missing
// scores (index 2, "Developing").
var canonicalBands = []ScoreBand{
	{ID: "needs-attention", Min: 0, Max: 39, Label: "Needs Attention",
		Interpretation: "Results point to significant gaps. Prioritize the fundamentals before anything else."},
	{ID: "emerging", Min: 40, Max: 59, Label: "Emerging",
		Interpretation: "Early signs of progress with plenty of room to grow. Pick one or two focus areas."},
	{ID: "developing", Min: 60, Max: 74, Label: "Developing",
		Interpretation: "A solid base is in place. Consistency is what moves the needle from here."},
	{ID: "effective", Min: 75, Max: 89, Label: "Effective",
		Interpretation: "Strong results across the board. Look for the few remaining weak spots."},
	{ID: "highly-effective", Min: 90, Max: 100, Label: "Highly Effective",
		Interpretation: "Exceptional results. Focus on sustaining what already works."},
}

const defaultBandIndex = 2

// DefaultBands returns a copy of the canonical band set.
func DefaultBands() []ScoreBand {
	return append([]ScoreBand(nil), canonicalBands...)
}

// DefaultBand is the band presentation code falls back to when a score is
// missing entirely, so rendering stays total.
func DefaultBand() ScoreBand {
	return canonicalBands[defaultBandIndex]
}

// CategorySnapshot is the per-category input to ResolveCategoryBands. A nil
// Score means the category was never scored.
type CategorySnapshot struct {
	CategoryID string   `json:"category_id" yaml:"category_id"`
	Score      *float64 `json:"score,omitempty" yaml:"score,omitempty"`
	MaxScore   float64  `json:"max_score,omitempty" yaml:"max_score,omitempty"`
}

// SnapshotsFromResults adapts aggregator output into band-lookup snapshots.
func SnapshotsFromResults(results []CategoryScoreResult) []CategorySnapshot {
	out := make([]CategorySnapshot, 0, len(results))
	for _, r := range results {
		score := r.Score
		out = append(out, CategorySnapshot{CategoryID: r.CategoryID, Score: &score, MaxScore: r.MaxScore})
	}
	return out
}

// ResolveOverallBand maps an overall percentage onto the configured band set.
// Candidate sources are tried first-to-last: results-screen overrides, then
// the configuration-level ranges. Returns nil when neither source is
// populated or no band contains the score. On overlapping bands, array order
// is the precedence: the first containing band wins.
func ResolveOverallBand(percentage float64, cfg *ScoreConfiguration) *ScoreBand {
	for _, set := range overallBandSources(cfg) {
		if len(set) == 0 {
			continue
		}
		return firstMatch(untaggedOrAll(set), percentage)
	}
	return nil
}

// ResolveCategoryBands looks up an interpretive band per category. Categories
// with a custom results-screen band set use it; everyone else shares the
// global set. Lookup is by the category's percentage, not its raw score.
// A missing score resolves to the hard-coded default band.
func ResolveCategoryBands(snapshots []CategorySnapshot, cfg *ScoreConfiguration) map[string]*ScoreBand {
	out := make(map[string]*ScoreBand, len(snapshots))
	for _, s := range snapshots {
		if s.Score == nil {
			b := DefaultBand()
			out[s.CategoryID] = &b
			continue
		}
		pct := *s.Score
		if s.MaxScore > 0 {
			pct = *s.Score / s.MaxScore * 100
		}
		out[s.CategoryID] = resolveCategoryBand(s.CategoryID, pct, cfg)
	}
	return out
}

func resolveCategoryBand(categoryID string, percentage float64, cfg *ScoreConfiguration) *ScoreBand {
	if cfg == nil {
		return nil
	}
	if rs := cfg.ResultsScreen; rs != nil {
		for _, cc := range rs.Categories {
			if cc.CategoryID == categoryID && cc.BandsMode == BandsCustom && len(cc.Bands) > 0 {
				return firstMatch(cc.Bands, percentage)
			}
		}
	}
	for _, set := range overallBandSources(cfg) {
		if len(set) == 0 {
			continue
		}
		return firstMatch(bandsForCategory(set, categoryID), percentage)
	}
	return nil
}

// overallBandSources is the precedence-ordered list of candidate band sets.
func overallBandSources(cfg *ScoreConfiguration) [][]ScoreBand {
	if cfg == nil {
		return nil
	}
	var sources [][]ScoreBand
	if cfg.ResultsScreen != nil {
		sources = append(sources, cfg.ResultsScreen.ScoreRanges)
	}
	return append(sources, cfg.ScoreRanges)
}

// bandsForCategory narrows a mixed set to the category's tagged bands, or to
// the untagged ones when the category has no tagged bands of its own.
func bandsForCategory(set []ScoreBand, categoryID string) []ScoreBand {
	var tagged, untagged []ScoreBand
	for _, b := range set {
		switch b.Category {
		case categoryID:
			tagged = append(tagged, b)
		case "":
			untagged = append(untagged, b)
		}
	}
	if len(tagged) > 0 {
		return tagged
	}
	return untagged
}

func untaggedOrAll(set []ScoreBand) []ScoreBand {
	var untagged []ScoreBand
	for _, b := range set {
		if b.Category == "" {
			untagged = append(untagged, b)
		}
	}
	if len(untagged) > 0 {
		return untagged
	}
	return set
}

func firstMatch(bands []ScoreBand, score float64) *ScoreBand {
	for i := range bands {
		if bands[i].Contains(score) {
			b := bands[i]
			return &b
		}
	}
	return nil
}
