package scoring

// ScoreCategory is a named bucket scorable questions contribute to.
type ScoreCategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ScoreBand is a closed interval [Min,Max] with pre-authored interpretation
// text. Category, when set, scopes the band to one category's band-set.
type ScoreBand struct {
	ID             string  `json:"id,omitempty" yaml:"id,omitempty"`
	Min            float64 `json:"min" yaml:"min"`
	Max            float64 `json:"max" yaml:"max"`
	Label          string  `json:"label" yaml:"label"`
	Interpretation string  `json:"interpretation,omitempty" yaml:"interpretation,omitempty"`
	Category       string  `json:"category,omitempty" yaml:"category,omitempty"`
}

// Contains reports whether score falls inside the band (inclusive ends).
func (b ScoreBand) Contains(score float64) bool {
	return score >= b.Min && score <= b.Max
}

// BandsMode selects where a category's bands on the results screen come from.
type BandsMode string

const (
	BandsInherit BandsMode = "inherit"
	BandsCustom  BandsMode = "custom"
)

// ResultsCategoryConfig overrides band presentation for one category.
type ResultsCategoryConfig struct {
	CategoryID string      `json:"category_id" yaml:"category_id"`
	BandsMode  BandsMode   `json:"bands_mode,omitempty" yaml:"bands_mode,omitempty"`
	Bands      []ScoreBand `json:"bands,omitempty" yaml:"bands,omitempty"`
}

// ResultsScreen carries presentation-side overrides. Its score ranges take
// precedence over the configuration-level ones when populated.
type ResultsScreen struct {
	ScoreRanges []ScoreBand             `json:"score_ranges,omitempty" yaml:"score_ranges,omitempty"`
	Categories  []ResultsCategoryConfig `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// ScoreConfiguration is the single authoritative scoring input, authored once
// per survey and read-only while scoring.
type ScoreConfiguration struct {
	Enabled         bool            `json:"enabled" yaml:"enabled"`
	ScoringEngineID string          `json:"scoring_engine_id,omitempty" yaml:"scoring_engine_id,omitempty"`
	Tags            []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Categories      []ScoreCategory `json:"categories,omitempty" yaml:"categories,omitempty"`
	ScoreRanges     []ScoreBand     `json:"score_ranges,omitempty" yaml:"score_ranges,omitempty"`
	ResultsScreen   *ResultsScreen  `json:"results_screen,omitempty" yaml:"results_screen,omitempty"`
}

// CategoryScoreResult is the per-category outcome of one scoring pass.
// Recomputed fresh per response; never persisted by the engine.
type CategoryScoreResult struct {
	CategoryID     string  `json:"category_id" yaml:"category_id"`
	CategoryName   string  `json:"category_name" yaml:"category_name"`
	Score          float64 `json:"score" yaml:"score"`
	MaxScore       float64 `json:"max_score" yaml:"max_score"`
	Interpretation string  `json:"interpretation,omitempty" yaml:"interpretation,omitempty"`
}

// Percentage is Score over MaxScore on a 0-100 scale; 0 when MaxScore is 0.
func (r CategoryScoreResult) Percentage() float64 {
	if r.MaxScore <= 0 {
		return 0
	}
	return r.Score / r.MaxScore * 100
}

// ValidationResult is the advisory outcome of a configuration check.
type ValidationResult struct {
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors" yaml:"errors"`
}
