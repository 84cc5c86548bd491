package scoring

import "strings"

// ResultsMode tells the results screen which presentation to render.
type ResultsMode string

const (
	ResultsModeIndex          ResultsMode = "index"
	ResultsModeSelfAssessment ResultsMode = "self_assessment"
	ResultsModeNone           ResultsMode = "none"
)

// indexEngineIDs are the scoring engines whose surveys always render as an
// organizational index.
var indexEngineIDs = map[string]bool{
	"organizational-index": true,
	"engagement-index":     true,
	"team-index":           true,
	"five-dimensions":      true,
}

// indexTags mark a survey as an index survey regardless of its categories.
var indexTags = map[string]bool{
	"engagement":           true,
	"5d":                   true,
	"organizational-index": true,
	"team-index":           true,
}

// canonicalDimensionIDs are the five organizational-index dimensions.
var canonicalDimensionIDs = map[string]bool{
	"direction":  true,
	"leadership": true,
	"culture":    true,
	"execution":  true,
	"growth":     true,
}

// canonicalMatchThreshold is how many canonical dimension ids a category set
// must reuse before the survey counts as a broad organizational index rather
// than a personal self-assessment that borrowed one or two ids. Fixed at 3 of
// 5; do not re-derive.
const canonicalMatchThreshold = 3

// ResolveResultsMode classifies a scoring setup for the results screen.
// Decision order: disabled, engine-id allow-list, tag allow-list, canonical
// category overlap, then self-assessment as the default for anything scored.
func ResolveResultsMode(cfg *ScoreConfiguration, scoringEngineID string, tags []string) ResultsMode {
	if cfg == nil || !cfg.Enabled {
		return ResultsModeNone
	}
	if scoringEngineID == "" {
		scoringEngineID = cfg.ScoringEngineID
	}
	if len(tags) == 0 {
		tags = cfg.Tags
	}
	if indexEngineIDs[strings.TrimSpace(scoringEngineID)] {
		return ResultsModeIndex
	}
	for _, t := range tags {
		if indexTags[strings.ToLower(strings.TrimSpace(t))] {
			return ResultsModeIndex
		}
	}
	matches := 0
	for _, c := range cfg.Categories {
		if canonicalDimensionIDs[strings.ToLower(c.ID)] {
			matches++
		}
	}
	if matches >= canonicalMatchThreshold {
		return ResultsModeIndex
	}
	return ResultsModeSelfAssessment
}
