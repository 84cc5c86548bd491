package scoring

import (
	"fmt"
	"sort"
)

// ValidateResultsConfig checks a score configuration for internal
// consistency: inverted band ranges, overlapping bands within one band-set,
// and results-screen references to categories that don't exist.
//
// The check is advisory. It never fails the caller; it returns findings and
// lets publishing flows decide whether to block. The band resolver keeps
// working against an invalid configuration using first-match order.
func ValidateResultsConfig(cfg *ScoreConfiguration) ValidationResult {
	res := ValidationResult{Valid: true, Errors: []string{}}
	if cfg == nil {
		return res
	}

	addAll(&res, checkBandSet("score_ranges", cfg.ScoreRanges))

	known := map[string]bool{}
	for _, c := range cfg.Categories {
		known[c.ID] = true
	}

	if rs := cfg.ResultsScreen; rs != nil {
		addAll(&res, checkBandSet("results_screen.score_ranges", rs.ScoreRanges))
		for _, cc := range rs.Categories {
			if !known[cc.CategoryID] {
				add(&res, fmt.Sprintf("results_screen references unknown category %q", cc.CategoryID))
			}
			if cc.BandsMode == BandsCustom {
				addAll(&res, checkBandSet(fmt.Sprintf("results_screen category %q bands", cc.CategoryID), cc.Bands))
			}
		}
	}
	return res
}

// checkBandSet validates one band list. Category-tagged bands inside a mixed
// list form their own band-set per category, so a "quality" band may overlap
// a "culture" band without complaint.
func checkBandSet(setName string, bands []ScoreBand) []string {
	var errs []string
	byCategory := map[string][]ScoreBand{}
	for _, b := range bands {
		if b.Min > b.Max {
			errs = append(errs, fmt.Sprintf("%s: band %q has min %g greater than max %g", setName, bandName(b), b.Min, b.Max))
		}
		byCategory[b.Category] = append(byCategory[b.Category], b)
	}

	cats := make([]string, 0, len(byCategory))
	for c := range byCategory {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	for _, c := range cats {
		set := byCategory[c]
		for i := 0; i < len(set); i++ {
			for j := i + 1; j < len(set); j++ {
				if bandsOverlap(set[i], set[j]) {
					errs = append(errs, fmt.Sprintf("%s: bands %q [%g,%g] and %q [%g,%g] overlap",
						setName, bandName(set[i]), set[i].Min, set[i].Max, bandName(set[j]), set[j].Min, set[j].Max))
				}
			}
		}
	}
	return errs
}

func bandsOverlap(a, b ScoreBand) bool {
	return a.Min <= b.Max && b.Min <= a.Max
}

func bandName(b ScoreBand) string {
	if b.Label != "" {
		return b.Label
	}
	return b.ID
}

func add(res *ValidationResult, msg string) {
	res.Valid = false
	res.Errors = append(res.Errors, msg)
}

func addAll(res *ValidationResult, msgs []string) {
	for _, m := range msgs {
		add(res, m)
	}
}
