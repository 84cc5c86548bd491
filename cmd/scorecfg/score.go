package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formpulse/formpulse-engine/internal/scoring"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

// scoreInput is the file layout `scorecfg score` consumes: one document with
// the survey's questions, one response's answers, and the score config.
type scoreInput struct {
	Questions          []survey.Question           `yaml:"questions"`
	Answers            survey.AnswerSet            `yaml:"answers"`
	ScoreConfiguration *scoring.ScoreConfiguration `yaml:"score_configuration"`
	PreCalculated      map[string]float64          `yaml:"pre_calculated_scores"`
}

var scoreCmd = &cobra.Command{
	Use:   "score <input.yaml>",
	Short: "Run one response through the scoring engine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in scoreInput
		if err := readYAMLFile(args[0], &in); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		results := scoring.CalculateScores(in.Questions, in.Answers, in.ScoreConfiguration, in.PreCalculated)
		if results == nil {
			fmt.Fprintln(out, "scoring disabled")
			return nil
		}

		pct := scoring.OverallPercentage(in.Questions, in.Answers)
		fmt.Fprintf(out, "overall: %.1f%%", pct)
		if band := scoring.ResolveOverallBand(pct, in.ScoreConfiguration); band != nil {
			fmt.Fprintf(out, "  band: %s", band.Label)
		}
		fmt.Fprintln(out)

		bands := scoring.ResolveCategoryBands(scoring.SnapshotsFromResults(results), in.ScoreConfiguration)
		for _, r := range results {
			fmt.Fprintf(out, "%-24s %g / %g", r.CategoryName, r.Score, r.MaxScore)
			if b := bands[r.CategoryID]; b != nil {
				fmt.Fprintf(out, "  band: %s", b.Label)
			}
			fmt.Fprintln(out)
		}

		mode := scoring.ResolveResultsMode(in.ScoreConfiguration, "", nil)
		fmt.Fprintf(out, "results mode: %s\n", mode)
		return nil
	},
}
