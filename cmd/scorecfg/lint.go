package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formpulse/formpulse-engine/internal/logic"
	"github.com/formpulse/formpulse-engine/internal/scoring"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

var lintRulesFile string

var lintCmd = &cobra.Command{
	Use:   "lint <config.yaml>",
	Short: "Check a score configuration for inconsistencies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg scoring.ScoreConfiguration
		if err := readYAMLFile(args[0], &cfg); err != nil {
			return err
		}
		res := scoring.ValidateResultsConfig(&cfg)

		findings := append([]string(nil), res.Errors...)
		if lintRulesFile != "" {
			var rules []survey.LogicRule
			if err := readYAMLFile(lintRulesFile, &rules); err != nil {
				return err
			}
			findings = append(findings, lintRules(rules)...)
		}

		if len(findings) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "ok: no findings")
			return nil
		}
		for _, e := range findings {
			fmt.Fprintln(cmd.OutOrStdout(), "finding:", e)
		}
		return fmt.Errorf("%d finding(s)", len(findings))
	},
}

// lintRules parses every rule condition up front. At respondent time a bad
// condition silently evaluates to false; authoring time is when to hear
// about it.
func lintRules(rules []survey.LogicRule) []string {
	var findings []string
	for _, r := range rules {
		if _, err := logic.Parse(r.Condition); err != nil {
			findings = append(findings, fmt.Sprintf("rule %q: %v", r.ID, err))
		}
	}
	return findings
}

func init() {
	lintCmd.Flags().StringVar(&lintRulesFile, "rules", "", "Also lint a logic rules file")
}
