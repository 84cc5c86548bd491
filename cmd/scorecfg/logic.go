package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formpulse/formpulse-engine/internal/logic"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

type logicInput struct {
	Rules     []survey.LogicRule `yaml:"rules"`
	Questions []survey.Question  `yaml:"questions"`
	Answers   survey.AnswerSet   `yaml:"answers"`
}

var logicCmd = &cobra.Command{
	Use:   "logic <input.yaml>",
	Short: "Evaluate logic rules against an answer snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in logicInput
		if err := readYAMLFile(args[0], &in); err != nil {
			return err
		}

		out := logic.EvaluateRules(in.Rules, logic.Context{Questions: in.Questions, Answers: in.Answers})
		w := cmd.OutOrStdout()
		if !out.Matched {
			fmt.Fprintln(w, "no rule matched")
			return nil
		}
		fmt.Fprintf(w, "matched rule %s: action=%s", out.Rule.ID, out.Action)
		if out.NextQuestionID != "" {
			fmt.Fprintf(w, " next=%s", out.NextQuestionID)
		}
		fmt.Fprintln(w)
		return nil
	},
}
