// scorecfg is the authoring-side companion tool: it lints score
// configurations and runs scoring or logic passes against answer files
// without standing up scoringd.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var rootCmd = &cobra.Command{
	Use:   "scorecfg",
	Short: "Lint and exercise survey score configurations",
	Long: `scorecfg works on YAML (or JSON) files holding a survey's score
configuration, questions, answers and logic rules. Use it to catch band
overlaps and dangling category references before publishing, or to replay a
response through the scoring engine from the command line.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(lintCmd, scoreCmd, logicCmd)
}

// readYAMLFile decodes one YAML/JSON document into out.
func readYAMLFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
