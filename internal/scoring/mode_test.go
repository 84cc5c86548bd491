package scoring_test

import (
	"testing"

	"github.com/formpulse/formpulse-engine/internal/scoring"
)

func cats(ids ...string) []scoring.ScoreCategory {
	out := make([]scoring.ScoreCategory, 0, len(ids))
	for _, id := range ids {
		out = append(out, scoring.ScoreCategory{ID: id, Name: id})
	}
	return out
}

func TestResolveResultsMode(t *testing.T) {
	cases := []struct {
		name     string
		cfg      *scoring.ScoreConfiguration
		engineID string
		tags     []string
		want     scoring.ResultsMode
	}{
		{"nil config", nil, "", nil, scoring.ResultsModeNone},
		{"disabled", &scoring.ScoreConfiguration{}, "", nil, scoring.ResultsModeNone},
		{
			"engine id allow-list",
			&scoring.ScoreConfiguration{Enabled: true},
			"organizational-index", nil,
			scoring.ResultsModeIndex,
		},
		{
			"tag allow-list",
			&scoring.ScoreConfiguration{Enabled: true},
			"", []string{"quarterly", "5d"},
			scoring.ResultsModeIndex,
		},
		{
			"three canonical categories",
			&scoring.ScoreConfiguration{Enabled: true, Categories: cats("direction", "culture", "growth")},
			"", nil,
			scoring.ResultsModeIndex,
		},
		{
			"two canonical categories stay personal",
			&scoring.ScoreConfiguration{Enabled: true, Categories: cats("culture", "growth", "sleep-quality")},
			"", nil,
			scoring.ResultsModeSelfAssessment,
		},
		{
			"plain scored survey",
			&scoring.ScoreConfiguration{Enabled: true, Categories: cats("engagement")},
			"", nil,
			scoring.ResultsModeSelfAssessment,
		},
		{
			"config-level tags are honored",
			&scoring.ScoreConfiguration{Enabled: true, Tags: []string{"team-index"}},
			"", nil,
			scoring.ResultsModeIndex,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoring.ResolveResultsMode(tc.cfg, tc.engineID, tc.tags)
			if got != tc.want {
				t.Fatalf("ResolveResultsMode = %q, want %q", got, tc.want)
			}
		})
	}
}
