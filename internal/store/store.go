// Package store persists authored score configurations and logic rules per
// survey. It is a collaborator around the engine, not part of it: the engine
// packages never import this one and stay free of I/O.
package store

import (
	"context"

	"github.com/formpulse/formpulse-engine/internal/scoring"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

type Store interface {
	PutConfig(ctx context.Context, surveyID string, cfg *scoring.ScoreConfiguration) error
	GetConfig(ctx context.Context, surveyID string) (*scoring.ScoreConfiguration, error)
	PutRules(ctx context.Context, surveyID string, rules []survey.LogicRule) error
	GetRules(ctx context.Context, surveyID string) ([]survey.LogicRule, error)
}
