package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/formpulse/formpulse-engine/internal/scoring"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

// ErrNotFound is returned when a survey has no stored configuration.
var ErrNotFound = errors.New("survey config not found")

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutConfig(ctx context.Context, surveyID string, cfg *scoring.ScoreConfiguration) error {
	cj, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode score config: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO survey_configs (survey_id,score_config_json,logic_rules_json,updated_at)
		VALUES ($1,$2,'[]',$3)
		ON CONFLICT (survey_id) DO UPDATE SET score_config_json=EXCLUDED.score_config_json, updated_at=EXCLUDED.updated_at`,
		surveyID, string(cj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetConfig(ctx context.Context, surveyID string) (*scoring.ScoreConfiguration, error) {
	row := s.db.QueryRowContext(ctx, `SELECT score_config_json FROM survey_configs WHERE survey_id=$1`, surveyID)
	var cj string
	if err := row.Scan(&cj); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var cfg scoring.ScoreConfiguration
	if err := json.Unmarshal([]byte(cj), &cfg); err != nil {
		return nil, fmt.Errorf("decode score config: %w", err)
	}
	return &cfg, nil
}

func (s *SQLStore) PutRules(ctx context.Context, surveyID string, rules []survey.LogicRule) error {
	if rules == nil {
		rules = []survey.LogicRule{}
	}
	rj, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("encode logic rules: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `UPDATE survey_configs SET logic_rules_json=$1, updated_at=$2 WHERE survey_id=$3`,
		string(rj), time.Now().Unix(), surveyID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// no config row yet; rules can land first
		_, err = s.db.ExecContext(ctx, `INSERT INTO survey_configs (survey_id,score_config_json,logic_rules_json,updated_at)
			VALUES ($1,'{}',$2,$3)`,
			surveyID, string(rj), time.Now().Unix())
		return err
	}
	return nil
}

func (s *SQLStore) GetRules(ctx context.Context, surveyID string) ([]survey.LogicRule, error) {
	row := s.db.QueryRowContext(ctx, `SELECT logic_rules_json FROM survey_configs WHERE survey_id=$1`, surveyID)
	var rj string
	if err := row.Scan(&rj); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var rules []survey.LogicRule
	if err := json.Unmarshal([]byte(rj), &rules); err != nil {
		return nil, fmt.Errorf("decode logic rules: %w", err)
	}
	return rules, nil
}
