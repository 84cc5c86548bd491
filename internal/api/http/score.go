package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/formpulse/formpulse-engine/internal/scoring"
	"github.com/formpulse/formpulse-engine/internal/store"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

type scoreReq struct {
	Questions          []survey.Question           `json:"questions"`
	Answers            survey.AnswerSet            `json:"answers"`
	ScoreConfiguration *scoring.ScoreConfiguration `json:"score_configuration"`
	PreCalculated      map[string]float64          `json:"pre_calculated_scores,omitempty"`
}

type scoreResp struct {
	EvaluationID      string                        `json:"evaluation_id"`
	Enabled           bool                          `json:"enabled"`
	Categories        []scoring.CategoryScoreResult `json:"categories,omitempty"`
	OverallPercentage float64                       `json:"overall_percentage"`
	OverallBand       *scoring.ScoreBand            `json:"overall_band,omitempty"`
	CategoryBands     map[string]*scoring.ScoreBand `json:"category_bands,omitempty"`
	ResultsMode       scoring.ResultsMode           `json:"results_mode"`
}

// POST /v1/score
func ScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		writeScore(w, req)
	}
}

// POST /v1/surveys/{surveyID}/score  — config comes from the store.
func SurveyScoreHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		if surveyID == "" {
			http.Error(w, "surveyID required", http.StatusBadRequest)
			return
		}
		var req scoreReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		cfg, err := st.GetConfig(r.Context(), surveyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, "survey config not found", http.StatusNotFound)
				return
			}
			http.Error(w, "load config: "+err.Error(), http.StatusInternalServerError)
			return
		}
		req.ScoreConfiguration = cfg
		writeScore(w, req)
	}
}

// writeScore runs one full scoring pass: aggregate, resolve bands, classify
// the results mode. The engine never errors; a disabled configuration just
// produces an empty result.
func writeScore(w http.ResponseWriter, req scoreReq) {
	resp := scoreResp{
		EvaluationID: uuid.NewString(),
		ResultsMode:  scoring.ResolveResultsMode(req.ScoreConfiguration, "", nil),
	}

	results := scoring.CalculateScores(req.Questions, req.Answers, req.ScoreConfiguration, req.PreCalculated)
	if results != nil {
		resp.Enabled = true
		resp.Categories = results
		resp.OverallPercentage = scoring.OverallPercentage(req.Questions, req.Answers)
		resp.OverallBand = scoring.ResolveOverallBand(resp.OverallPercentage, req.ScoreConfiguration)
		resp.CategoryBands = scoring.ResolveCategoryBands(scoring.SnapshotsFromResults(results), req.ScoreConfiguration)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
