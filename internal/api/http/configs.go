package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/formpulse/formpulse-engine/internal/scoring"
	"github.com/formpulse/formpulse-engine/internal/store"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

// POST /v1/config/validate
func ValidateConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg scoring.ScoreConfiguration
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(scoring.ValidateResultsConfig(&cfg))
	}
}

// PUT /v1/surveys/{surveyID}/config
// Saves even an invalid configuration; validation findings ride along in the
// response so authoring flows can decide whether to block publishing.
func PutSurveyConfigHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		if surveyID == "" {
			http.Error(w, "surveyID required", http.StatusBadRequest)
			return
		}
		var cfg scoring.ScoreConfiguration
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := st.PutConfig(r.Context(), surveyID, &cfg); err != nil {
			http.Error(w, "save config: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"survey_id":  surveyID,
			"validation": scoring.ValidateResultsConfig(&cfg),
		})
	}
}

// GET /v1/surveys/{surveyID}/config
func GetSurveyConfigHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		if surveyID == "" {
			http.Error(w, "surveyID required", http.StatusBadRequest)
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
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cfg)
	}
}

// PUT /v1/surveys/{surveyID}/logic
func PutSurveyRulesHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		if surveyID == "" {
			http.Error(w, "surveyID required", http.StatusBadRequest)
			return
		}
		var rules []survey.LogicRule
		if err := json.NewDecoder(r.Body).Decode(&rules); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := st.PutRules(r.Context(), surveyID, rules); err != nil {
			http.Error(w, "save rules: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
