package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/formpulse/formpulse-engine/internal/logic"
	"github.com/formpulse/formpulse-engine/internal/store"
	"github.com/formpulse/formpulse-engine/internal/survey"
)

type logicEvalReq struct {
	Rules     []survey.LogicRule `json:"rules"`
	Questions []survey.Question  `json:"questions,omitempty"`
	Answers   survey.AnswerSet   `json:"answers"`
}

// POST /v1/logic/evaluate
func LogicEvaluateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logicEvalReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		writeLogicOutcome(w, req)
	}
}

// POST /v1/surveys/{surveyID}/logic/evaluate — rules come from the store.
func SurveyLogicHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		if surveyID == "" {
			http.Error(w, "surveyID required", http.StatusBadRequest)
			return
		}
		var req logicEvalReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		rules, err := st.GetRules(r.Context(), surveyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, "survey rules not found", http.StatusNotFound)
				return
			}
			http.Error(w, "load rules: "+err.Error(), http.StatusInternalServerError)
			return
		}
		req.Rules = rules
		writeLogicOutcome(w, req)
	}
}

func writeLogicOutcome(w http.ResponseWriter, req logicEvalReq) {
	out := logic.EvaluateRules(req.Rules, logic.Context{Questions: req.Questions, Answers: req.Answers})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
