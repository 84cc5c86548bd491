package http

import (
	"encoding/json"
	"net/http"

	"github.com/formpulse/formpulse-engine/internal/scoring"
)

type resultsModeReq struct {
	ScoreConfiguration *scoring.ScoreConfiguration `json:"score_configuration"`
	ScoringEngineID    string                      `json:"scoring_engine_id,omitempty"`
	Tags               []string                    `json:"tags,omitempty"`
}

// POST /v1/results-mode
func ResultsModeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resultsModeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		mode := scoring.ResolveResultsMode(req.ScoreConfiguration, req.ScoringEngineID, req.Tags)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]scoring.ResultsMode{"mode": mode})
	}
}
