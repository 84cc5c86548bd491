package http

import (
	"encoding/json"
	"net/http"

	"github.com/formpulse/formpulse-engine/internal/scoring"
)

type overallBandReq struct {
	Percentage         float64                     `json:"percentage"`
	ScoreConfiguration *scoring.ScoreConfiguration `json:"score_configuration"`
}

// POST /v1/bands/overall
func OverallBandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req overallBandReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		band := scoring.ResolveOverallBand(req.Percentage, req.ScoreConfiguration)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]*scoring.ScoreBand{"band": band})
	}
}

type categoryBandsReq struct {
	Categories         []scoring.CategorySnapshot  `json:"categories"`
	ScoreConfiguration *scoring.ScoreConfiguration `json:"score_configuration"`
}

// POST /v1/bands/categories
func CategoryBandsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryBandsReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		bands := scoring.ResolveCategoryBands(req.Categories, req.ScoreConfiguration)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]map[string]*scoring.ScoreBand{"bands": bands})
	}
}
