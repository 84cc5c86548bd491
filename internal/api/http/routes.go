package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/formpulse/formpulse-engine/internal/store"
)

// Mount attaches the v1 evaluation surfaces. Store-backed routes are only
// mounted when a store is supplied; the inline routes are fully stateless.
func Mount(r chi.Router, st store.Store) {
	r.Post("/score", ScoreHandler())
	r.Post("/bands/overall", OverallBandHandler())
	r.Post("/bands/categories", CategoryBandsHandler())
	r.Post("/results-mode", ResultsModeHandler())
	r.Post("/logic/evaluate", LogicEvaluateHandler())
	r.Post("/config/validate", ValidateConfigHandler())

	if st == nil {
		return
	}
	r.Route("/surveys/{surveyID}", func(sr chi.Router) {
		sr.Put("/config", PutSurveyConfigHandler(st))
		sr.Get("/config", GetSurveyConfigHandler(st))
		sr.Put("/logic", PutSurveyRulesHandler(st))
		sr.Post("/score", SurveyScoreHandler(st))
		sr.Post("/logic/evaluate", SurveyLogicHandler(st))
	})
}
