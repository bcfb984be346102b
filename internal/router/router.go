package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/hemangjain17/TruthLens-backend/internal/handler"
	mw "github.com/hemangjain17/TruthLens-backend/internal/middleware"
)

// New wires the HTTP surface. analyzerH may be nil; the analyze route is
// registered only when the capability is enabled.
func New(mediaH *handler.MediaHandler, analyzerH *handler.AnalyzerHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Post("/upload-media", mediaH.UploadMedia)
	r.Get("/get-latest-data", mediaH.GetLatestData)
	r.Get("/get-top-data", mediaH.GetTopData)

	if analyzerH != nil {
		r.Post("/analyze-article", analyzerH.AnalyzeArticle)
	}

	return r
}
