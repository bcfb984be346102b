package handler

import (
	"net/http"
	"net/url"

	"github.com/hemangjain17/TruthLens-backend/internal/analyzer"
)

// AnalyzerHandler serves the optional article-analysis endpoint. It is
// only wired into the router when the analyzer is enabled; by default
// the route does not exist.
type AnalyzerHandler struct {
	analyzer analyzer.ContentAnalyzer
}

func NewAnalyzerHandler(a analyzer.ContentAnalyzer) *AnalyzerHandler {
	return &AnalyzerHandler{analyzer: a}
}

func (h *AnalyzerHandler) AnalyzeArticle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if u, err := url.Parse(req.URL); err != nil || u.Scheme == "" || u.Host == "" {
		writeError(w, http.StatusBadRequest, "invalid url")
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
