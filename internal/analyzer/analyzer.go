package analyzer

import "context"

// ContentAnalyzer produces a title and short excerpt for a remote
// article. It is an optional capability: the server runs without one,
// and no intake or query behavior depends on it. Implementations must
// not be assumed present unless explicitly enabled in configuration.
type ContentAnalyzer interface {
	Analyze(ctx context.Context, pageURL string) (*Result, error)
}

// Result is what an analyzer extracted from one page.
type Result struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}
