package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// excerptLimit caps the returned article text.
const excerptLimit = 500

// maxPageBytes caps how much of a fetched page is read.
const maxPageBytes = 4 << 20

// ArticleScraper fetches a page over HTTP and extracts its readable
// content. It is the one concrete ContentAnalyzer; no vendor AI client
// is involved.
type ArticleScraper struct {
	client *http.Client
}

func NewArticleScraper() *ArticleScraper {
	return &ArticleScraper{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *ArticleScraper) Analyze(ctx context.Context, pageURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// Browser-like headers; some sites return 406 to the default Go agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch article: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read article body: %w", err)
	}

	parsed, _ := url.Parse(pageURL)
	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = fallbackTitle(body)
	}

	excerpt := strings.TrimSpace(article.TextContent)
	if runes := []rune(excerpt); len(runes) > excerptLimit {
		excerpt = string(runes[:excerptLimit])
	}

	return &Result{Title: title, Excerpt: excerpt}, nil
}

// fallbackTitle pulls the <title> tag when readability finds none.
func fallbackTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
