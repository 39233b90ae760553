package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gaurav-prasanna/mdstrip/core"
	"github.com/gaurav-prasanna/mdstrip/core/output"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "mdstrip/1.0 (https://github.com/gaurav-prasanna/mdstrip)"
	maxBodyBytes     = 10 << 20
)

// binaryExtensions are URL paths that never hold markdown or HTML.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// URLSource fetches a page over HTTP.
type URLSource struct {
	URL    string
	client *http.Client
}

// NewURL creates a URLSource with a sensible timeout.
func NewURL(rawURL string) (*URLSource, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}
	if ext := strings.ToLower(path.Ext(parsed.Path)); binaryExtensions[ext] {
		return nil, fmt.Errorf("unsupported URL: %s points to a %s file, not text", rawURL, ext)
	}
	return &URLSource{
		URL:    rawURL,
		client: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Read retrieves the page and decodes it using the response charset.
func (s *URLSource) Read(ctx context.Context) (*core.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/markdown,text/html,application/xhtml+xml,text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, s.URL)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := decode(raw, contentType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.URL, err)
	}

	return &core.Document{
		Name:   output.NameFromURL(s.URL),
		Origin: s.URL,
		Format: formatFromContentType(contentType),
		Body:   body,
	}, nil
}
