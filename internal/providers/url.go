package providers

import (
	"context"
	"net/url"
	"strings"

	"github.com/beacon-sh/beacon/internal/launcher"
)

// urlScore places URL results above files but below a well-matched app.
const urlScore = 80

// URLProvider offers to open queries that look like web addresses.
type URLProvider struct{}

// NewURLProvider creates the URL provider.
func NewURLProvider() *URLProvider {
	return &URLProvider{}
}

func (p *URLProvider) Name() string { return "url" }

func (p *URLProvider) Query(_ context.Context, text string, onResults func([]launcher.Result)) {
	target, ok := normalizeURL(strings.TrimSpace(text))
	if !ok {
		return
	}
	onResults([]launcher.Result{&URLResult{url: target}})
}

// normalizeURL accepts http(s) URLs and bare domains ("example.com",
// "example.com/path"), defaulting bare domains to https.
func normalizeURL(text string) (string, bool) {
	if text == "" || strings.ContainsAny(text, " \t") {
		return "", false
	}

	candidate := text
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}

	host := u.Hostname()
	if host == "" || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return "", false
	}
	// Bare words like "firefox" are app queries, not URLs. Require a
	// dot unless the scheme was typed out.
	if !strings.Contains(text, "://") && !strings.Contains(host, ".") {
		return "", false
	}
	return u.String(), true
}

// URLResult opens a URL in the default browser.
type URLResult struct {
	url string
}

func (r *URLResult) Title() string   { return r.url }
func (r *URLResult) Tooltip() string { return "Open in browser" }
func (r *URLResult) Score() int      { return urlScore }
func (r *URLResult) Icon() string    { return "↗" }

func (r *URLResult) Equals(other launcher.Result) bool {
	o, ok := other.(*URLResult)
	return ok && o.url == r.url
}

func (r *URLResult) Activate(ctx context.Context) error {
	return openTarget(ctx, r.url)
}
