package crawl

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pulseai/modex"
)

// Heuristic blocklists for deciding whether a discovered link is likely to
// lead to documentation content. Links matching any list are skipped.
var (
	// excludedExtensions covers non-HTML assets and downloads.
	excludedExtensions = []string{
		".pdf", ".zip", ".exe", ".dmg", ".pkg", ".msi",
		".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp",
		".css", ".js", ".xml", ".rss", ".json", ".sh", ".py",
	}

	// excludedPaths covers common non-documentation site sections.
	excludedPaths = []string{
		"/blog", "/news", "/about", "/contact", "/careers", "/jobs",
		"/login", "/signup", "/signin", "/register", "/account", "/profile",
		"/privacy", "/terms", "/legal", "/policy", "/security",
		"/pricing", "/demo", "/webinar", "/events", "/case-studies",
		"/community", "/forum", "/company", "/press", "/brand", "/investors",
	}

	// excludedAnchors covers anchor text that signals navigation chrome
	// rather than documentation.
	excludedAnchors = []string{
		"log in", "sign in", "sign up", "register", "contact us", "about us",
		"privacy policy", "terms of service", "careers", "pricing", "request a demo",
		"download", "follow us", "facebook", "twitter", "linkedin", "youtube",
	}
)

// webURLPattern is a sanity check that a seed URL looks like a web URL.
var webURLPattern = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)

// IsRelevantLink reports whether a discovered link is likely to be a
// documentation page, based on its URL path and anchor text.
func IsRelevantLink(link modex.DiscoveredLink) bool {
	parsed, err := url.Parse(link.URL)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	path := strings.ToLower(parsed.Path)
	for _, ext := range excludedExtensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	for _, p := range excludedPaths {
		if strings.Contains(path, p) {
			return false
		}
	}

	anchor := strings.ToLower(link.Text)
	for _, a := range excludedAnchors {
		if strings.Contains(anchor, a) {
			return false
		}
	}

	return true
}

// ValidateSeedURL checks that a seed URL is a well-formed absolute web URL.
// Returns an EINVALID error describing the defect otherwise.
func ValidateSeedURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return modex.Errorf(modex.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return modex.Errorf(modex.EINVALID, "URL %q must use http or https", rawURL)
	}
	if parsed.Host == "" {
		return modex.Errorf(modex.EINVALID, "URL %q has no host", rawURL)
	}
	if !webURLPattern.MatchString(rawURL) {
		return modex.Errorf(modex.EINVALID, "URL %q does not look like a web URL", rawURL)
	}
	return nil
}
