// Package goquery implements HTML preprocessing: boilerplate removal and
// link extraction over parsed documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pulseai/modex"
	"golang.org/x/net/html"
)

// Ensure Extractor implements modex.ContentExtractor at compile time.
var _ modex.ContentExtractor = (*Extractor)(nil)

// irrelevantTags are removed wholesale before content selection.
var irrelevantTags = []string{
	"script", "style", "noscript", "footer", "nav", "aside",
	"form", "iframe", "img", "svg", "button", "input", "select", "textarea",
}

// irrelevantClassesIDs identify non-content sections by common class or id
// names. Accessibility helpers are included because they often contain
// hidden text that pollutes extraction.
var irrelevantClassesIDs = []string{
	"header", "footer", "navbar", "navigation", "sidebar", "ads",
	"related-articles", "comments", "feedback", "breadcrumb",
	"skip-link", "sr-only", "visually-hidden",
	"toc", "social-share", "print-button",
}

// mainContentClasses mark likely main-content containers.
var mainContentClasses = []string{
	"main-content", "article-body", "content", "post-content", "documentation-content",
}

// Extractor isolates main content from documentation HTML using tag and
// class heuristics.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND if no textual content survives cleaning; callers may
// then try a different extractor.
func (e *Extractor) Extract(rawHTML string) (*modex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, modex.Errorf(modex.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, modex.Errorf(modex.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, tag := range irrelevantTags {
		doc.Find(tag).Remove()
	}
	for _, name := range irrelevantClassesIDs {
		doc.Find("." + name).Remove()
		doc.Find("#" + name).Remove()
	}
	for _, node := range doc.Nodes {
		removeComments(node)
	}

	main := selectMainContent(doc)
	if strings.TrimSpace(main.Text()) == "" {
		return nil, modex.Errorf(modex.ENOTFOUND, "no main content found")
	}

	contentHTML, err := goquery.OuterHtml(main)
	if err != nil {
		return nil, err
	}

	return &modex.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

// selectMainContent picks the candidate container with the most text,
// preferring semantic tags and common content classes, falling back to the
// body.
func selectMainContent(doc *goquery.Document) *goquery.Selection {
	var candidates []*goquery.Selection

	doc.Find("main, article").Each(func(_ int, sel *goquery.Selection) {
		candidates = append(candidates, sel)
	})
	for _, class := range mainContentClasses {
		doc.Find("div." + class).Each(func(_ int, sel *goquery.Selection) {
			candidates = append(candidates, sel)
		})
	}

	if len(candidates) > 0 {
		best := candidates[0]
		bestLen := len(strings.TrimSpace(best.Text()))
		for _, c := range candidates[1:] {
			if l := len(strings.TrimSpace(c.Text())); l > bestLen {
				best, bestLen = c, l
			}
		}
		return best
	}

	if body := doc.Find("body"); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// removeComments strips comment nodes, which goquery's element selections
// cannot reach.
func removeComments(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
			continue
		}
		removeComments(c)
	}
}
