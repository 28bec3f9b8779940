package goquery_test

import (
	"testing"

	"github.com/pulseai/modex"
	"github.com/pulseai/modex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_RemovesBoilerplate(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Billing Docs</title></head><body>
		<nav><a href="/home">Home</a></nav>
		<div class="sidebar">Table of contents</div>
		<main><h1>Billing</h1><p>Manage billing here.</p></main>
		<script>trackPageView()</script>
		<footer>Copyright</footer>
	</body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Billing Docs", result.Title)
	assert.Contains(t, result.ContentHTML, "Manage billing here.")
	assert.NotContains(t, result.ContentHTML, "Home")
	assert.NotContains(t, result.ContentHTML, "Table of contents")
	assert.NotContains(t, result.ContentHTML, "trackPageView")
	assert.NotContains(t, result.ContentHTML, "Copyright")
}

func TestExtractor_Extract_PrefersLargestContentCandidate(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<article><p>tiny</p></article>
		<div class="content"><h2>Payments</h2><p>A much longer body of documentation text about payments.</p></div>
	</body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "payments")
	assert.NotContains(t, result.ContentHTML, "tiny")
}

func TestExtractor_Extract_FallsBackToBody(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>Plain page without semantic containers.</p></body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Plain page")
}

func TestExtractor_Extract_StripsComments(t *testing.T) {
	t.Parallel()

	html := `<html><body><main><p>Visible.</p><!-- hidden editorial note --></main></body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "hidden editorial note")
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := goquery.NewExtractor().Extract("   ")

	require.Error(t, err)
	assert.Equal(t, modex.EINVALID, modex.ErrorCode(err))
}

func TestExtractor_Extract_NoContent(t *testing.T) {
	t.Parallel()

	html := `<html><body><nav>only navigation</nav></body></html>`

	_, err := goquery.NewExtractor().Extract(html)

	require.Error(t, err)
	assert.Equal(t, modex.ENOTFOUND, modex.ErrorCode(err))
}
