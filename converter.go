package modex

// Converter renders clean HTML as structured text: markdown blocks with
// "#"-prefixed headings, "- "-prefixed list items, and pipe-delimited table
// rows, separated by blank lines. This is the text shape the extraction
// pipeline consumes.
type Converter interface {
	Convert(html string) (string, error)
}
