package main

import (
	"bytes"
	_ "embed"
	"text/template"
)

// articleSubtitle is the fixed strapline shown under every page title.
const articleSubtitle = "A simple step-by-step recipe for busy weeknights."

// defaultThumbnail is used when settings carry no thumbnail URL.
const defaultThumbnail = "../images/logo.png"

// The template interpolates titles and content verbatim. Input comes from the
// operator's own config file; markup-significant characters in a title will
// land in the page unescaped.
//
//go:embed templates/article.html.tmpl
var articleTemplate string

var articleTmpl = template.Must(template.New("article").Parse(articleTemplate))

// PageData is the full set of fields the article template interpolates.
type PageData struct {
	Title        string
	SiteName     string
	Excerpt      string
	Subtitle     string
	Thumbnail    string
	Intro        string
	Ingredients  []string
	Instructions []string
	CanonicalURL string
	Year         int
}

// RenderArticlePage renders a complete standalone HTML document for one
// article.
func RenderArticlePage(page PageData) (string, error) {
	var buf bytes.Buffer
	if err := articleTmpl.Execute(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
