package main

import (
	"fmt"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// PreviewArticle renders the page for a title in memory and returns a
// terminal-friendly markdown rendition. Nothing is written to disk, so the
// canonical URL uses the path-only form.
func PreviewArticle(settings *Settings, title string) (string, error) {
	content := BuildPlaceholderContent(title)
	slug := Slugify(title)

	page := PageData{
		Title:        title,
		SiteName:     settings.SiteName,
		Excerpt:      excerptOf(content.Intro),
		Subtitle:     articleSubtitle,
		Thumbnail:    settings.ThumbnailURL,
		Intro:        content.Intro,
		Ingredients:  content.Ingredients,
		Instructions: content.Instructions,
		CanonicalURL: canonicalURL("", slug),
		Year:         time.Now().Year(),
	}
	if page.Thumbnail == "" {
		page.Thumbnail = defaultThumbnail
	}

	html, err := RenderArticlePage(page)
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting preview to markdown: %w", err)
	}

	return markdown, nil
}
