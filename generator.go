package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Generator runs the content pipeline for one site tree. It never modifies or
// removes previously generated output; the index only grows.
type Generator struct {
	Settings *Settings
	SiteDir  string

	// NewID and Now are injection points for tests. NewGenerator wires
	// uuid-based ids and the wall clock.
	NewID func() string
	Now   func() time.Time
}

// NewGenerator creates a generator rooted at siteDir.
func NewGenerator(settings *Settings, siteDir string) *Generator {
	return &Generator{
		Settings: settings,
		SiteDir:  siteDir,
		NewID:    uuid.NewString,
		Now:      time.Now,
	}
}

func (g *Generator) articlesDir() string {
	return filepath.Join(g.SiteDir, g.Settings.ArticlesDir)
}

func (g *Generator) indexPath() string {
	return filepath.Join(g.SiteDir, g.Settings.IndexPath)
}

// Run executes the full pipeline against the given source config file:
// ensure output directories, load or seed the config, load the prior index,
// generate a page per new title, then persist the grown index once.
func (g *Generator) Run(configPath string) (*Summary, error) {
	if err := os.MkdirAll(g.articlesDir(), 0755); err != nil {
		return nil, fmt.Errorf("creating articles directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(g.indexPath()), 0755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	config, err := LoadOrInitSourceConfig(configPath)
	if err != nil {
		return nil, err
	}

	records := g.LoadExistingIndex()
	seen := make(map[string]bool, len(records))
	for _, record := range records {
		seen[record.Slug] = true
	}

	total := 0
	for _, category := range config.Categories {
		total += len(category.Items)
	}
	log.Infof("Processing %d items...", total)

	summary := &Summary{}
	n := 0
	for _, category := range config.Categories {
		name := category.Name
		if name == "" {
			name = "General"
		}
		for _, title := range category.Items {
			n++
			log.Infof("[%d/%d] Processing: %s", n, total, title)

			slug := Slugify(title)
			if seen[slug] {
				log.Infof("Skipping %q: article exists (%s)", title, slug)
				summary.Skipped = append(summary.Skipped, title)
				continue
			}

			record, err := g.generateArticle(config.Domain, name, title, slug)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
			seen[slug] = true
			summary.Generated++
			log.Infof("✓ Generated: %s", record.Path)
		}
	}

	if err := g.writeIndex(records); err != nil {
		return nil, err
	}
	summary.Total = len(records)

	log.Infof("Done: %d generated, %d skipped, %d total in index",
		summary.Generated, len(summary.Skipped), summary.Total)
	return summary, nil
}

// generateArticle renders and writes one page and returns its index record.
func (g *Generator) generateArticle(domain, category, title, slug string) (ArticleRecord, error) {
	content := BuildPlaceholderContent(title)
	excerpt := excerptOf(content.Intro)

	page := PageData{
		Title:        title,
		SiteName:     g.Settings.SiteName,
		Excerpt:      excerpt,
		Subtitle:     articleSubtitle,
		Thumbnail:    g.Settings.ThumbnailURL,
		Intro:        content.Intro,
		Ingredients:  content.Ingredients,
		Instructions: content.Instructions,
		CanonicalURL: canonicalURL(domain, slug),
		Year:         g.Now().Year(),
	}
	if page.Thumbnail == "" {
		page.Thumbnail = defaultThumbnail
	}

	html, err := RenderArticlePage(page)
	if err != nil {
		return ArticleRecord{}, fmt.Errorf("rendering %s: %w", slug, err)
	}

	filename := filepath.Join(g.articlesDir(), slug+".html")
	if err := os.WriteFile(filename, []byte(html), 0644); err != nil {
		return ArticleRecord{}, fmt.Errorf("writing article %s: %w", filename, err)
	}

	return ArticleRecord{
		ID:       g.NewID(),
		Slug:     slug,
		Title:    title,
		Category: category,
		Excerpt:  excerpt,
		Path:     "articles/" + slug + ".html",
		TS:       g.Now().UnixMilli(),
	}, nil
}

// LoadExistingIndex returns the prior index records. A missing or unreadable
// index starts the run from an empty list; corruption here is tolerated,
// unlike the source config.
func (g *Generator) LoadExistingIndex() []ArticleRecord {
	data, err := os.ReadFile(g.indexPath())
	if err != nil {
		return nil
	}

	var index ArticlesIndex
	if err := json.Unmarshal(data, &index); err != nil {
		log.Warnf("Ignoring unreadable index %s: %v", g.indexPath(), err)
		return nil
	}

	return index.List
}

// writeIndex persists the accumulated records, replacing the previous index
// file. Runs once, at the very end of a run.
func (g *Generator) writeIndex(records []ArticleRecord) error {
	if records == nil {
		records = []ArticleRecord{}
	}
	index := ArticlesIndex{TS: g.Now().UnixMilli(), List: records}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(g.indexPath(), data, 0644); err != nil {
		return fmt.Errorf("writing index %s: %w", g.indexPath(), err)
	}

	return nil
}
