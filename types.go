package main

// SourceConfig is the root configuration driving a generate run.
type SourceConfig struct {
	Domain     string     `json:"domain"`
	Categories []Category `json:"categories"`
}

// Category groups recipe titles under a display name.
type Category struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// ArticleRecord is one persisted index entry per generated article.
type ArticleRecord struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Path     string `json:"path"`
	TS       int64  `json:"ts"`
}

// ArticlesIndex is the aggregate file consumed by the front-end listing page.
// The list is append-only across runs.
type ArticlesIndex struct {
	TS   int64           `json:"ts"`
	List []ArticleRecord `json:"list"`
}

// RecipeContent is the fixed placeholder body of an article.
type RecipeContent struct {
	Intro        string
	Ingredients  []string
	Instructions []string
}

// Summary reports the outcome of a generate run.
type Summary struct {
	Generated int
	Skipped   []string // titles skipped because their slug was already indexed
	Total     int      // records in the index after the run
}
