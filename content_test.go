package main

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"basic", "Cheap Chicken Rice", "cheap-chicken-rice"},
		{"punctuation stripped", "Beans & Pasta!", "beans-pasta"},
		{"underscore kept", "taco_night Special", "taco_night-special"},
		{"surrounding whitespace", "  Tuna Wrap  ", "tuna-wrap"},
		{"hyphen runs collapsed", "One -- Two", "one-two"},
		{"digits kept", "5 Minute Oats", "5-minute-oats"},
		{"non-ascii stripped", "Café Crème", "caf-crme"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.title)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, result, tt.expected)
			}
			if again := Slugify(tt.title); again != result {
				t.Errorf("Slugify(%q) not deterministic: %q vs %q", tt.title, result, again)
			}
		})
	}
}

func TestBuildPlaceholderContent(t *testing.T) {
	content := BuildPlaceholderContent("Tuna Wrap")

	if !strings.Contains(content.Intro, "Tuna Wrap") {
		t.Errorf("intro does not mention the title: %q", content.Intro)
	}
	if len(content.Ingredients) != 6 {
		t.Errorf("got %d ingredients, want 6", len(content.Ingredients))
	}
	if len(content.Instructions) != 5 {
		t.Errorf("got %d instructions, want 5", len(content.Instructions))
	}

	// Content is fixed filler: same title in, same body out, and the lists do
	// not vary with the title either.
	again := BuildPlaceholderContent("Tuna Wrap")
	if again.Intro != content.Intro {
		t.Error("intro not deterministic")
	}
	other := BuildPlaceholderContent("Beans & Pasta")
	for i := range content.Ingredients {
		if other.Ingredients[i] != content.Ingredients[i] {
			t.Error("ingredients vary by title")
		}
	}
}

func TestExcerptOf(t *testing.T) {
	tests := []struct {
		name  string
		intro string
	}{
		{"short intro unchanged", "A short intro."},
		{"long intro truncated", strings.Repeat("pantry staples ", 20)},
		{"multi-byte safe", strings.Repeat("é", 200)},
		{"real intro", BuildPlaceholderContent("Egg Fried Rice").Intro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			excerpt := excerptOf(tt.intro)
			if got := len([]rune(excerpt)); got > excerptLimit {
				t.Errorf("excerpt is %d characters, want <= %d", got, excerptLimit)
			}
			if !strings.HasPrefix(tt.intro, excerpt) {
				t.Errorf("excerpt %q is not a prefix of the intro", excerpt)
			}
		})
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		slug     string
		expected string
	}{
		{"with domain", "https://plateuppro.example.com", "tuna-wrap", "https://plateuppro.example.com/articles/tuna-wrap.html"},
		{"trailing slash trimmed", "https://plateuppro.example.com/", "tuna-wrap", "https://plateuppro.example.com/articles/tuna-wrap.html"},
		{"no domain", "", "tuna-wrap", "/articles/tuna-wrap.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := canonicalURL(tt.domain, tt.slug); result != tt.expected {
				t.Errorf("canonicalURL(%q, %q) = %q, want %q", tt.domain, tt.slug, result, tt.expected)
			}
		})
	}
}
