package main

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugStrip   = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify derives the URL-safe identifier for a title: lowercase, strip
// everything that is not a letter, digit, underscore, whitespace or hyphen,
// then collapse whitespace and hyphen runs into single hyphens. The same
// title always yields the same slug; distinct titles may collide and the
// collision is not corrected.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugHyphens.ReplaceAllString(slug, "-")
	return slug
}

// Fixed filler used for every article. Content never varies by category.
var (
	placeholderIngredients = []string{
		"2 tbsp olive oil",
		"1 onion, finely chopped",
		"2 cloves garlic, minced",
		"400g canned chopped tomatoes",
		"Salt and black pepper to taste",
		"A handful of fresh herbs to garnish",
	}
	placeholderInstructions = []string{
		"Heat the olive oil in a large pan over medium heat.",
		"Add the onion and cook for 5 minutes until softened.",
		"Stir in the garlic and cook for another minute.",
		"Add the remaining ingredients and simmer for 15 minutes.",
		"Season to taste, garnish with fresh herbs and serve.",
	}
)

// BuildPlaceholderContent returns the fixed recipe body for a title.
func BuildPlaceholderContent(title string) RecipeContent {
	intro := fmt.Sprintf("%s is a simple, budget-friendly dish built from everyday pantry staples. "+
		"This version keeps the shopping list short and the washing up manageable, "+
		"so it slots easily into a busy weeknight without any special equipment.", title)

	return RecipeContent{
		Intro:        intro,
		Ingredients:  placeholderIngredients,
		Instructions: placeholderInstructions,
	}
}

const excerptLimit = 140

// excerptOf returns the first excerptLimit characters of the intro. Counted
// in runes so a multi-byte title near the boundary cannot split a character.
func excerptOf(intro string) string {
	runes := []rune(intro)
	if len(runes) <= excerptLimit {
		return intro
	}
	return string(runes[:excerptLimit])
}

// canonicalURL builds the public URL for a slug. Without a configured domain
// the path-only form is used.
func canonicalURL(domain, slug string) string {
	return strings.TrimSuffix(domain, "/") + "/articles/" + slug + ".html"
}
