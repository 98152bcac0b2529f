package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ancients-collective/winaudit/internal/catalog"
)

// ── levenshtein tests ────────────────────────────────────────────────

func TestLevenshtein_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 0, levenshtein("abc", "abc"))
}

func TestLevenshtein_EmptyStrings(t *testing.T) {
	assert.Equal(t, 0, levenshtein("", ""))
	assert.Equal(t, 3, levenshtein("abc", ""))
	assert.Equal(t, 3, levenshtein("", "abc"))
}

func TestLevenshtein_SingleEdit(t *testing.T) {
	assert.Equal(t, 1, levenshtein("cat", "car"))  // substitution
	assert.Equal(t, 1, levenshtein("cat", "cats")) // insertion
	assert.Equal(t, 1, levenshtein("cats", "cat")) // deletion
}

func TestLevenshtein_MultipleEdits(t *testing.T) {
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}

func TestLevenshtein_Symmetric(t *testing.T) {
	assert.Equal(t, levenshtein("latency", "network"), levenshtein("network", "latency"))
}

// ── suggestCategories tests ──────────────────────────────────────────

func TestSuggestCategories_CloseMatch(t *testing.T) {
	suggestions := suggestCategories("secrity", catalog.IDs())
	assert.Equal(t, "security", suggestions[0])
}

func TestSuggestCategories_ShortTypo(t *testing.T) {
	suggestions := suggestCategories("cpuu", catalog.IDs())
	assert.Contains(t, suggestions, "cpu")
}

func TestSuggestCategories_NoMatch(t *testing.T) {
	assert.Empty(t, suggestCategories("zzzzzzzzzzzzzzzzzzz", catalog.IDs()))
}

func TestSuggestCategories_MaxThree(t *testing.T) {
	suggestions := suggestCategories("aax", []string{"aaa", "aab", "aac", "aad", "aae"})
	assert.Len(t, suggestions, 3)
	assert.Equal(t, []string{"aaa", "aab", "aac"}, suggestions)
}

func TestSuggestCategories_ExactMatchExcluded(t *testing.T) {
	assert.NotContains(t, suggestCategories("gpu", catalog.IDs()), "gpu")
}
