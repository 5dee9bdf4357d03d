package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	punctuationRegex    = regexp.MustCompile(`[^\w\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// NormalizedText is the tokenized form of one input blob. The normalized
// string is retained for phrase and substring matching; tokens drive
// keyword lookups.
type NormalizedText struct {
	Original   string
	Normalized string
	Tokens     []string
	TokenSet   map[string]bool
}

// IsEmpty reports whether the input carried no usable signal
func (n NormalizedText) IsEmpty() bool {
	return len(n.Tokens) == 0
}

// NormalizeText lower-cases the input, strips punctuation to spaces,
// collapses whitespace, and splits into word tokens. Whitespace-only input
// yields zero tokens.
func NormalizeText(s string) NormalizedText {
	normalized := strings.ToLower(s)
	normalized = punctuationRegex.ReplaceAllString(normalized, " ")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	tokens := strings.Fields(normalized)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	return NormalizedText{
		Original:   s,
		Normalized: normalized,
		Tokens:     tokens,
		TokenSet:   tokenSet,
	}
}
