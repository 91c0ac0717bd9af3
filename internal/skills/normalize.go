// Package skills provides skill-name normalization and skill extraction from
// raw profile and job records.
package skills

import (
	"regexp"
	"strings"
)

// Normalization reduces free-text skill names to a canonical matching key.
// Steps, in order: lower-case, possessive strip, alias substitution, prefix
// strip, suffix strip, stop-word removal, whitespace collapse, token dedup.
// The result is the key two skills are compared on, so the function must be
// pure, deterministic, and idempotent. Aliases run before the qualifier
// strip so an alias expansion ending in a strippable token ("oop" ->
// "object-oriented programming") reduces the same way on every pass.

var prefixPattern = regexp.MustCompile(`^(knowledge of|experience with|proficiency in|skills in|understanding of)\s+`)

var suffixPattern = regexp.MustCompile(`\s+(basics|fundamentals|framework|library|development|programming|language)$`)

var possessivePattern = regexp.MustCompile(`'s\b`)

type aliasRule struct {
	pattern   *regexp.Regexp
	canonical string
}

// Phrase aliases run before single-token aliases so multi-word variants like
// "react js" are not corrupted by the shorter "js" rule first.
var phraseAliases = []aliasRule{
	{regexp.MustCompile(`\breact\s*js\b`), "react"},
	{regexp.MustCompile(`\bangular\s*js\b`), "angular"},
	{regexp.MustCompile(`\bvue\s*js\b`), "vue"},
	{regexp.MustCompile(`\bc\s*\+\+`), "c++"},
	{regexp.MustCompile(`\bc\s*#`), "c#"},
	{regexp.MustCompile(`\.net\s+core\b`), ".net core"},
	{regexp.MustCompile(`\bazure\s+devops\b`), "azure devops"},
	{regexp.MustCompile(`\baws\s+services\b`), "aws"},
	{regexp.MustCompile(`\bcloud\s+technologies\b`), "cloud computing"},
	{regexp.MustCompile(`\brest\s+api\b`), "rest"},
	{regexp.MustCompile(`\bsql\s+database\b`), "sql"},
	{regexp.MustCompile(`\bnosql\s+databases?\b`), "nosql"},
}

var tokenAliases = []aliasRule{
	// The leading capture keeps "js" from matching inside "node.js", where
	// the dot would otherwise count as a word boundary.
	{regexp.MustCompile(`(^|[^.\w])js\b`), "${1}javascript"},
	{regexp.MustCompile(`\becmascript\b`), "javascript"},
	{regexp.MustCompile(`\bts\b`), "typescript"},
	{regexp.MustCompile(`\bpy\b`), "python"},
	{regexp.MustCompile(`\bnodejs\b`), "node.js"},
	{regexp.MustCompile(`\bml\b`), "machine learning"},
	{regexp.MustCompile(`\bai\b`), "artificial intelligence"},
	{regexp.MustCompile(`\bnlp\b`), "natural language processing"},
	{regexp.MustCompile(`\bdb\b`), "database"},
	{regexp.MustCompile(`\brdbms\b`), "relational database"},
	{regexp.MustCompile(`\bgcp\b`), "google cloud platform"},
	{regexp.MustCompile(`\boop\b`), "object-oriented programming"},
	{regexp.MustCompile(`\bfp\b`), "functional programming"},
	{regexp.MustCompile(`\bui\b`), "user interface"},
	{regexp.MustCompile(`\bux\b`), "user experience"},
}

var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "a": true, "an": true,
	"in": true, "on": true, "with": true, "using": true, "for": true, "to": true,
}

// Normalize reduces a skill name to its canonical lowercase form.
// Two skills name the same capability iff their normalized forms are equal
// (plus the substring fallback the matcher applies on top).
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ""
	}

	normalized = possessivePattern.ReplaceAllString(normalized, "")

	for _, rule := range phraseAliases {
		normalized = rule.pattern.ReplaceAllString(normalized, rule.canonical)
	}
	for _, rule := range tokenAliases {
		normalized = rule.pattern.ReplaceAllString(normalized, rule.canonical)
	}

	// Strip stacked qualifier phrases ("experience with python programming
	// language" loses both trailing tokens).
	for {
		stripped := prefixPattern.ReplaceAllString(normalized, "")
		stripped = suffixPattern.ReplaceAllString(stripped, "")
		if stripped == normalized {
			break
		}
		normalized = stripped
	}

	words := strings.Fields(normalized)
	seen := make(map[string]bool, len(words))
	kept := words[:0]
	for _, word := range words {
		if stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		kept = append(kept, word)
	}

	return strings.Join(kept, " ")
}
