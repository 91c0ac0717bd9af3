package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_BasicCleanup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Python", expected: "python"},
		{name: "trims whitespace", input: "  Go  ", expected: "go"},
		{name: "collapses inner whitespace", input: "machine   learning", expected: "machine learning"},
		{name: "empty input", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_PrefixAndSuffixStripping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "knowledge of prefix", input: "Knowledge of Python", expected: "python"},
		{name: "experience with prefix", input: "experience with Docker", expected: "docker"},
		{name: "proficiency in prefix", input: "Proficiency in SQL", expected: "sql"},
		{name: "skills in prefix", input: "skills in React", expected: "react"},
		{name: "understanding of prefix", input: "understanding of Kubernetes", expected: "kubernetes"},
		{name: "programming suffix", input: "Python programming", expected: "python"},
		{name: "language suffix", input: "Go language", expected: "go"},
		{name: "framework suffix", input: "Django framework", expected: "django"},
		{name: "basics suffix", input: "HTML basics", expected: "html"},
		{name: "fundamentals suffix", input: "CSS fundamentals", expected: "css"},
		{name: "stacked suffixes", input: "python programming language", expected: "python"},
		{name: "prefix and suffix together", input: "experience with Java programming", expected: "java"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Aliases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "js token", input: "JS", expected: "javascript"},
		{name: "ecmascript", input: "ECMAScript", expected: "javascript"},
		{name: "possessive ecmascript", input: "ECMAScript's", expected: "javascript"},
		{name: "ts token", input: "TS", expected: "typescript"},
		{name: "py token", input: "py", expected: "python"},
		{name: "nodejs", input: "NodeJS", expected: "node.js"},
		{name: "react js phrase wins over js token", input: "React JS", expected: "react"},
		{name: "reactjs glued", input: "ReactJS", expected: "react"},
		{name: "angular js", input: "Angular JS", expected: "angular"},
		{name: "vue js", input: "VueJS", expected: "vue"},
		{name: "c plus plus spaced", input: "C ++", expected: "c++"},
		{name: "c sharp spaced", input: "C #", expected: "c#"},
		{name: "ml", input: "ML", expected: "machine learning"},
		{name: "ai", input: "AI", expected: "artificial intelligence"},
		{name: "nlp", input: "NLP", expected: "natural language processing"},
		{name: "gcp", input: "GCP", expected: "google cloud platform"},
		{name: "aws services", input: "AWS Services", expected: "aws"},
		{name: "cloud technologies", input: "Cloud Technologies", expected: "cloud computing"},
		{name: "rest api", input: "REST API", expected: "rest"},
		{name: "sql database", input: "SQL Database", expected: "sql"},
		{name: "nosql databases plural", input: "NoSQL Databases", expected: "nosql"},
		{name: "ui", input: "UI", expected: "user interface"},
		{name: "ux", input: "UX", expected: "user experience"},
		{name: "oop expansion loses the suffix token", input: "OOP", expected: "object-oriented"},
		{name: "fp expansion loses the suffix token", input: "FP", expected: "functional"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_StopWordsAndDedup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "stop words removed", input: "working with the cloud", expected: "working cloud"},
		{name: "using removed", input: "testing using pytest", expected: "testing pytest"},
		{name: "duplicate tokens removed", input: "java java", expected: "java"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

// Variants of the same capability must normalize to the same key, since
// equality of normalized forms is what the matcher compares on.
func TestNormalize_EquivalenceClasses(t *testing.T) {
	classes := map[string][]string{
		"javascript":      {"JS", "js", "JavaScript", "ECMAScript", "ECMAScript's"},
		"react":           {"React", "ReactJS", "React JS", "react js"},
		"python":          {"Python", "py", "Python programming", "experience with Python"},
		"sql":             {"SQL", "SQL Database", "sql database"},
		"object-oriented": {"OOP", "oop", "object-oriented programming"},
		"functional":      {"FP", "functional programming"},
	}

	for canonical, variants := range classes {
		for _, variant := range variants {
			assert.Equal(t, canonical, Normalize(variant), "variant %q", variant)
		}
	}
}

// Normalizing an already-normalized name must be a no-op, including for
// alias expansions whose wording ends in a strippable qualifier token.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Python", "React JS", "experience with Docker", "Machine Learning",
		"C ++", "NoSQL Databases", "Knowledge of AWS Services", "user interface",
		"OOP", "FP", "NodeJS", "NLP", "RDBMS", "AI", "GCP", "DB",
		"Cloud Technologies", "REST API", ".NET Core", "Azure DevOps",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}
