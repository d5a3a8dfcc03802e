package skills

import (
	"context"
	"regexp"
	"strings"
)

// patternFamilies groups related technologies; each family compiles to one regex.
//
//nolint:gochecknoglobals
var patternFamilies = [][]string{
	{"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "swift"}, // languages
	{"react", "angular", "vue", "node.js", "express", "django", "flask", "spring"},      // frameworks
	{"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch"},                 // data stores
	{"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git"},                   // infrastructure
	{"machine learning", "deep learning", "nlp", "computer vision", "data science"},     // ML concepts
	{"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy"},                        // ML libraries
}

// PatternSource matches fixed technology families on word boundaries.
type PatternSource struct {
	families []*regexp.Regexp
}

// NewPatternSource compiles the technology families.
func NewPatternSource() *PatternSource {
	families := make([]*regexp.Regexp, 0, len(patternFamilies))
	for _, terms := range patternFamilies {
		families = append(families, compileFamily(terms))
	}
	return &PatternSource{families: families}
}

// compileFamily builds a regex whose first group is the matched term. The
// surrounding groups stand in for \b, which never matches after a trailing
// '+' or '#' (so "c++ " would otherwise be missed).
func compileFamily(terms []string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}
	return regexp.MustCompile(`(?i)(?:^|[^\w])(` + strings.Join(quoted, "|") + `)(?:[^\w]|$)`)
}

// Name identifies the source.
func (p *PatternSource) Name() string { return "patterns" }

// Skills returns every family term found in text.
func (p *PatternSource) Skills(_ context.Context, text string) Set {
	found := NewSet()
	lower := strings.ToLower(text)
	for _, re := range p.families {
		for pos := 0; pos < len(lower); {
			loc := re.FindStringSubmatchIndex(lower[pos:])
			if loc == nil {
				break
			}
			found.Add(lower[pos+loc[2] : pos+loc[3]])
			// Resume right after the term so the trailing separator can
			// lead the next match
			pos += loc[3]
		}
	}
	return found
}
