package qa

import (
	"regexp"
	"strings"
)

// IntentTag classifies what kind of question was asked. It selects both the
// query template and the response formatter.
type IntentTag string

const (
	IntentDirectorMovies IntentTag = "director_movies"
	IntentActorMovies    IntentTag = "actor_movies"
	IntentMovieInfo      IntentTag = "movie_info"
)

// PatternRule binds a set of alternative question regexes to an intent and
// its parameterized Cypher template. Rules are defined once at startup and
// are read-only during matching.
type PatternRule struct {
	Intent   IntentTag
	Patterns []*regexp.Regexp
	Query    string
}

const queryDirectorMovies = `
MATCH (p:Person)-[:DIRECTED]->(m:Movie)
WHERE p.name = $param1
RETURN m.name as movie, m.year as year, m.rating as rating
ORDER BY m.rating DESC`

const queryActorMovies = `
MATCH (p:Person)-[:ACTED_IN]->(m:Movie)
WHERE p.name = $param1
RETURN m.name as movie, m.year as year, m.rating as rating
ORDER BY m.rating DESC`

const queryMovieInfo = `
MATCH (m:Movie)
WHERE m.name = $param1
OPTIONAL MATCH (p1:Person)-[:DIRECTED]->(m)
OPTIONAL MATCH (p2:Person)-[:ACTED_IN]->(m)
OPTIONAL MATCH (m)-[:BELONGS_TO]->(g:Genre)
RETURN m.name as movie, m.year as year, m.rating as rating,
       m.certificate as certificate, m.run_time as runtime,
       collect(DISTINCT p1.name) as directors,
       collect(DISTINCT p2.name) as actors,
       collect(DISTINCT g.name) as genres`

// DefaultRules returns the ordered rule table for the deterministic pipeline.
// Order matters: the matcher stops at the first regex that matches.
func DefaultRules() []PatternRule {
	return []PatternRule{
		{
			Intent: IntentDirectorMovies,
			Patterns: compilePatterns(
				`what movies did (.*) direct`,
				`show me movies directed by (.*)`,
				`list (.*)'s movies as director`,
			),
			Query: queryDirectorMovies,
		},
		{
			Intent: IntentActorMovies,
			Patterns: compilePatterns(
				`what movies did (.*) act in`,
				`show me movies starring (.*)`,
				`which movies featured (.*)`,
			),
			Query: queryActorMovies,
		},
		{
			Intent: IntentMovieInfo,
			Patterns: compilePatterns(
				`tell me about the movie (.*)`,
				`what is the information for (.*)`,
				`show details of movie (.*)`,
			),
			Query: queryMovieInfo,
		},
	}
}

// compilePatterns compiles question patterns case-insensitively, anchored at
// the start of the string: a pattern must match from position zero, not
// merely occur somewhere inside the question.
func compilePatterns(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)^`+p))
	}
	return out
}

// Match is the result of matching a question against the rule table.
type Match struct {
	Intent   IntentTag
	Query    string
	Param    string
	HasParam bool
}

// Matcher is a deterministic rule engine over an ordered PatternRule table.
// It is immutable after construction and safe for concurrent use.
type Matcher struct {
	rules []PatternRule
}

// NewMatcher creates a Matcher over the given rules.
func NewMatcher(rules []PatternRule) *Matcher {
	return &Matcher{rules: rules}
}

// punctuation mirrors the ASCII punctuation set trimmed from captured
// parameters.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Match tries each rule's patterns in order against the trimmed question and
// returns the first hit. The captured parameter, when present, is stripped of
// surrounding punctuation. Returns ok=false when no rule matches; callers
// must treat that as "unknown question", not as an error.
func (m *Matcher) Match(question string) (Match, bool) {
	question = strings.TrimSpace(question)

	for _, rule := range m.rules {
		for _, pattern := range rule.Patterns {
			groups := pattern.FindStringSubmatch(question)
			if groups == nil {
				continue
			}

			match := Match{Intent: rule.Intent, Query: rule.Query}
			if len(groups) > 1 {
				match.Param = cleanParam(groups[1])
				match.HasParam = true
			}
			return match, true
		}
	}

	return Match{}, false
}

func cleanParam(param string) string {
	param = strings.TrimSpace(param)
	param = strings.Trim(param, punctuation)
	return strings.TrimSpace(param)
}
