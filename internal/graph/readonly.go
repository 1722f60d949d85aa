package graph

import (
	"regexp"
	"strings"

	"github.com/ybai789/moviegraph/internal/types"
)

// forbiddenClauses lists Cypher keywords that mutate the graph or invoke
// procedures. Model-generated queries containing any of them are rejected.
var forbiddenClauses = []string{
	"CREATE",
	"MERGE",
	"DELETE",
	"DETACH",
	"SET",
	"REMOVE",
	"DROP",
	"CALL",
	"LOAD CSV",
	"FOREACH",
}

var wordPattern = regexp.MustCompile(`[A-Za-z_]+(?: CSV)?`)

// CheckReadOnly rejects Cypher text containing write or procedure clauses.
// The check is keyword-based and deliberately conservative: a false positive
// (e.g. a property named "set" in backticks) only costs an empty result,
// while a false negative would execute untrusted writes.
func CheckReadOnly(cypher string) error {
	trimmed := strings.TrimSpace(cypher)
	if trimmed == "" {
		return types.NewError(ErrCodeQueryBlocked, "empty query")
	}

	upper := strings.ToUpper(stripStringLiterals(trimmed))
	for _, word := range wordPattern.FindAllString(upper, -1) {
		for _, forbidden := range forbiddenClauses {
			if word == forbidden {
				return types.NewError(ErrCodeQueryBlocked,
					"query contains forbidden clause: "+forbidden)
			}
		}
	}
	return nil
}

// stripStringLiterals blanks out single- and double-quoted literals so a
// quoted "delete" in a value does not trip the keyword screen.
func stripStringLiterals(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
