// Package advisory routes free-text farmer questions to pre-written answers
// via keyword scoring.
package advisory

import (
	"fmt"
	"strings"

	"github.com/aumai/kisanmitra/internal/models"
)

// Router maps a question to the best-scoring advisory entry. It is
// stateless per call and safe for concurrent use.
type Router struct {
	entries []Entry
}

// NewRouter creates a Router over the given ordered entry table. Hosts that
// need different categories or answer text pass their own table; nil means
// DefaultEntries.
func NewRouter(entries []Entry) *Router {
	if entries == nil {
		entries = DefaultEntries
	}
	return &Router{entries: entries}
}

// Respond scores the query against every entry and returns the answer of
// the highest-scoring one, or the fallback when everything scores zero.
// On a tie the entry that appears first in the table wins. The response is
// always well formed: sources non-nil, the disclaimer set, the query's
// language echoed back.
func (r *Router) Respond(q models.Query) models.Response {
	text := strings.ToLower(q.Text)

	answer := fallbackAnswer
	sources := fallbackSources
	bestScore := 0

	for _, entry := range r.entries {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		// Strictly greater: earlier entries keep ties.
		if score > bestScore {
			bestScore = score
			answer = entry.Answer
			sources = entry.Sources
		}
	}

	if q.Location != "" {
		answer += fmt.Sprintf(" For location-specific advice in %s, contact your"+
			" local Block Agriculture Officer or Krishi Vigyan Kendra.", q.Location)
	}

	return models.Response{
		Answer:     answer,
		Sources:    sources,
		Language:   q.Language,
		Disclaimer: models.Disclaimer,
	}
}
