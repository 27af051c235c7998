// Package pests holds the static pest catalogue and symptom-based lookup.
package pests

import (
	"strings"

	"github.com/aumai/kisanmitra/internal/models"
)

// Catalog is the read-only pest catalogue. Construction is deterministic
// (the built-in table, always in the same order), and all operations are
// safe for unsynchronized concurrent use.
type Catalog struct {
	entries []models.Pest
}

// NewCatalog builds the catalogue from the built-in pest table.
func NewCatalog() *Catalog {
	return &Catalog{entries: catalogueData}
}

// All returns every pest in catalogue-definition order.
func (c *Catalog) All() []models.Pest {
	out := make([]models.Pest, len(c.entries))
	copy(out, c.entries)
	return out
}

// Identify ranks pests by how many of the observed symptoms overlap with a
// pest's recorded symptoms. An input symptom counts once per pest when it
// appears as a case-insensitive substring of any recorded symptom; a
// multi-word input ("sticky honeydew") must appear as a whole contiguous
// phrase. Pests scoring zero are excluded. Results are sorted by score
// descending, catalogue order on ties.
func (c *Catalog) Identify(symptoms []string) []models.Pest {
	type scored struct {
		score int
		pest  models.Pest
	}

	matches := make([]scored, 0)
	for _, pest := range c.entries {
		score := 0
		for _, observed := range symptoms {
			obs := strings.ToLower(observed)
			for _, recorded := range pest.Symptoms {
				if strings.Contains(strings.ToLower(recorded), obs) {
					score++
					break
				}
			}
		}
		if score > 0 {
			matches = append(matches, scored{score: score, pest: pest})
		}
	}

	// Insertion sort by score keeps catalogue order within equal scores.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].score > matches[j-1].score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	out := make([]models.Pest, len(matches))
	for i, m := range matches {
		out[i] = m.pest
	}
	return out
}

// ByCrop returns pests affecting the named crop, in catalogue order.
// Matching is a case-insensitive exact comparison against each element of
// a pest's affected crops, not a substring test.
func (c *Catalog) ByCrop(cropName string) []models.Pest {
	out := make([]models.Pest, 0)
	for _, pest := range c.entries {
		for _, crop := range pest.AffectedCrops {
			if strings.EqualFold(crop, cropName) {
				out = append(out, pest)
				break
			}
		}
	}
	return out
}
