package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"stackpilot-backend/internal/catalog"
)

// Fuzzy matches below this confidence are reported as unmatched rather than
// guessed.
const minFuzzyConfidence = 0.6

// MatchMethod says how a free-text name was matched to a catalog entry.
type MatchMethod string

const (
	MatchExact MatchMethod = "EXACT"
	MatchAlias MatchMethod = "ALIAS"
	MatchFuzzy MatchMethod = "FUZZY"
)

// Match is a resolved catalog entry for one user-supplied tool name.
type Match struct {
	Tool       catalog.Tool `json:"tool"`
	Confidence float64      `json:"confidence"`
	Method     MatchMethod  `json:"method"`
}

// ResolveToolNames matches each free-text name against the catalog: exact
// canonical name, then exact alias, then fuzzy edit distance over canonical
// name, display name, and aliases. A nil entry means "tool not in catalog",
// which callers must treat as non-fatal. Ties break toward the
// first-encountered candidate in catalog order, so resolution is
// deterministic for a fixed catalog.
func ResolveToolNames(names []string, tools []catalog.Tool) map[string]*Match {
	out := make(map[string]*Match, len(names))
	for _, raw := range names {
		out[raw] = resolveOne(raw, tools)
	}
	return out
}

func resolveOne(raw string, tools []catalog.Tool) *Match {
	name := normalizeName(raw)
	if name == "" {
		return nil
	}

	for i := range tools {
		if normalizeName(tools[i].Name) == name {
			return &Match{Tool: tools[i], Confidence: 1.0, Method: MatchExact}
		}
	}

	for i := range tools {
		for _, alias := range tools[i].Aliases {
			if normalizeName(alias) == name {
				return &Match{Tool: tools[i], Confidence: 1.0, Method: MatchAlias}
			}
		}
	}

	return fuzzyMatch(name, tools)
}

func fuzzyMatch(name string, tools []catalog.Tool) *Match {
	maxDistance := utf8.RuneCountInString(name) * 3 / 10
	if maxDistance < 2 {
		maxDistance = 2
	}

	var (
		best           *catalog.Tool
		bestConfidence float64
	)
	for i := range tools {
		candidates := make([]string, 0, 2+len(tools[i].Aliases))
		candidates = append(candidates, tools[i].Name, tools[i].DisplayName)
		candidates = append(candidates, tools[i].Aliases...)

		for _, candidate := range candidates {
			normalized := normalizeName(candidate)
			if normalized == "" {
				continue
			}
			distance := levenshtein.ComputeDistance(name, normalized)
			if distance > maxDistance {
				continue
			}
			longest := utf8.RuneCountInString(name)
			if l := utf8.RuneCountInString(normalized); l > longest {
				longest = l
			}
			confidence := 1.0 - float64(distance)/float64(longest)
			if confidence > bestConfidence {
				bestConfidence = confidence
				best = &tools[i]
			}
		}
	}

	if best == nil || bestConfidence <= minFuzzyConfidence {
		return nil
	}
	return &Match{Tool: *best, Confidence: bestConfidence, Method: MatchFuzzy}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
