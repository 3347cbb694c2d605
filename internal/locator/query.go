package locator

import (
	"strings"

	"github.com/google/uuid"
)

// Query is a parsed player identifier: either a display name or a UUID
// in hyphenated (36-char) or compact (32-char) hex form. Name comparison
// is case-insensitive; UUID comparison ignores hyphens and case.
type Query struct {
	// Raw is the identifier exactly as the user gave it.
	Raw string

	name string
	uuid string
}

// ParseQuery validates and classifies a raw player identifier.
func ParseQuery(raw string) (Query, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Query{}, ErrEmptyQuery
	}

	q := Query{
		Raw:  trimmed,
		name: strings.ToLower(trimmed),
	}

	// uuid.Parse also accepts urn: and braced forms; only the two
	// Minecraft-relevant shapes count as a UUID query.
	if len(trimmed) == 32 || len(trimmed) == 36 {
		if id, err := uuid.Parse(trimmed); err == nil {
			q.uuid = compactUUID(id.String())
		}
	}

	return q, nil
}

// IsUUID reports whether the query was given as a UUID.
func (q Query) IsUUID() bool {
	return q.uuid != ""
}

// MatchesName reports whether a listed player name matches the query.
func (q Query) MatchesName(name string) bool {
	return name != "" && strings.ToLower(name) == q.name
}

// MatchesUUID reports whether a listed player UUID matches a UUID query.
// Always false for name queries.
func (q Query) MatchesUUID(id string) bool {
	return q.uuid != "" && id != "" && compactUUID(id) == q.uuid
}

func compactUUID(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}
