package domain

import "fmt"

// Entity is one directory listing (a server or a bot) exactly as the
// directory returned it. The sampler treats it as an opaque value.
type Entity map[string]any

// Well-known entity keys read by output adapters.
const (
	EntityKeyID          = "id"
	EntityKeyName        = "name"
	EntityKeyVotes       = "votes"
	EntityKeySocialCount = "socialCount"
)

// Field returns a display string for key, or empty if absent or null.
func (e Entity) Field(key string) string {
	v, ok := e[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ID returns the entity's external identifier.
func (e Entity) ID() string {
	return e.Field(EntityKeyID)
}

// Name returns the entity's display name.
func (e Entity) Name() string {
	return e.Field(EntityKeyName)
}

// CandidatePool is the ranked list of entities fetched from the directory.
type CandidatePool []Entity
