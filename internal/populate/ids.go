package populate

import (
	"strconv"

	"github.com/google/uuid"
)

// IDSource hands out entity identifiers.
type IDSource interface {
	NewID(kind string) uuid.UUID
}

// SequentialIDs derives name-based (version 5) UUIDs from a level namespace
// and a running counter, so the same level always gets the same ids.
type SequentialIDs struct {
	ns uuid.UUID
	n  int
}

// NewSequentialIDs creates an id source scoped to a level.
func NewSequentialIDs(levelID string) *SequentialIDs {
	return &SequentialIDs{ns: uuid.NewSHA1(uuid.NameSpaceOID, []byte(levelID))}
}

// NewID returns the next id for an entity of the given kind.
func (s *SequentialIDs) NewID(kind string) uuid.UUID {
	s.n++
	return uuid.NewSHA1(s.ns, []byte(kind+"-"+strconv.Itoa(s.n)))
}
