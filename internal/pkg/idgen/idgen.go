package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator hands out identifiers for new records.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewUUIDv7 returns a Generator producing time-ordered UUIDv7 strings.
func NewUUIDv7() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence produces "<prefix>-1", "<prefix>-2", ... and is meant for tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}
