package quips

import (
	"fmt"

	"chucknorris/internal/domain"
)

// Store is an immutable, ordered sequence of templates.
type Store struct {
	templates []domain.Template
}

// New returns a Store holding a private copy of templates. An empty Store is
// allowed; selecting from it fails with domain.ErrInvalidState.
func New(templates ...string) *Store {
	ts := make([]domain.Template, len(templates))
	for i, t := range templates {
		ts[i] = domain.Template(t)
	}
	return &Store{templates: ts}
}

// Len returns the number of templates.
func (s *Store) Len() int { return len(s.templates) }

// At returns the template at position i.
func (s *Store) At(i int) (domain.Template, error) {
	if i < 0 || i >= len(s.templates) {
		return "", fmt.Errorf("at %d of %d: %w", i, len(s.templates), domain.ErrIndexOutOfRange)
	}
	return s.templates[i], nil
}

// All returns a copy of the collection in order.
func (s *Store) All() []domain.Template {
	out := make([]domain.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// Compile-time assertion that Store implements domain.TemplateStore.
var _ domain.TemplateStore = (*Store)(nil)
