package selector

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/valyala/fasttemplate"

	"chucknorris/internal/crypto"
	"chucknorris/internal/domain"
)

const (
	startTag = "{"
	endTag   = "}"
	nameTag  = "name"
)

// Service selects and renders quips from a template store.
type Service struct {
	store domain.TemplateStore
	rng   domain.RandomSource
	log   zerolog.Logger
}

// New returns a selector over store drawing random picks from rng. A nil rng
// uses GlobalSource.
func New(store domain.TemplateStore, rng domain.RandomSource, log zerolog.Logger) *Service {
	if rng == nil {
		rng = GlobalSource{}
	}
	return &Service{store: store, rng: rng, log: log}
}

// Select renders one quip for name. A nil index picks uniformly at random.
func (s *Service) Select(name string, index *int) (string, error) {
	q, err := s.Pick(name, index)
	if err != nil {
		return "", err
	}
	return q.Text, nil
}

// Pick is Select but returns the chosen position and fingerprint as well.
func (s *Service) Pick(name string, index *int) (domain.Quip, error) {
	n := s.store.Len()
	if n == 0 {
		return domain.Quip{}, fmt.Errorf("select from empty template collection: %w", domain.ErrInvalidState)
	}

	var i int
	if index == nil {
		i = s.rng.IntN(n)
		s.log.Debug().Int("index", i).Int("count", n).Msg("picked random quip")
	} else {
		i = Wrap(*index, n)
		s.log.Debug().Int("requested", *index).Int("index", i).Int("count", n).Msg("picked indexed quip")
	}
	return s.render(name, i)
}

// Render renders every template for name, in collection order.
func (s *Service) Render(name string) ([]domain.Quip, error) {
	n := s.store.Len()
	if n == 0 {
		return nil, fmt.Errorf("render empty template collection: %w", domain.ErrInvalidState)
	}
	out := make([]domain.Quip, 0, n)
	for i := 0; i < n; i++ {
		q, err := s.render(name, i)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *Service) render(name string, i int) (domain.Quip, error) {
	tpl, err := s.store.At(i)
	if err != nil {
		return domain.Quip{}, err
	}
	text, err := Substitute(tpl, name)
	if err != nil {
		return domain.Quip{}, fmt.Errorf("template %d: %w", i, err)
	}
	return domain.Quip{
		Index:       i,
		Fingerprint: crypto.Fingerprint(tpl),
		Text:        text,
	}, nil
}

// Substitute replaces every {name} in tpl with name. Other {tags} are kept
// verbatim.
func Substitute(tpl domain.Template, name string) (string, error) {
	t, err := fasttemplate.NewTemplate(string(tpl), startTag, endTag)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedTemplate, err)
	}
	return t.ExecuteStringStd(map[string]any{nameTag: name}), nil
}

// Wrap reduces i modulo n with floor semantics; the result is in [0, n).
// n must be positive.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Compile-time assertion that Service implements domain.QuipService.
var _ domain.QuipService = (*Service)(nil)
