package interfaces

import domaintypes "chucknorris/internal/domain/types"

// RandomSource yields uniformly distributed integers in [0, n).
//
// Implementations shared between goroutines must be safe for concurrent use.
type RandomSource interface {
	IntN(n int) int
}

// QuipService picks and renders quips from a TemplateStore.
type QuipService interface {
	// Select renders the template at index (wrapping), or a random one when
	// index is nil.
	Select(name string, index *int) (string, error)
	// Pick is Select but also reports which template was used.
	Pick(name string, index *int) (domaintypes.Quip, error)
	// Render renders every template in collection order.
	Render(name string) ([]domaintypes.Quip, error)
}
