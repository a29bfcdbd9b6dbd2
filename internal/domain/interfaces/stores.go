package interfaces

import domaintypes "chucknorris/internal/domain/types"

// TemplateStore exposes read-only access to the ordered template collection.
type TemplateStore interface {
	Len() int
	At(i int) (domaintypes.Template, error)
	All() []domaintypes.Template
}
