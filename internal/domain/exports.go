package domain

import (
	interfaces "chucknorris/internal/domain/interfaces"
	types "chucknorris/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Template    = types.Template
	Fingerprint = types.Fingerprint
	Quip        = types.Quip
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	TemplateStore = interfaces.TemplateStore
	RandomSource  = interfaces.RandomSource
	QuipService   = interfaces.QuipService
)

const (
	DefaultName = types.DefaultName
	Placeholder = types.Placeholder
)
