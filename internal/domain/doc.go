// Package domain defines the core data models and contracts shared across the app.
// It contains plain types (templates, quips) and interfaces only.
package domain
