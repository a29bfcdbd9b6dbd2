package types

// DefaultName is substituted when the caller does not supply one.
const DefaultName = "Chuck Norris"

// Placeholder is the token replaced by the caller-supplied name.
const Placeholder = "{name}"

// Template is an immutable quip containing zero or more placeholders.
type Template string

// String returns the raw, unrendered template.
func (t Template) String() string { return string(t) }

// Fingerprint is a short identifier for a template presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
