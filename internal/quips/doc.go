// Package quips holds the ordered, read-only template collection.
//
// The built-in collection is a literal constant returned by Default. Custom
// collections can be built with New; a Store never changes after it is
// constructed, so a single Store may be shared freely between goroutines.
package quips
