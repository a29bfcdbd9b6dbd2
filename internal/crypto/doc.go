// Package crypto exposes the hashing helpers used by chucknorris.
//
// Fingerprint gives every template a short, stable identifier for display in
// listings and structured output.
package crypto
