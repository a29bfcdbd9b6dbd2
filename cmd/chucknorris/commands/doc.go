// Package commands defines the chucknorris CLI and wires dependencies for it.
//
// Usage
//
//	chucknorris [name] [-n N] [-a] [-o text|json|yaml] [--log-level L]
//
//   - name           Substituted into the quip (default "Chuck Norris")
//   - -n, --number   Pick the quip at N; wraps, so -1 is the last one
//   - -a, --all      Print every quip with its index and fingerprint
//   - -o, --output   Output format
//
// # Implementation
//
// Flags that were set explicitly are layered over the defaults into an
// app.Config, from which the root command builds the app.Wire before
// rendering. Quips go to stdout; logs and usage go to stderr.
package commands
