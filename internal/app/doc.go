// Package app wires application dependencies for the CLI.
//
// LoadConfig layers flag overrides on the defaults with koanf. NewWire then
// builds the template store, the quip selector and the
// logger from the resulting Config, exposing them via the Wire struct for
// commands to use.
package app
