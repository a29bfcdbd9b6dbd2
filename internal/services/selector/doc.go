// Package selector picks quips from a template store and renders them.
//
// Selection is either random (uniform, via an injected domain.RandomSource)
// or by index. Indices wrap with floor semantics, so -1 addresses the last
// template and i, i+N and i-N all address the same one.
//
// A Service holds no mutable state of its own. It is safe for concurrent use
// as long as its RandomSource is.
package selector
