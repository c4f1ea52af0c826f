// Package core holds the plumbing shared by the async and tiny packages:
// options carried through a context.Context (currently the logger) and the
// Delay helper. It does not know about Outcome itself.
package core
