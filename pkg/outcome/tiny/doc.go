// Package tiny provides a minimal fluent Chain[T] that binds a context to an
// outcome.Outcome[T] for same-type pipelines.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose Outcome-returning or error-returning functions
// - Map/Filter/Recover/Or: transform along the way
// - RepeatUntil/While: loop a step while the chain succeeds
// - Ensure: trigger side effects on either branch
// - Finally: reduce to a concrete value via handlers
//
// A failure short-circuits every later step. For steps that change the value
// type use package solo directly.
package tiny
