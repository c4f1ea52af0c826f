// Package solo contains the synchronous operations on outcome.Outcome that
// change the value type. Go methods cannot take type parameters, so these are
// free functions taking the Outcome as their first argument.
//
// Highlights:
// - Map/Try: transform the value (Try takes a function returning an error)
// - FlatMap: continue with a function that itself returns an Outcome
// - Collect: apply a partial function, failing where it is not defined
// - Reduce: fold both branches into a plain value
// - Transform: FlatMap on success, recover with a new Outcome on failure
// - Flatten: unwrap an Outcome of an Outcome
//
// Failures pass through with their payload untouched, and the supplied
// function is not called for them.
package solo
