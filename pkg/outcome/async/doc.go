// Package async provides Future, a promise-like handle on an Outcome computed
// on its own goroutine, and the asynchronous form of every Outcome operation.
//
// Each operation runs the same branching logic as its synchronous counterpart
// in package outcome or solo; the only difference is that the supplied
// function is called on a goroutine and receives the caller's context.
// Panics raised there settle the future as a failure instead of crashing
// the process.
//
// Common usage:
// - Of: start a (T, error) computation
// - Map/Try/FlatMap/Collect/Filter/Recover/RecoverWith/Transform: transform
// - Reduce/IfSuccessOrElse/OrElseReject: terminal operations
// - Future.Await: wait for the Outcome
//
// Futures log settle events at debug level to the logger carried by the
// context (see core.WithLogger).
package async
