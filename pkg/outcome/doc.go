// Package outcome provides Outcome[T], a value that is either Ok, holding the
// result of a computation, or Err, holding whatever the computation failed with.
//
// Failures are data: every transformation catches panics raised by the
// functions it is given and stores the recovered value as the Err payload.
// Get and OrElsePanic are the two ways back to panicking control flow.
//
// Key operations:
// - Success/Fail/Of/FromTuple: construct an Outcome
// - IsSuccess/IsFailure/Get/ToPtr/Err: query it
// - Filter/Or/OrElse/Recover/RecoverWith/Failed: same-type transformations
// - IfSuccessOrElse: side effects on either branch
//
// Operations that change the value type live in package solo (synchronous)
// and package async (Future based).
package outcome
