// Package metrics computes the five trustworthiness sub-scores of a
// repository.
//
// The formulas ([RampUp], [Correctness], [BusFactor], [Responsiveness],
// [Compatibility]) are pure functions of counts and strings. [Calculator]
// fetches their inputs through a [Source] and a [Cloner] and runs them
// concurrently.
//
// Every score lies in [0,1]. Missing or malformed data produces 0, never
// NaN, and a failure in one metric leaves the others untouched.
package metrics
