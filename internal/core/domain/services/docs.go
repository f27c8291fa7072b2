// Package services provides domain services that coordinate several aggregates
// in a single business operation.
//
// The package includes:
//   - ApplicationMatcher: accepts one application of an order, moving the order
//     into work and rejecting every sibling application in the same step
//   - ReviewGate: validates the preconditions for reviewing a completed order
//
// Services never touch persistence; command handlers load the aggregates, call
// the service and persist the result inside one unit of work.
package services
