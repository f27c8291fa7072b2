// Package kernel provides the shared domain primitives of the workify marketplace.
//
// The package includes:
//   - UUID: identifier value object used by every aggregate
//   - Money: a non-negative amount held as integer cents, used for order budgets
//   - Actor and Role: the authenticated user acting on the system, with explicit
//     role guard predicates (employer or worker)
//
// All types are immutable values and safe for concurrent use.
package kernel
