// Package order provides domain entities and business logic for job orders
// posted by employers on the workify marketplace. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, ownership, budget and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created by an employer, belong to one category and start Open
//   - Order status follows the workflow: Open -> InProgress -> Completed,
//     with Cancelled reachable from Open and InProgress
//   - Completed and Cancelled are terminal; transitioning to the current status is illegal
//   - Only the owning employer may change the status or delete the order
//   - Accepting an application moves an Open order to InProgress (see StartWork)
package order
