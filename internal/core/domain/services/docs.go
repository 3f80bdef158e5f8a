// Package services provides domain services that span more than one order or
// combine an order with the acting user.
//
// The package includes:
//   - OrderLifecycle: admin-gated status transitions and payment toggling
//   - HistoryFor, Search and AggregateStats: read-only views over an order collection
//
// Nothing here touches persistence. Callers load orders from the store, ask a
// service what the next state is, and hand the result back to the store as a patch.
package services
