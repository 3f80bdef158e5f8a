// Package order provides the Order entity of the GrabGo errand service and the
// rules that govern it.
//
// The package includes:
//   - Order: one delivery request, created once and never deleted
//   - Status: the delivery lifecycle state machine
//   - PaymentStatus: the independent Paid/Unpaid axis
//   - Urgency and Price: the delivery speed tier and the price it fixes
//   - Patch: the shallow field merge applied by the order store
//
// Key business rules:
//   - Amount is derived from urgency at creation (Normal 100, Express 180) and never changes
//   - Status follows Pending -> In Progress -> Delivered, with Cancelled reachable
//     from Pending and In Progress
//   - Delivered and Cancelled are terminal; only an administrator reset returns them to Pending
//   - Owner email, id, service type, urgency and timestamp are fixed at creation
package order
