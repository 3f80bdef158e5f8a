// Package kernel provides core domain primitives shared by the GrabGo order model.
//
// The package includes:
//   - OrderID: the "ORD-XXXXXX" identifier of a delivery order
//   - Address: a pickup or drop location made of a street line and a pincode
//
// Both are immutable value objects. Their zero values are invalid and fail
// Validate, so they must be obtained from the provided constructors.
package kernel
