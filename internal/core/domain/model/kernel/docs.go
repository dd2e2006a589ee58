// Package kernel holds the value objects shared by the order and catalog models.
//
// The package includes:
//   - UUID: an identifier that rejects the nil value and parses the forms uuid.Parse accepts
//   - Money: an amount in whole currency units, with overflow-checked arithmetic and rate rounding
//
// Both are immutable and safe to share between goroutines.
package kernel
