// Package kernel contains shared value objects used across the delivery
// domain model. It currently provides the UUID identity type that all
// aggregates use for their identifiers.
//
// Value objects in this package are immutable, validated at construction,
// and safe for concurrent use.
package kernel
