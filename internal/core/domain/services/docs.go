// Package services contains stateless domain services that implement business
// logic spanning aggregates. The ShippingCalculator resolves delivery pricing,
// bulk discounts and delivery estimates for orders against the location
// catalog.
package services
