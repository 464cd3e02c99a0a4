// Package location provides the delivery-location catalog aggregate.
// A Location is a named destination with a pricing tier, standard and optional
// express prices, and an estimated transit time.
//
// Key business rules:
//   - Location names are unique within the catalog
//   - Express pricing only applies when the location offers express delivery
//   - Locations referenced by orders are soft-deactivated, never hard-deleted
package location
