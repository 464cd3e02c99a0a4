// Package order provides the placed-order aggregate that deliveries attach to.
// The delivery subsystem never mutates orders; it reads the customer contact,
// destination, item count and subtotal when scheduling deliveries and
// resolving shipping costs.
package order
