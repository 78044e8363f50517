// Package delivery holds the read-side vocabulary for deliveries. Deliveries are
// owned by another part of the system; this service only filters them.
//
// A delivery is done once its end date is set and is hidden from every listing
// once it has been canceled.
package delivery
