// Package services provides domain services for the marketplace. A domain
// service holds business logic that does not belong to a single aggregate.
//
// The package includes:
//   - DeliveryPricer: computes the delivery fee from distance and weight and
//     splits it between the farmer and the restaurant
package services
