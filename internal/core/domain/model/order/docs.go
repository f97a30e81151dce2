// Package order contains the Order aggregate root and its value objects:
// line items, the delivery status state machine, the payment and transfer
// statuses, quality verification, and the complaint log.
//
// An order links three parties (farmer, restaurant, transporter) and moves
// through pending, confirmed, picked_up, in_transit, and delivered, with
// cancellation possible before pickup. Settlement runs on a separate payment
// state machine and only after delivery.
package order
