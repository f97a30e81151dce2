// Package crop provides the Crop aggregate: a farmer's produce listing with
// price, sale unit, per-unit weight, and a live availableQuantity counter.
//
// Inventory rules:
//   - Order placement reserves quantity; reserving the last units flips the
//     listing to out_of_stock.
//   - Order cancellation releases quantity and re-opens the listing.
//
// Two distinct unit→kilogram default tables exist, one for manual listings
// and one for voice listings. They disagree for several units; both are kept
// deliberately (see unit.go).
package crop
