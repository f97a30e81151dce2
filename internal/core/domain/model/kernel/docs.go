// Package kernel contains the shared value objects of the domain model:
// validated identifiers (UUID) and geographic coordinates (GeoPoint).
//
// Both types follow the constructor-guard pattern: the zero value is invalid
// and every instance must come from a constructor, which keeps invariants
// (well-formed identifiers, in-range coordinates) intact across the model.
package kernel
