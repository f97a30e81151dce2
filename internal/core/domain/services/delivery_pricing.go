package services

import "math"

// Fee bounds and coefficients of the delivery pricing scheme. Amounts are
// whole rupees.
const (
	baseFee = 50
	minFee  = 50
	maxFee  = 500

	perKmRate = 5
	perKgRate = 2

	longHaulThresholdKm = 30
	longHaulMultiplier  = 1.2
	shortHaulRadiusKm   = 5
	shortHaulMultiplier = 0.8
)

// DeliveryPricer is a domain service that computes the delivery fee for an
// order and splits it between the parties that owe it.
//
// Pricing scheme:
//   - base fee of 50, plus 5 per kilometre of distance
//   - plus 2 per kilogram of total weight; a zero weight skips the weight
//     component entirely
//   - long hauls (strictly over 30 km) cost 20% extra
//   - short hops (strictly under 5 km) get a 20% discount
//   - the result is rounded to the nearest rupee and clamped to [50, 500]
//
// The fee is split 50/50 between the farmer and the restaurant. Each share is
// kept as an exact float so an odd fee splits without losing the half rupee.
type DeliveryPricer struct{}

// NewDeliveryPricer creates a new DeliveryPricer instance.
func NewDeliveryPricer() DeliveryPricer {
	return DeliveryPricer{}
}

// Fee computes the delivery fee in whole rupees for the given distance and
// total shipment weight.
func (p DeliveryPricer) Fee(distanceKm, totalWeightKg float64) int {
	fee := float64(baseFee)
	fee += distanceKm * perKmRate
	if totalWeightKg != 0 {
		fee += totalWeightKg * perKgRate
	}

	if distanceKm > longHaulThresholdKm {
		fee *= longHaulMultiplier
	} else if distanceKm < shortHaulRadiusKm {
		fee *= shortHaulMultiplier
	}

	rounded := int(math.Round(fee))
	if rounded < minFee {
		return minFee
	}
	if rounded > maxFee {
		return maxFee
	}
	return rounded
}

// Split divides the fee equally between the farmer and the restaurant.
func (p DeliveryPricer) Split(fee int) (farmerShare, restaurantShare float64) {
	half := float64(fee) / 2
	return half, half
}
