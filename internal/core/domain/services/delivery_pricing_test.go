package services_test

import (
	"testing"

	"farmlink/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryPricer_Fee(t *testing.T) {
	pricer := services.NewDeliveryPricer()

	tests := []struct {
		name       string
		distanceKm float64
		weightKg   float64
		want       int
	}{
		{"mid-range distance, no weight", 10, 0, 100},
		{"zero distance clamps up to the minimum", 0, 0, 50},
		{"short hop discount", 2, 5, 56},
		{"long haul surcharge", 40, 10, 324},
		{"boundary 30 km takes no surcharge", 30, 0, 200},
		{"boundary 5 km takes no discount", 5, 0, 75},
		{"just under 5 km takes the discount", 4.9, 0, 60},
		{"just over 30 km takes the surcharge", 30.1, 0, 241},
		{"huge haul clamps down to the maximum", 100, 500, 500},
		{"zero weight skips the weight component", 10, 0, 100},
		{"weight component applies when present", 10, 15, 130},
		{"fractional fee rounds to nearest rupee", 10.1, 0, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricer.Fee(tt.distanceKm, tt.weightKg))
		})
	}

	t.Run("fee always stays within bounds", func(t *testing.T) {
		for _, d := range []float64{0, 1, 4.99, 5, 29, 30, 31, 80, 500} {
			for _, w := range []float64{0, 0.5, 10, 1000} {
				fee := pricer.Fee(d, w)
				assert.GreaterOrEqual(t, fee, 50)
				assert.LessOrEqual(t, fee, 500)
			}
		}
	})
}

func TestDeliveryPricer_Split(t *testing.T) {
	pricer := services.NewDeliveryPricer()

	t.Run("even fee splits into whole halves", func(t *testing.T) {
		farmer, restaurant := pricer.Split(100)

		assert.InDelta(t, 50, farmer, 1e-9)
		assert.InDelta(t, 50, restaurant, 1e-9)
	})

	t.Run("odd fee splits exactly, half rupee and all", func(t *testing.T) {
		farmer, restaurant := pricer.Split(109)

		assert.InDelta(t, 54.5, farmer, 1e-9)
		assert.InDelta(t, 54.5, restaurant, 1e-9)
		assert.InDelta(t, 109, farmer+restaurant, 1e-9)
	})
}
