package pricing_test

import (
	"testing"

	"github.com/Dusan-Milekic/PixelShop/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		shipping string
		tax      string
		total    string
	}{
		{"empty_cart_is_all_zero", "0", "0", "0", "0"},
		{"below_threshold_pays_flat_fee", "30", "10", "3", "43"},
		{"just_below_threshold", "49.99", "10", "4.999", "64.989"},
		{"at_threshold_ships_free", "50", "0", "5", "55"},
		{"above_threshold_ships_free", "60", "0", "6", "66"},
		{"tiny_subtotal_still_pays_fee", "0.01", "10", "0.001", "10.011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := pricing.Compute(dec(tt.subtotal))

			assert.True(t, q.Subtotal.Equal(dec(tt.subtotal)), "subtotal %s", q.Subtotal)
			assert.True(t, q.Shipping.Equal(dec(tt.shipping)), "shipping %s", q.Shipping)
			assert.True(t, q.Tax.Equal(dec(tt.tax)), "tax %s", q.Tax)
			assert.True(t, q.Total.Equal(dec(tt.total)), "total %s", q.Total)
		})
	}
}

func TestCompute_NoIntermediateRounding(t *testing.T) {
	// 3 × 9.99 + 10 shipping + 10% tax; rounding only at the end.
	q := pricing.Compute(dec("29.97"))

	assert.True(t, q.Tax.Equal(dec("2.997")))
	assert.True(t, q.Total.Equal(dec("42.967")))
	assert.Equal(t, "42.97", q.Total.Round(2).String())
}

func TestFreeShippingProgress(t *testing.T) {
	t.Run("empty_cart_has_no_progress", func(t *testing.T) {
		q := pricing.Compute(dec("0"))
		assert.True(t, q.FreeShippingRemaining().IsZero())
		assert.True(t, q.FreeShippingProgress().IsZero())
	})

	t.Run("partial_progress", func(t *testing.T) {
		q := pricing.Compute(dec("30"))
		assert.True(t, q.FreeShippingRemaining().Equal(dec("20")))
		assert.True(t, q.FreeShippingProgress().Equal(dec("0.6")))
	})

	t.Run("reaching_threshold_completes_progress", func(t *testing.T) {
		q := pricing.Compute(dec("50"))
		assert.True(t, q.FreeShippingRemaining().IsZero())
		assert.True(t, q.FreeShippingProgress().Equal(dec("1")))
	})

	t.Run("progress_clamps_above_threshold", func(t *testing.T) {
		q := pricing.Compute(dec("120"))
		assert.True(t, q.FreeShippingRemaining().IsZero())
		assert.True(t, q.FreeShippingProgress().Equal(dec("1")))
	})
}
