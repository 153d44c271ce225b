package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemDiscountRate(t *testing.T) {
	tests := []struct {
		name    string
		applied map[string][]string
		want    string
	}{
		{name: "no coupons", applied: map[string][]string{}, want: "0"},
		{name: "single item coupon", applied: map[string][]string{"p1": {"save10"}}, want: "0.1"},
		{name: "stacked item coupons", applied: map[string][]string{"p1": {"save10", "save20"}}, want: "0.3"},
		{name: "duplicates counted once", applied: map[string][]string{"p1": {"save10", "SAVE 10", "save10"}}, want: "0.1"},
		{name: "order coupon ignored on line", applied: map[string][]string{"p1": {"order15"}}, want: "0"},
		{name: "unknown code ignored", applied: map[string][]string{"p1": {"mystery"}}, want: "0"},
		{
			name:    "capped at one",
			applied: map[string][]string{"p1": {"first25", "save20", "christmas20", "newyear15", "save15", "save10"}},
			want:    "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ItemDiscountRate("p1", tt.applied)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", got, tt.want)
		})
	}
}

func TestCartDiscountRateOrderIndependent(t *testing.T) {
	a := CartDiscountRate([]string{"order10", "order15"})
	b := CartDiscountRate([]string{"order15", "order10"})
	assert.True(t, a.Equal(b))
	assert.Equal(t, "0.25", a.String())
}

func TestCartDiscountRateSkipsItemScope(t *testing.T) {
	got := CartDiscountRate([]string{"save10", "order10"})
	assert.Equal(t, "0.1", got.String())
}

func TestCombinedLineRateCap(t *testing.T) {
	got := CombinedLineRate(decimal.RequireFromString("0.95"), decimal.RequireFromString("0.15"))
	assert.True(t, got.Equal(decimal.NewFromInt(1)))
}

func TestItemPromotionRate(t *testing.T) {
	assert.Equal(t, "0.1", ItemPromotionRate([]string{"10% off on skin essentials"}).String())
	assert.Equal(t, "0.25", ItemPromotionRate([]string{"10% off on skin essentials", "15% off on new range"}).String())
	assert.True(t, ItemPromotionRate([]string{"unknown promo"}).IsZero())
	assert.Equal(t, "0.05", ItemPromotionRate([]string{"  5% off on new launches  "}).String())
}
