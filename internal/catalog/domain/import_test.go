package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestNormalizeRatingAliases(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProduct
		want float64
	}{
		{name: "rating preferred", raw: RawProduct{Rating: floatPtr(4.7), StarRating: floatPtr(3.0)}, want: 4.7},
		{name: "star_rating fallback", raw: RawProduct{StarRating: floatPtr(4.2)}, want: 4.2},
		{name: "missing defaults to zero", raw: RawProduct{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.raw.Normalize().Rating)
		})
	}
}

func TestNormalizeReviewAliases(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProduct
		want int
	}{
		{name: "reviews preferred", raw: RawProduct{Reviews: strPtr("120"), ReviewCount: strPtr("5")}, want: 120},
		{name: "review_count fallback", raw: RawProduct{ReviewCount: strPtr("87")}, want: 87},
		{name: "camelCase fallback", raw: RawProduct{ReviewCountAlt: strPtr("42")}, want: 42},
		{name: "thousands separator stripped", raw: RawProduct{Reviews: strPtr("1,204")}, want: 1204},
		{name: "unparsable falls through", raw: RawProduct{Reviews: strPtr("many"), ReviewCount: strPtr("9")}, want: 9},
		{name: "missing defaults to zero", raw: RawProduct{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.raw.Normalize().Reviews)
		})
	}
}

func TestNormalizeCouponApplicable(t *testing.T) {
	raw := RawProduct{CouponApplicable: "  Save 10 "}
	assert.Equal(t, "save10", raw.Normalize().CouponApplicable)

	raw = RawProduct{CouponApplicable: "   "}
	assert.Equal(t, "", raw.Normalize().CouponApplicable)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{
			name:  "leading marker removed",
			input: "KEY BENEFITS: Hydrates deeply.",
			want:  "Hydrates deeply.",
		},
		{
			name:  "line marker removed",
			input: "A lightweight serum.\nKEY BENEFITS:\nBrightens skin.",
			want:  "A lightweight serum.\nBrightens skin.",
		},
		{
			name:  "inline marker removed",
			input: "A rich cream. KEY BENEFITS - Soothes and repairs.",
			want:  "A rich cream. Soothes and repairs.",
		},
		{
			name:  "case insensitive",
			input: "key benefits: Smooths fine lines.",
			want:  "Smooths fine lines.",
		},
		{
			name:  "plain text untouched",
			input: "A gentle cleanser for daily use.",
			want:  "A gentle cleanser for daily use.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.input))
		})
	}
}

func TestEffectiveMSRP(t *testing.T) {
	p := &Product{Price: decimal.RequireFromString("48"), MSRP: decimal.RequireFromString("60")}
	assert.Equal(t, "60", p.EffectiveMSRP().String())

	// 标价缺失时按售价 1.2 倍取整
	p = &Product{Price: decimal.RequireFromString("48")}
	assert.Equal(t, "58", p.EffectiveMSRP().String())

	p = &Product{Price: decimal.RequireFromString("49.99")}
	assert.Equal(t, "60", p.EffectiveMSRP().String())
}

func TestVariantFor(t *testing.T) {
	p := &Product{Variants: VariantList{
		{Size: "30ml", Price: decimal.RequireFromString("48")},
		{Size: "50ml", Price: decimal.RequireFromString("68")},
	}}

	v, ok := p.VariantFor("50ml")
	assert.True(t, ok)
	assert.Equal(t, "68", v.Price.String())

	_, ok = p.VariantFor("100ml")
	assert.False(t, ok)
}
