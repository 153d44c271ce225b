package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCouponCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase passthrough", input: "save10", want: "save10"},
		{name: "uppercase folded", input: "SAVE10", want: "save10"},
		{name: "inner whitespace stripped", input: " Save 10 ", want: "save10"},
		{name: "tabs and newlines stripped", input: "order\t15\n", want: "order15"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCouponCode(tt.input))
		})
	}
}

func TestNormalizeCouponCodeIdempotent(t *testing.T) {
	once := NormalizeCouponCode("  Order 1500 ")
	assert.Equal(t, once, NormalizeCouponCode(once))
}

func TestLookupCoupon(t *testing.T) {
	def, ok := LookupCoupon("SAVE 10")
	require.True(t, ok)
	assert.Equal(t, "save10", def.Code)
	assert.Equal(t, ScopeItem, def.Scope)
	assert.Equal(t, "0.1", def.Rate.String())
	assert.False(t, def.HasMinOrder())

	def, ok = LookupCoupon("order1500")
	require.True(t, ok)
	assert.Equal(t, ScopeOrder, def.Scope)
	assert.True(t, def.HasMinOrder())
	assert.Equal(t, "1500", def.MinOrder.String())

	_, ok = LookupCoupon("bogus99")
	assert.False(t, ok)

	_, ok = LookupCoupon("")
	assert.False(t, ok)
}

func TestFormatCouponPillLabel(t *testing.T) {
	assert.Equal(t, "SAVE10", FormatCouponPillLabel("save 10"))
	assert.Equal(t, "ORDER1500", FormatCouponPillLabel("Order1500"))
	assert.Equal(t, "", FormatCouponPillLabel(""))
}
