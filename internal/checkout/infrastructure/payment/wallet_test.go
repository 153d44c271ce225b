package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/beautyassistant/internal/checkout/domain"
	"github.com/wyfcoding/beautyassistant/pkg/utils"
)

func TestWalletDisabledIsUnavailable(t *testing.T) {
	provider := NewWalletProvider(false, utils.NewSnowflakeID(1))

	result, err := provider.Authorize(context.Background(), "s1", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentUnavailable, result.Outcome)
	assert.Empty(t, result.Ref)
}

func TestWalletEnabledSucceedsWithRef(t *testing.T) {
	provider := NewWalletProvider(true, utils.NewSnowflakeID(1))

	result, err := provider.Authorize(context.Background(), "s1", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSuccess, result.Outcome)
	assert.Regexp(t, `^wallet-\d+$`, result.Ref)
}

func TestWalletHintOverridesConfig(t *testing.T) {
	provider := NewWalletProvider(true, utils.NewSnowflakeID(1))

	tests := []struct {
		outcome domain.PaymentOutcome
		hasRef  bool
	}{
		{outcome: domain.PaymentAborted, hasRef: false},
		{outcome: domain.PaymentFailed, hasRef: false},
		{outcome: domain.PaymentUnavailable, hasRef: false},
		{outcome: domain.PaymentSuccess, hasRef: true},
	}

	for _, tt := range tests {
		ctx := ContextWithHint(context.Background(), tt.outcome)
		result, err := provider.Authorize(ctx, "s1", decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.Equal(t, tt.outcome, result.Outcome)
		assert.Equal(t, tt.hasRef, result.Ref != "")
	}
}
