// Package payment 提供模拟钱包支付实现。
// 真实网关在浏览器端，这里按配置与提示复现四种结果分支。
package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/beautyassistant/internal/checkout/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
	"github.com/wyfcoding/beautyassistant/pkg/utils"
)

type hintKey struct{}

// ContextWithHint 把模拟结果提示注入上下文，仅用于演示与测试
func ContextWithHint(ctx context.Context, outcome domain.PaymentOutcome) context.Context {
	return context.WithValue(ctx, hintKey{}, outcome)
}

func hintFromContext(ctx context.Context) (domain.PaymentOutcome, bool) {
	outcome, ok := ctx.Value(hintKey{}).(domain.PaymentOutcome)
	return outcome, ok
}

// WalletProvider 模拟钱包支付端，实现 domain.PaymentProvider
type WalletProvider struct {
	enabled bool
	ids     *utils.SnowflakeID
}

// NewWalletProvider 创建钱包支付端；enabled 为假时一律返回 unavailable
func NewWalletProvider(enabled bool, ids *utils.SnowflakeID) *WalletProvider {
	return &WalletProvider{enabled: enabled, ids: ids}
}

// Authorize 模拟一次钱包支付。上下文里的提示优先；未启用时钱包不可用。
func (p *WalletProvider) Authorize(ctx context.Context, sessionID string, amount decimal.Decimal) (domain.PaymentResult, error) {
	if hint, ok := hintFromContext(ctx); ok {
		result := domain.PaymentResult{Outcome: hint}
		if hint == domain.PaymentSuccess {
			result.Ref = p.newRef()
		}
		logger.Debug(ctx, "Wallet payment simulated from hint",
			"session_id", sessionID, "outcome", hint)
		return result, nil
	}

	if !p.enabled {
		return domain.PaymentResult{Outcome: domain.PaymentUnavailable}, nil
	}

	logger.Info(ctx, "Wallet payment authorized",
		"session_id", sessionID, "amount", amount.StringFixed(2))
	return domain.PaymentResult{
		Outcome: domain.PaymentSuccess,
		Ref:     p.newRef(),
	}, nil
}

func (p *WalletProvider) newRef() string {
	return fmt.Sprintf("wallet-%d", p.ids.Generate())
}
