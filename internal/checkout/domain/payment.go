package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentOutcome 一次钱包支付尝试的结果
type PaymentOutcome string

const (
	// PaymentSuccess 支付完成，订单可确认
	PaymentSuccess PaymentOutcome = "success"
	// PaymentAborted 用户主动取消，静默返回购物车
	PaymentAborted PaymentOutcome = "aborted"
	// PaymentUnavailable 钱包不可用，回退到模拟支付面板
	PaymentUnavailable PaymentOutcome = "unavailable"
	// PaymentFailed 支付失败，回退到模拟支付面板
	PaymentFailed PaymentOutcome = "failed"
)

// PaymentResult 支付尝试结果与交易引用
type PaymentResult struct {
	Outcome PaymentOutcome `json:"outcome"`
	Ref     string         `json:"ref,omitempty"`
}

// PaymentProvider 支付端口
type PaymentProvider interface {
	Authorize(ctx context.Context, sessionID string, amount decimal.Decimal) (PaymentResult, error)
}
