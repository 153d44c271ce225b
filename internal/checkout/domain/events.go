package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent 订单确认事件
type OrderPlacedEvent struct {
	OrderID   string          `json:"order_id"`
	SessionID string          `json:"session_id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Timestamp time.Time       `json:"timestamp"`
}

// PaymentFailedEvent 支付失败事件（含钱包不可用回退）
type PaymentFailedEvent struct {
	SessionID string         `json:"session_id"`
	Outcome   PaymentOutcome `json:"outcome"`
	Timestamp time.Time      `json:"timestamp"`
}
