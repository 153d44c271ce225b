package domain

import "time"

// CartItemAddedEvent 购物车添加商品事件
type CartItemAddedEvent struct {
	SessionID string    `json:"session_id"`
	ProductID string    `json:"product_id"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Qty       int       `json:"qty"`
	Price     string    `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// CouponAppliedEvent 优惠券应用事件
type CouponAppliedEvent struct {
	SessionID string    `json:"session_id"`
	Code      string    `json:"code"`
	Scope     string    `json:"scope"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// CouponRemovedEvent 优惠券移除事件
type CouponRemovedEvent struct {
	SessionID string    `json:"session_id"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

// CartClearedEvent 购物车清空事件
type CartClearedEvent struct {
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}
