package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	StatusConfirmed OrderStatus = "confirmed"
)

// Order 已确认的订单，含下单时刻的明细与合计快照
type Order struct {
	gorm.Model
	OrderID          string          `gorm:"column:order_id;type:varchar(16);uniqueIndex;not null" json:"order_id"`
	SessionID        string          `gorm:"column:session_id;type:varchar(64);index;not null" json:"session_id"`
	Status           OrderStatus     `gorm:"column:status;type:varchar(20);not null" json:"status"`
	Items            []OrderItem     `gorm:"foreignKey:OrderRef" json:"items"`
	Subtotal         decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2)" json:"subtotal"`
	OrderDiscount    decimal.Decimal `gorm:"column:order_discount;type:decimal(10,2)" json:"order_discount"`
	CartPromotion    decimal.Decimal `gorm:"column:cart_promotion;type:decimal(10,2)" json:"cart_promotion"`
	Shipping         decimal.Decimal `gorm:"column:shipping;type:decimal(10,2)" json:"shipping"`
	ShippingDiscount decimal.Decimal `gorm:"column:shipping_discount;type:decimal(10,2)" json:"shipping_discount"`
	Taxes            decimal.Decimal `gorm:"column:taxes;type:decimal(10,2)" json:"taxes"`
	Total            decimal.Decimal `gorm:"column:total;type:decimal(10,2)" json:"total"`
	PaymentRef       string          `gorm:"column:payment_ref;type:varchar(64)" json:"payment_ref"`
	DeliveryEstimate string          `gorm:"column:delivery_estimate;type:varchar(64)" json:"delivery_estimate"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单行，复制自下单时的购物车行
type OrderItem struct {
	gorm.Model
	OrderRef  uint            `gorm:"column:order_ref;index;not null" json:"-"`
	ProductID string          `gorm:"column:product_id;type:varchar(64);not null" json:"product_id"`
	Name      string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Qty       int             `gorm:"column:qty;not null" json:"qty"`
	Color     string          `gorm:"column:color;type:varchar(50)" json:"color"`
	Size      string          `gorm:"column:size;type:varchar(50)" json:"size"`
	ImageURL  string          `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
}

func (OrderItem) TableName() string { return "order_items" }

// GenerateOrderID 取毫秒时间戳的后八位作为订单号，不足补零
func GenerateOrderID(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return fmt.Sprintf("%08s", millis)
}

// FormatDeliveryDate 预计送达日的展示格式："<星期> the <日><序数后缀>"
func FormatDeliveryDate(now time.Time, daysFromNow int) string {
	date := now.AddDate(0, 0, daysFromNow)
	day := date.Day()

	suffix := "th"
	switch {
	case day%10 == 1 && day%100 != 11:
		suffix = "st"
	case day%10 == 2 && day%100 != 12:
		suffix = "nd"
	case day%10 == 3 && day%100 != 13:
		suffix = "rd"
	}

	return fmt.Sprintf("%s the %d%s", date.Weekday().String(), day, suffix)
}
