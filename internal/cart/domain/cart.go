package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StringList 以 JSON 列形式存储的字符串列表
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	return string(data), err
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	return json.Unmarshal(data, l)
}

// CouponMap 商品行ID → 已应用优惠券码列表，以 JSON 列形式存储
type CouponMap map[string][]string

func (m CouponMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	return string(data), err
}

func (m *CouponMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for CouponMap: %T", value)
	}
	return json.Unmarshal(data, m)
}

// Cart 购物车聚合根。优惠券状态的不变式：同一个码在
// appliedItemCoupons / appliedCartCoupons / inactiveCoupons 中至多出现一处。
type Cart struct {
	gorm.Model
	SessionID          string     `gorm:"column:session_id;type:varchar(64);uniqueIndex;not null" json:"session_id"`
	Items              []CartItem `gorm:"foreignKey:CartID" json:"items"`
	AppliedItemCoupons CouponMap  `gorm:"column:applied_item_coupons;type:json" json:"applied_item_coupons"`
	AppliedCartCoupons StringList `gorm:"column:applied_cart_coupons;type:json" json:"applied_cart_coupons"`
	InactiveCoupons    StringList `gorm:"column:inactive_coupons;type:json" json:"inactive_coupons"`
}

func (Cart) TableName() string { return "carts" }

// CartItem 购物车行。相同 (商品, 尺寸, 颜色) 合并，不同规格永不合并。
type CartItem struct {
	gorm.Model
	CartID           uint            `gorm:"column:cart_id;index;not null" json:"-"`
	ProductID        string          `gorm:"column:product_id;type:varchar(64);not null" json:"product_id"`
	Name             string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price            decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	MSRP             decimal.Decimal `gorm:"column:msrp;type:decimal(10,2)" json:"msrp"`
	Qty              int             `gorm:"column:qty;not null" json:"qty"`
	Color            string          `gorm:"column:color;type:varchar(100)" json:"color"`
	Size             string          `gorm:"column:size;type:varchar(100)" json:"size"`
	Fit              string          `gorm:"column:fit;type:varchar(100)" json:"fit"`
	ImageURL         string          `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
	CouponApplicable string          `gorm:"column:coupon_applicable;type:varchar(64)" json:"coupon_applicable"`
	Promotions       StringList      `gorm:"column:promotions;type:json" json:"promotions"`
}

func (CartItem) TableName() string { return "cart_items" }

// AddItem 添加商品行；已有相同 (商品, 尺寸, 颜色) 的行则累加数量
func (c *Cart) AddItem(line CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == line.ProductID &&
			c.Items[i].Size == line.Size &&
			c.Items[i].Color == line.Color {
			c.Items[i].Qty += line.Qty
			return
		}
	}
	c.Items = append(c.Items, line)
}

// RemoveItem 按 (商品, 尺寸, 颜色) 移除商品行
func (c *Cart) RemoveItem(productID, size, color string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID &&
			c.Items[i].Size == size &&
			c.Items[i].Color == color {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// ItemCount 合计商品数量
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Qty
	}
	return count
}
