package domain

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductVariant 商品尺寸变体的价格覆盖
type ProductVariant struct {
	Size  string
	Price decimal.Decimal
	MSRP  decimal.Decimal
}

// ProductInfo 构建购物车行所需的商品快照
type ProductInfo struct {
	ProductID        string
	Name             string
	Price            decimal.Decimal
	MSRP             decimal.Decimal
	Colors           []string
	Sizes            []string
	Variants         []ProductVariant
	CouponApplicable string
	Promotions       []string
	ImageURL         string
}

// ProductReader 商品目录读取端口
type ProductReader interface {
	GetProduct(ctx context.Context, productID string) (*ProductInfo, error)
}

// AddItemOptions 加购时用户选择的规格
type AddItemOptions struct {
	Qty   int
	Color string
	Size  string
	Fit   string
}

// FormatCartColor 购物车颜色展示：空值落到 Neutral，否则逐词首字母大写
func FormatCartColor(value string) string {
	if value == "" {
		return "Neutral"
	}
	words := strings.Split(value, " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// BuildCartItem 由商品快照与用户选择构建购物车行。
// 默认值：数量 1、第一个颜色、第一个尺寸（或 One size）；
// 选中尺寸存在变体时使用变体价格；标价缺失时按售价 1.2 倍取整；
// 自动促销至多保留一条。
func BuildCartItem(product *ProductInfo, opts AddItemOptions) CartItem {
	price := product.Price
	msrp := product.MSRP

	size := opts.Size
	if size == "" {
		if len(product.Sizes) > 0 {
			size = product.Sizes[0]
		} else {
			size = "One size"
		}
	}
	for _, v := range product.Variants {
		if v.Size == size {
			if v.Price.IsPositive() {
				price = v.Price
			}
			if v.MSRP.IsPositive() {
				msrp = v.MSRP
			}
			break
		}
	}
	if !msrp.IsPositive() {
		msrp = price.Mul(decimal.NewFromFloat(1.2)).Round(0)
	}

	color := opts.Color
	if color == "" && len(product.Colors) > 0 {
		color = product.Colors[0]
	}
	color = FormatCartColor(color)

	qty := opts.Qty
	if qty < 1 {
		qty = 1
	}

	var promotions StringList
	for _, p := range product.Promotions {
		if strings.TrimSpace(p) != "" {
			promotions = append(promotions, p)
			break
		}
	}

	return CartItem{
		ProductID:        product.ProductID,
		Name:             product.Name,
		Price:            price,
		MSRP:             msrp,
		Qty:              qty,
		Color:            color,
		Size:             size,
		Fit:              opts.Fit,
		ImageURL:         product.ImageURL,
		CouponApplicable: NormalizeCouponCode(product.CouponApplicable),
		Promotions:       promotions,
	}
}
