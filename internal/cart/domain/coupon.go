package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CouponScope 优惠券作用域
type CouponScope string

const (
	// ScopeItem 商品级优惠券，作用于 couponApplicable 匹配的购物车行
	ScopeItem CouponScope = "item"
	// ScopeOrder 订单级优惠券，作用于整单小计
	ScopeOrder CouponScope = "order"
)

// CouponDefinition 优惠券定义，进程启动时静态注册，不可变
type CouponDefinition struct {
	Code     string
	Rate     decimal.Decimal
	Label    string
	Scope    CouponScope
	MinOrder decimal.Decimal
}

// HasMinOrder 是否存在最低订单金额门槛
func (d CouponDefinition) HasMinOrder() bool {
	return d.MinOrder.IsPositive()
}

var couponWhitespace = regexp.MustCompile(`\s+`)

// NormalizeCouponCode 归一化优惠券码：去除所有空白并转小写。幂等。
func NormalizeCouponCode(code string) string {
	if code == "" {
		return ""
	}
	return strings.ToLower(couponWhitespace.ReplaceAllString(code, ""))
}

func rate(v string) decimal.Decimal { return decimal.RequireFromString(v) }

var couponDefinitions = map[string]CouponDefinition{
	"save10":        {Code: "save10", Rate: rate("0.10"), Label: "Save 10", Scope: ScopeItem},
	"save15":        {Code: "save15", Rate: rate("0.15"), Label: "Save 15", Scope: ScopeItem},
	"save20":        {Code: "save20", Rate: rate("0.20"), Label: "Save 20", Scope: ScopeItem},
	"sitewide10":    {Code: "sitewide10", Rate: rate("0.10"), Label: "Sitewide 10", Scope: ScopeOrder},
	"cartlevel15":   {Code: "cartlevel15", Rate: rate("0.15"), Label: "Cart Level 15", Scope: ScopeOrder},
	"anniversary15": {Code: "anniversary15", Rate: rate("0.15"), Label: "Anniversary 15", Scope: ScopeItem},
	"orderlevel15":  {Code: "orderlevel15", Rate: rate("0.15"), Label: "Order Level 15", Scope: ScopeOrder},
	"order10":       {Code: "order10", Rate: rate("0.10"), Label: "10% off", Scope: ScopeOrder},
	"order15":       {Code: "order15", Rate: rate("0.15"), Label: "15% off", Scope: ScopeOrder},
	"order20":       {Code: "order20", Rate: rate("0.20"), Label: "20% off", Scope: ScopeOrder},
	"order1500":     {Code: "order1500", Rate: rate("0.15"), Label: "Order $1500", Scope: ScopeOrder, MinOrder: rate("1500")},
	"christmas20":   {Code: "christmas20", Rate: rate("0.20"), Label: "Christmas 20", Scope: ScopeItem},
	"newyear15":     {Code: "newyear15", Rate: rate("0.15"), Label: "New Year 15", Scope: ScopeItem},
	"first25":       {Code: "first25", Rate: rate("0.25"), Label: "First 25", Scope: ScopeItem},
}

// LookupCoupon 查询优惠券定义，先做归一化；未知码返回 false
func LookupCoupon(code string) (CouponDefinition, bool) {
	normalized := NormalizeCouponCode(code)
	if normalized == "" {
		return CouponDefinition{}, false
	}
	def, ok := couponDefinitions[normalized]
	return def, ok
}

// FormatCouponPillLabel 展示用的优惠券码标签
func FormatCouponPillLabel(code string) string {
	if code == "" {
		return ""
	}
	return strings.ToUpper(NormalizeCouponCode(code))
}
