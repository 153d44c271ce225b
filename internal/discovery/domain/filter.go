package domain

import (
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"
)

// SimpleFilter 快捷筛选标识，来自前端的筛选 chips
type SimpleFilter string

const (
	FilterUnder25       SimpleFilter = "under25"
	FilterUnder50       SimpleFilter = "under50"
	FilterVegan         SimpleFilter = "vegan"
	FilterFragranceFree SimpleFilter = "fragranceFree"
	FilterSensitive     SimpleFilter = "sensitive"
	FilterBestRated     SimpleFilter = "bestRated"
	FilterMore          SimpleFilter = "more"
)

var (
	price25 = decimal.NewFromInt(25)
	price50 = decimal.NewFromInt(50)
)

// ValidSimpleFilter 是否是已知的快捷筛选
func ValidSimpleFilter(f SimpleFilter) bool {
	switch f {
	case FilterUnder25, FilterUnder50, FilterVegan, FilterFragranceFree,
		FilterSensitive, FilterBestRated, FilterMore:
		return true
	}
	return false
}

// ApplySimpleFilter 应用快捷筛选。"more" 是随机探索：打乱后取前 10 个
func ApplySimpleFilter(products []*Product, filter SimpleFilter) []*Product {
	switch filter {
	case FilterUnder25:
		return filterBy(products, func(p *Product) bool { return p.Price.LessThanOrEqual(price25) })
	case FilterUnder50:
		return filterBy(products, func(p *Product) bool { return p.Price.LessThanOrEqual(price50) })
	case FilterVegan:
		return filterBy(products, func(p *Product) bool { return p.Vegan })
	case FilterFragranceFree:
		return filterBy(products, func(p *Product) bool { return p.FragranceFree })
	case FilterSensitive:
		return filterBy(products, func(p *Product) bool {
			return strings.ToLower(p.SkinType) == "sensitive"
		})
	case FilterBestRated:
		return filterBy(products, func(p *Product) bool { return p.Rating >= 4.5 })
	case FilterMore:
		shuffled := make([]*Product, len(products))
		copy(shuffled, products)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if len(shuffled) > 10 {
			shuffled = shuffled[:10]
		}
		return shuffled
	}
	return products
}

// ApplyIntentFilters 按意图字段逐项收窄，缺省字段不参与
func ApplyIntentFilters(products []*Product, intent Intent) []*Product {
	out := products
	if intent.ProductCategory != "" {
		needle := strings.ToLower(intent.ProductCategory)
		out = filterBy(out, func(p *Product) bool {
			return strings.Contains(strings.ToLower(p.Category), needle) ||
				strings.Contains(strings.ToLower(p.ProductType), needle)
		})
	}
	if intent.SkinType != "" {
		needle := strings.ToLower(intent.SkinType)
		out = filterBy(out, func(p *Product) bool {
			return strings.Contains(strings.ToLower(p.SkinType), needle)
		})
	}
	if intent.Concern != "" {
		needle := strings.ToLower(intent.Concern)
		out = filterBy(out, func(p *Product) bool {
			return containsFold(p.Concerns, needle) || containsFold(p.Benefits, needle)
		})
	}
	if intent.Finish != "" {
		needle := strings.ToLower(intent.Finish)
		out = filterBy(out, func(p *Product) bool {
			return strings.Contains(strings.ToLower(p.Finish), needle)
		})
	}
	if intent.Coverage != "" {
		needle := strings.ToLower(intent.Coverage)
		out = filterBy(out, func(p *Product) bool {
			return strings.Contains(strings.ToLower(p.Coverage), needle)
		})
	}
	if intent.SPFMin > 0 {
		out = filterBy(out, func(p *Product) bool { return p.SPF >= intent.SPFMin })
	}
	if intent.FragranceFree {
		out = filterBy(out, func(p *Product) bool { return p.FragranceFree })
	}
	if intent.Vegan {
		out = filterBy(out, func(p *Product) bool { return p.Vegan })
	}
	return out
}

// ApplyGenderFilter 按性别精确过滤；空值表示不限
func ApplyGenderFilter(products []*Product, gender string) []*Product {
	if gender == "" {
		return products
	}
	return filterBy(products, func(p *Product) bool { return p.Gender == gender })
}

// Pipeline 组合筛选：查询词 → 意图 → 快捷筛选 → 性别，固定顺序，各级独立可缺省
type Pipeline struct {
	Query  string
	Intent Intent
	Filter SimpleFilter
	Gender string
}

// Run 在商品快照上执行整条筛选流水线
func (pl Pipeline) Run(products []*Product) []*Product {
	out := FilterByQuery(products, pl.Query)
	out = ApplyIntentFilters(out, pl.Intent)
	if pl.Filter != "" {
		out = ApplySimpleFilter(out, pl.Filter)
	}
	out = ApplyGenderFilter(out, pl.Gender)
	return out
}

func filterBy(products []*Product, keep func(*Product) bool) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
