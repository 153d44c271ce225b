package domain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawCatalog 外部目录文档
type RawCatalog struct {
	Products []RawProduct `json:"products"`
}

// RawProduct 目录文档中的商品条目，字段名存在多种别名，
// 归一化只在导入边界做一次，下游不再处理别名
type RawProduct struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Composition      string          `json:"composition"`
	Price            decimal.Decimal `json:"price"`
	MSRP             decimal.Decimal `json:"msrp"`
	Category         string          `json:"category"`
	ProductType      string          `json:"product_type"`
	SkinType         string          `json:"skin_type"`
	Concerns         []string        `json:"concerns"`
	Finish           string          `json:"finish"`
	Coverage         string          `json:"coverage"`
	SPF              int             `json:"spf"`
	FragranceFree    bool            `json:"fragrance_free"`
	Vegan            bool            `json:"vegan"`
	Ingredients      []string        `json:"ingredients"`
	Features         []string        `json:"features"`
	Benefits         []string        `json:"benefits"`
	Collections      []string        `json:"collections"`
	Categories       []string        `json:"categories"`
	Tags             []string        `json:"tags"`
	Promotions       []string        `json:"promotions"`
	CouponApplicable string          `json:"coupon_applicable"`
	Colors           []string        `json:"colors"`
	Sizes            []string        `json:"sizes"`
	Variants         []Variant       `json:"variants"`
	Gender           string          `json:"gender"`
	ImageURL         string          `json:"image_url"`
	ImageGallery     []string        `json:"image_gallery"`

	Rating          *float64 `json:"rating"`
	StarRating      *float64 `json:"star_rating"`
	Reviews         *string  `json:"reviews"`
	ReviewCount     *string  `json:"review_count"`
	ReviewCountAlt  *string  `json:"reviewCount"`
}

var (
	keyBenefitsLead   = regexp.MustCompile(`(?i)^(?:\s*KEY BENEFITS\s*[:\-]\s*)+`)
	keyBenefitsLine   = regexp.MustCompile(`(?i)(^|\n)\s*KEY BENEFITS\s*[:\-]?\s*`)
	keyBenefitsInline = regexp.MustCompile(`(?i)\s+KEY BENEFITS\s*[:\-]?\s*`)
	blankRuns         = regexp.MustCompile(`\n{3,}`)
	spaceRuns         = regexp.MustCompile(`  +`)
	whitespace        = regexp.MustCompile(`\s+`)
)

// CleanDescription 去掉描述文本里的 "KEY BENEFITS" 样板词
func CleanDescription(text string) string {
	if text == "" {
		return text
	}
	result := keyBenefitsLead.ReplaceAllString(text, "")
	result = keyBenefitsLine.ReplaceAllString(result, "\n")
	result = keyBenefitsInline.ReplaceAllString(result, " ")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	result = spaceRuns.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// Normalize 把外部商品条目归一化为规范 Product
func (r RawProduct) Normalize() *Product {
	rating := 0.0
	if r.Rating != nil {
		rating = *r.Rating
	} else if r.StarRating != nil {
		rating = *r.StarRating
	}

	reviews := 0
	for _, raw := range []*string{r.Reviews, r.ReviewCount, r.ReviewCountAlt} {
		if raw == nil {
			continue
		}
		if parsed, err := strconv.Atoi(strings.ReplaceAll(*raw, ",", "")); err == nil {
			reviews = parsed
			break
		}
	}

	coupon := ""
	if trimmed := strings.TrimSpace(r.CouponApplicable); trimmed != "" {
		coupon = strings.ToLower(whitespace.ReplaceAllString(trimmed, ""))
	}

	return &Product{
		ProductID:        r.ID,
		Name:             r.Name,
		Description:      CleanDescription(r.Description),
		Composition:      r.Composition,
		Price:            r.Price,
		MSRP:             r.MSRP,
		Category:         r.Category,
		ProductType:      r.ProductType,
		SkinType:         r.SkinType,
		Concerns:         r.Concerns,
		Finish:           r.Finish,
		Coverage:         r.Coverage,
		SPF:              r.SPF,
		FragranceFree:    r.FragranceFree,
		Vegan:            r.Vegan,
		Ingredients:      r.Ingredients,
		Features:         r.Features,
		Benefits:         r.Benefits,
		Collections:      r.Collections,
		Categories:       r.Categories,
		Tags:             r.Tags,
		Promotions:       r.Promotions,
		CouponApplicable: coupon,
		Colors:           r.Colors,
		Sizes:            r.Sizes,
		Variants:         r.Variants,
		Gender:           r.Gender,
		Rating:           rating,
		Reviews:          reviews,
		ImageURL:         r.ImageURL,
		ImageGallery:     r.ImageGallery,
	}
}
