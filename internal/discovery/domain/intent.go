package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent 从自由文本推断出的结构化筛选条件。
// 零值字段表示"未指定"：空字符串、0、false 都不会触发对应的筛选。
type Intent struct {
	ProductCategory string `json:"product_category,omitempty"`
	SkinType        string `json:"skin_type,omitempty"`
	Concern         string `json:"concern,omitempty"`
	Finish          string `json:"finish,omitempty"`
	Coverage        string `json:"coverage,omitempty"`
	SPFMin          int    `json:"spf_min,omitempty"`
	FragranceFree   bool   `json:"fragrance_free,omitempty"`
	Vegan           bool   `json:"vegan,omitempty"`
}

// IsZero 是否未提取出任何条件
func (i Intent) IsZero() bool {
	return i == Intent{}
}

// Merge 与上一轮意图合并：本轮提取到的字段覆盖，未提取到的字段沿用上一轮
func (i Intent) Merge(previous Intent) Intent {
	merged := previous
	if i.ProductCategory != "" {
		merged.ProductCategory = i.ProductCategory
	}
	if i.SkinType != "" {
		merged.SkinType = i.SkinType
	}
	if i.Concern != "" {
		merged.Concern = i.Concern
	}
	if i.Finish != "" {
		merged.Finish = i.Finish
	}
	if i.Coverage != "" {
		merged.Coverage = i.Coverage
	}
	if i.SPFMin > 0 {
		merged.SPFMin = i.SPFMin
	}
	if i.FragranceFree {
		merged.FragranceFree = true
	}
	if i.Vegan {
		merged.Vegan = true
	}
	return merged
}

var (
	categoryPattern      = regexp.MustCompile(`\b(skincare|skin care|makeup|cosmetics|haircare|hair care|fragrance|perfume|tools|beauty tools)\b`)
	skinTypePattern      = regexp.MustCompile(`\b(oily|dry|combination|combo|sensitive|normal)\b`)
	concernPattern       = regexp.MustCompile(`\b(acne|blemish|breakout|redness|dark spots|brightening|dullness|wrinkle|anti-aging|hydration|pores)\b`)
	finishPattern        = regexp.MustCompile(`\b(matte|dewy|natural|radiant)\b`)
	coveragePattern      = regexp.MustCompile(`\b(light|medium|full)\s*coverage\b`)
	spfPattern           = regexp.MustCompile(`\bspf\s*(\d{2})\b`)
	fragranceFreePattern = regexp.MustCompile(`\bfragrance[-\s]*free|unscented\b`)
	veganPattern         = regexp.MustCompile(`\bvegan|cruelty[-\s]*free\b`)
	spaceCollapse        = regexp.MustCompile(`\s+`)
)

// ParseIntent 从自由文本提取结构化意图。各提取器相互独立，
// 可以在同一条查询上同时命中多个；未命中的字段保持零值。
// 返回的 cleaned 是折叠空白后的原文，不剔除已命中的词。
func ParseIntent(rawQuery string) (string, Intent) {
	normalized := strings.ToLower(rawQuery)
	var intent Intent

	if m := categoryPattern.FindStringSubmatch(normalized); m != nil {
		intent.ProductCategory = strings.Replace(m[1], " ", "", 1)
	}
	if m := skinTypePattern.FindStringSubmatch(normalized); m != nil {
		skinType := m[1]
		if skinType == "combo" {
			skinType = "combination"
		}
		intent.SkinType = skinType
	}
	if m := concernPattern.FindStringSubmatch(normalized); m != nil {
		intent.Concern = m[1]
	}
	if m := finishPattern.FindStringSubmatch(normalized); m != nil {
		intent.Finish = m[1]
	}
	if m := coveragePattern.FindStringSubmatch(normalized); m != nil {
		intent.Coverage = m[1]
	}
	if m := spfPattern.FindStringSubmatch(normalized); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			intent.SPFMin = v
		}
	}
	intent.FragranceFree = fragranceFreePattern.MatchString(normalized)
	intent.Vegan = veganPattern.MatchString(normalized)

	cleaned := strings.TrimSpace(spaceCollapse.ReplaceAllString(rawQuery, " "))
	return cleaned, intent
}

var returnPolicyPattern = regexp.MustCompile(`return\s*policy|what(\s+is)?\s+the\s+return\s*policy|returns?\s*policy`)

// IsReturnPolicyQuery 退货政策类提问在进入搜索前直接以固定话术回答
func IsReturnPolicyQuery(query string) bool {
	n := strings.TrimSpace(strings.ToLower(query))
	return returnPolicyPattern.MatchString(n) || n == "return policy" || n == "returns"
}
