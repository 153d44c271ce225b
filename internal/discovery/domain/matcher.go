package domain

import "strings"

// stopWords 在分词后剔除的虚词与口水词
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "to": {}, "for": {},
	"of": {}, "in": {}, "on": {}, "with": {}, "without": {}, "my": {}, "me": {},
	"i": {}, "you": {}, "your": {}, "need": {}, "want": {}, "show": {},
	"best": {}, "bestsellers": {}, "recommend": {}, "recommendations": {},
	"find": {}, "looking": {}, "routine": {}, "set": {}, "collection": {},
	"collections": {}, "concern": {}, "concerns": {}, "category": {},
	"categories": {},
}

// synonymMap 词项到同义词的单向映射，用于在商品文本中做扩展匹配
var synonymMap = map[string][]string{
	"glow":          {"radiance", "brightening", "luminous"},
	"brightening":   {"glow", "radiance"},
	"hydrate":       {"hydrating", "moisturizing", "moisture"},
	"hydrating":     {"hydrate", "moisturizing"},
	"moisturizer":   {"moisturizing", "cream", "hydrating"},
	"serum":         {"treatment", "concentrate", "ampoule"},
	"cleanser":      {"cleanser", "wash", "foam", "gel"},
	"toner":         {"essence", "mist"},
	"sunscreen":     {"spf", "sun protection"},
	"antiaging":     {"anti-aging", "firming", "wrinkle"},
	"acne":          {"blemish", "breakout", "oil control"},
	"oily":          {"oil-control", "shine", "matte"},
	"matte":         {"oil control", "shine control"},
	"dewy":          {"glow", "radiance", "luminous"},
	"fragrancefree": {"unscented", "fragrance-free"},
	"vegan":         {"cruelty-free", "plant-based"},
}

// tokenize 小写分词并剔除停用词
func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// haystack 把商品所有可搜索字段拼成一条小写文本
func haystack(p *Product) string {
	parts := []string{p.Name, p.Category, p.ProductType, p.Description, p.Composition}
	parts = append(parts, p.Features...)
	parts = append(parts, p.Benefits...)
	parts = append(parts, p.Ingredients...)
	parts = append(parts, p.Collections...)
	parts = append(parts, p.Categories...)
	parts = append(parts, p.Concerns...)
	parts = append(parts, p.SkinType, p.Finish, p.Coverage)
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// MatchesQuery 查询词与商品文本的匹配判定。
// 每个词项必须直接命中或经同义词命中；词项全被停用词吃掉时视为命中。
func MatchesQuery(p *Product, query string) bool {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return true
	}

	hay := haystack(p)
	for _, token := range tokens {
		if strings.Contains(hay, token) {
			continue
		}
		matched := false
		for _, syn := range synonymMap[token] {
			if strings.Contains(hay, syn) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// FilterByQuery 返回命中查询词的商品子集；空查询返回原序全集
func FilterByQuery(products []*Product, query string) []*Product {
	if strings.TrimSpace(query) == "" {
		return products
	}
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if MatchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}
