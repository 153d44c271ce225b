package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func matcherFixture() []*Product {
	return []*Product{
		{
			ProductID:   "serum-1",
			Name:        "Radiance Concentrate",
			Category:    "Skincare",
			ProductType: "Treatment",
			Benefits:    []string{"Moisturizing", "Glow boost"},
		},
		{
			ProductID:   "clean-1",
			Name:        "Gentle Foam Wash",
			Category:    "Skincare",
			ProductType: "Cleanser",
			Description: "A daily gel cleanser.",
		},
		{
			ProductID:   "lip-1",
			Name:        "Velvet Lipstick",
			Category:    "Makeup",
			ProductType: "Lipstick",
		},
	}
}

func TestMatchesQueryDirectHit(t *testing.T) {
	products := matcherFixture()
	assert.True(t, MatchesQuery(products[1], "foam cleanser"))
	assert.False(t, MatchesQuery(products[2], "foam cleanser"))
}

func TestMatchesQuerySynonymHit(t *testing.T) {
	// "hydrating" 本身不在商品文本里，经同义词 moisturizing 命中；
	// "serum" 经 treatment/concentrate 命中
	p := matcherFixture()[0]
	assert.True(t, MatchesQuery(p, "show me a hydrating serum"))
}

func TestMatchesQueryAllStopWords(t *testing.T) {
	// 词项全被停用词吃掉时视为命中
	for _, p := range matcherFixture() {
		assert.True(t, MatchesQuery(p, "show me the best recommendations"))
	}
}

func TestMatchesQueryRequiresEveryToken(t *testing.T) {
	p := matcherFixture()[0]
	assert.False(t, MatchesQuery(p, "hydrating lipstick"))
}

func TestFilterByQuery(t *testing.T) {
	products := matcherFixture()

	out := FilterByQuery(products, "cleanser")
	assert.Len(t, out, 1)
	assert.Equal(t, "clean-1", out[0].ProductID)

	// 空查询返回原序全集
	assert.Equal(t, products, FilterByQuery(products, "   "))
}
