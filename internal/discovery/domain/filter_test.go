package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []*Product {
	return []*Product{
		{
			ProductID: "p1", Name: "Petal Mist", Category: "Skincare", ProductType: "Toner",
			Price: decimal.NewFromInt(18), Rating: 4.6, Vegan: true, Gender: "Women",
		},
		{
			ProductID: "p2", Name: "Daily Sunscreen", Category: "Skincare", ProductType: "Sunscreen",
			Price: decimal.NewFromInt(32), Rating: 4.2, SPF: 50, FragranceFree: true, Gender: "Unisex",
		},
		{
			ProductID: "p3", Name: "Calming Cream", Category: "Skincare", ProductType: "Moisturizer",
			Price: decimal.NewFromInt(64), Rating: 4.8, SkinType: "Sensitive",
			Concerns: []string{"Redness"}, Gender: "Women",
		},
		{
			ProductID: "p4", Name: "Matte Foundation", Category: "Makeup", ProductType: "Foundation",
			Price: decimal.NewFromInt(45), Rating: 4.9, Finish: "Matte", Coverage: "Full",
			Gender: "Men",
		},
	}
}

func ids(products []*Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ProductID)
	}
	return out
}

func TestValidSimpleFilter(t *testing.T) {
	for _, f := range []SimpleFilter{FilterUnder25, FilterUnder50, FilterVegan,
		FilterFragranceFree, FilterSensitive, FilterBestRated, FilterMore} {
		assert.True(t, ValidSimpleFilter(f), string(f))
	}
	assert.False(t, ValidSimpleFilter("under100"))
	assert.False(t, ValidSimpleFilter(""))
}

func TestApplySimpleFilter(t *testing.T) {
	products := filterFixture()

	tests := []struct {
		filter SimpleFilter
		want   []string
	}{
		{filter: FilterUnder25, want: []string{"p1"}},
		{filter: FilterUnder50, want: []string{"p1", "p2", "p4"}},
		{filter: FilterVegan, want: []string{"p1"}},
		{filter: FilterFragranceFree, want: []string{"p2"}},
		{filter: FilterSensitive, want: []string{"p3"}},
		{filter: FilterBestRated, want: []string{"p1", "p3", "p4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(ApplySimpleFilter(products, tt.filter)))
		})
	}
}

func TestApplySimpleFilterMore(t *testing.T) {
	products := filterFixture()

	out := ApplySimpleFilter(products, FilterMore)

	// 随机探索保留全部（不足 10 个）且不修改原序列
	assert.ElementsMatch(t, []string{"p1", "p2", "p3", "p4"}, ids(out))
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(products))
}

func TestApplyIntentFilters(t *testing.T) {
	products := filterFixture()

	tests := []struct {
		name   string
		intent Intent
		want   []string
	}{
		{name: "zero intent keeps all", intent: Intent{}, want: []string{"p1", "p2", "p3", "p4"}},
		{name: "category matches product type too", intent: Intent{ProductCategory: "sunscreen"}, want: []string{"p2"}},
		{name: "skin type", intent: Intent{SkinType: "sensitive"}, want: []string{"p3"}},
		{name: "concern via concerns list", intent: Intent{Concern: "redness"}, want: []string{"p3"}},
		{name: "finish and coverage", intent: Intent{Finish: "matte", Coverage: "full"}, want: []string{"p4"}},
		{name: "spf minimum", intent: Intent{SPFMin: 30}, want: []string{"p2"}},
		{name: "combined narrows", intent: Intent{ProductCategory: "skincare", SPFMin: 30}, want: []string{"p2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(ApplyIntentFilters(products, tt.intent)))
		})
	}
}

func TestApplyIntentFiltersConcernViaBenefits(t *testing.T) {
	products := []*Product{
		{ProductID: "b1", Benefits: []string{"Visibly reduces dullness"}},
		{ProductID: "b2", Benefits: []string{"Firms skin"}},
	}

	out := ApplyIntentFilters(products, Intent{Concern: "dullness"})
	assert.Equal(t, []string{"b1"}, ids(out))
}

func TestApplyGenderFilter(t *testing.T) {
	products := filterFixture()

	assert.Equal(t, []string{"p1", "p3"}, ids(ApplyGenderFilter(products, "Women")))
	assert.Equal(t, []string{"p4"}, ids(ApplyGenderFilter(products, "Men")))
	assert.Len(t, ApplyGenderFilter(products, ""), 4)
}

func TestPipelineRun(t *testing.T) {
	products := filterFixture()

	out := Pipeline{
		Query:  "skincare",
		Intent: Intent{SPFMin: 30},
	}.Run(products)

	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ProductID)
}

func TestPipelineRunWithGender(t *testing.T) {
	products := filterFixture()

	out := Pipeline{Gender: "Women", Filter: FilterBestRated}.Run(products)

	assert.Equal(t, []string{"p1", "p3"}, ids(out))
}
