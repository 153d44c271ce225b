package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntentExtractors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{
			name:  "category with space folded",
			query: "show me skin care",
			want:  Intent{ProductCategory: "skincare"},
		},
		{
			name:  "combo normalized to combination",
			query: "moisturizer for combo skin",
			want:  Intent{SkinType: "combination"},
		},
		{
			name:  "concern and finish together",
			query: "matte foundation for acne",
			want:  Intent{Concern: "acne", Finish: "matte"},
		},
		{
			name:  "coverage with two digit spf",
			query: "full coverage foundation spf 30",
			want:  Intent{Coverage: "full", SPFMin: 30},
		},
		{
			name:  "fragrance free and vegan flags",
			query: "fragrance-free vegan serum",
			want:  Intent{FragranceFree: true, Vegan: true},
		},
		{
			name:  "unscented counts as fragrance free",
			query: "unscented toner",
			want:  Intent{FragranceFree: true},
		},
		{
			name:  "no signals",
			query: "something nice",
			want:  Intent{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := ParseIntent(tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntentCleanedQuery(t *testing.T) {
	cleaned, _ := ParseIntent("  matte   foundation \n for oily skin ")
	assert.Equal(t, "matte foundation for oily skin", cleaned)
}

func TestIntentIsZero(t *testing.T) {
	assert.True(t, Intent{}.IsZero())
	assert.False(t, Intent{Vegan: true}.IsZero())
	assert.False(t, Intent{SPFMin: 30}.IsZero())
}

func TestIntentMerge(t *testing.T) {
	previous := Intent{ProductCategory: "skincare", SkinType: "oily", SPFMin: 30}
	current := Intent{SkinType: "dry", Vegan: true}

	merged := current.Merge(previous)

	// 本轮提取到的覆盖，未提取到的沿用上一轮
	assert.Equal(t, Intent{
		ProductCategory: "skincare",
		SkinType:        "dry",
		SPFMin:          30,
		Vegan:           true,
	}, merged)
}

func TestIntentMergeZeroKeepsPrevious(t *testing.T) {
	previous := Intent{Concern: "acne", FragranceFree: true}
	assert.Equal(t, previous, Intent{}.Merge(previous))
}

func TestIsReturnPolicyQuery(t *testing.T) {
	assert.True(t, IsReturnPolicyQuery("what is the return policy"))
	assert.True(t, IsReturnPolicyQuery("Return Policy"))
	assert.True(t, IsReturnPolicyQuery("returns"))
	assert.True(t, IsReturnPolicyQuery("tell me about your returns policy"))
	assert.False(t, IsReturnPolicyQuery("hydrating serum"))
	assert.False(t, IsReturnPolicyQuery("return address labels"))
}
