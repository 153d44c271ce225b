package domain

import "github.com/shopspring/decimal"

// Product 搜索侧的商品快照，由目录上下文加载，只读
type Product struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	ProductType   string          `json:"product_type"`
	Description   string          `json:"description"`
	Composition   string          `json:"composition"`
	Features      []string        `json:"features"`
	Benefits      []string        `json:"benefits"`
	Ingredients   []string        `json:"ingredients"`
	Collections   []string        `json:"collections"`
	Categories    []string        `json:"categories"`
	Concerns      []string        `json:"concerns"`
	SkinType      string          `json:"skin_type"`
	Finish        string          `json:"finish"`
	Coverage      string          `json:"coverage"`
	Tags          []string        `json:"tags"`
	SPF           int             `json:"spf"`
	FragranceFree bool            `json:"fragrance_free"`
	Vegan         bool            `json:"vegan"`
	Price         decimal.Decimal `json:"price"`
	Rating        float64         `json:"rating"`
	Gender        string          `json:"gender"`
	ImageURL      string          `json:"image_url"`
}
