package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StringList 以 JSON 列形式存储的字符串列表
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	return string(data), err
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	return json.Unmarshal(data, l)
}

// Variant 商品规格变体（尺寸级价格覆盖）
type Variant struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
	MSRP  decimal.Decimal `json:"msrp"`
}

// VariantList 以 JSON 列形式存储的变体列表
type VariantList []Variant

func (l VariantList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	return string(data), err
}

func (l *VariantList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for VariantList: %T", value)
	}
	return json.Unmarshal(data, l)
}

// Product 商品目录条目，导入时归一化为唯一的规范形态
type Product struct {
	gorm.Model
	ProductID        string          `gorm:"column:product_id;type:varchar(64);uniqueIndex;not null" json:"product_id"`
	Name             string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description      string          `gorm:"column:description;type:text" json:"description"`
	Composition      string          `gorm:"column:composition;type:text" json:"composition"`
	Price            decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	MSRP             decimal.Decimal `gorm:"column:msrp;type:decimal(10,2)" json:"msrp"`
	Category         string          `gorm:"column:category;type:varchar(100);index" json:"category"`
	ProductType      string          `gorm:"column:product_type;type:varchar(100)" json:"product_type"`
	SkinType         string          `gorm:"column:skin_type;type:varchar(50)" json:"skin_type"`
	Concerns         StringList      `gorm:"column:concerns;type:json" json:"concerns"`
	Finish           string          `gorm:"column:finish;type:varchar(50)" json:"finish"`
	Coverage         string          `gorm:"column:coverage;type:varchar(50)" json:"coverage"`
	SPF              int             `gorm:"column:spf" json:"spf"`
	FragranceFree    bool            `gorm:"column:fragrance_free" json:"fragrance_free"`
	Vegan            bool            `gorm:"column:vegan" json:"vegan"`
	Ingredients      StringList      `gorm:"column:ingredients;type:json" json:"ingredients"`
	Features         StringList      `gorm:"column:features;type:json" json:"features"`
	Benefits         StringList      `gorm:"column:benefits;type:json" json:"benefits"`
	Collections      StringList      `gorm:"column:collections;type:json" json:"collections"`
	Categories       StringList      `gorm:"column:categories;type:json" json:"categories"`
	Tags             StringList      `gorm:"column:tags;type:json" json:"tags"`
	Promotions       StringList      `gorm:"column:promotions;type:json" json:"promotions"`
	CouponApplicable string          `gorm:"column:coupon_applicable;type:varchar(64)" json:"coupon_applicable"`
	Colors           StringList      `gorm:"column:colors;type:json" json:"colors"`
	Sizes            StringList      `gorm:"column:sizes;type:json" json:"sizes"`
	Variants         VariantList     `gorm:"column:variants;type:json" json:"variants"`
	Gender           string          `gorm:"column:gender;type:varchar(20);index" json:"gender"`
	Rating           float64         `gorm:"column:rating" json:"rating"`
	Reviews          int             `gorm:"column:reviews" json:"reviews"`
	ImageURL         string          `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
	ImageGallery     StringList      `gorm:"column:image_gallery;type:json" json:"image_gallery"`
}

func (Product) TableName() string { return "products" }

// EffectiveMSRP 返回标价；缺失时按售价的 1.2 倍取整推导
func (p *Product) EffectiveMSRP() decimal.Decimal {
	if p.MSRP.IsPositive() {
		return p.MSRP
	}
	return p.Price.Mul(decimal.NewFromFloat(1.2)).Round(0)
}

// VariantFor 返回指定尺寸的变体；未找到时 ok 为 false
func (p *Product) VariantFor(size string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Size == size {
			return v, true
		}
	}
	return Variant{}, false
}
