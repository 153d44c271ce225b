// Package catalogreader 把商品目录上下文适配为购物车侧的 ProductReader 端口
package catalogreader

import (
	"context"

	cartdomain "github.com/wyfcoding/beautyassistant/internal/cart/domain"
	catalogapp "github.com/wyfcoding/beautyassistant/internal/catalog/application"
)

type catalogReader struct {
	catalog *catalogapp.CatalogQueryService
}

// New 创建目录读取适配器
func New(catalog *catalogapp.CatalogQueryService) cartdomain.ProductReader {
	return &catalogReader{catalog: catalog}
}

func (r *catalogReader) GetProduct(ctx context.Context, productID string) (*cartdomain.ProductInfo, error) {
	p, err := r.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	variants := make([]cartdomain.ProductVariant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, cartdomain.ProductVariant{
			Size:  v.Size,
			Price: v.Price,
			MSRP:  v.MSRP,
		})
	}

	return &cartdomain.ProductInfo{
		ProductID:        p.ProductID,
		Name:             p.Name,
		Price:            p.Price,
		MSRP:             p.MSRP,
		Colors:           p.Colors,
		Sizes:            p.Sizes,
		Variants:         variants,
		CouponApplicable: p.CouponApplicable,
		Promotions:       p.Promotions,
		ImageURL:         p.ImageURL,
	}, nil
}
