package domain

import "time"

// CatalogImportedEvent 目录导入完成事件
type CatalogImportedEvent struct {
	Source    string    `json:"source"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// ProductUpsertedEvent 商品写入事件
type ProductUpsertedEvent struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}
