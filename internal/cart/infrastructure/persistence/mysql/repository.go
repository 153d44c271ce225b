package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/beautyassistant/internal/cart/domain"
	"gorm.io/gorm"
)

type cartRepository struct{ db *gorm.DB }

func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(cart).Error
}

func (r *cartRepository) Delete(ctx context.Context, sessionID string) error {
	var cart domain.Cart
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCartNotFound
	}
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.CartItem{}, "cart_id = ?", cart.ID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&cart).Error
}

func (r *cartRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Cart{}).
		Where("id IN (?)", r.db.Model(&domain.CartItem{}).Select("DISTINCT cart_id")).
		Count(&count).Error
	return count, err
}
