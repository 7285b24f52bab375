package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/logger"
	"github.com/yungbote/catalog-backend/internal/types"
)

type ProductRepo interface {
	Save(ctx context.Context, tx *gorm.DB, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Product, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Product, error)
	GetByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*domain.Product, error)
	GetActive(ctx context.Context, tx *gorm.DB) ([]*domain.Product, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ExistsByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

// Save is insert-or-replace keyed by id. The replace path only matches the
// version the aggregate was loaded at; a lost race surfaces as
// domain.ErrVersionConflict instead of a silent overwrite.
func (pr *productRepo) Save(ctx context.Context, tx *gorm.DB, product *domain.Product) (*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	record := types.RecordFromProduct(product)

	res := transaction.WithContext(ctx).
		Model(&types.ProductRecord{}).
		Where("id = ? AND version = ?", record.ID, record.Version).
		Updates(map[string]any{
			"name":        record.Name,
			"description": record.Description,
			"price":       record.Price,
			"currency":    record.Currency,
			"stock":       record.Stock,
			"category":    record.Category,
			"active":      record.Active,
			"updated_at":  record.UpdatedAt,
			"version":     record.Version + 1,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 1 {
		product.Version = record.Version + 1
		return product, nil
	}

	// No row matched: either the product is new or someone else moved the
	// version under us.
	exists, err := pr.ExistsByID(ctx, transaction, record.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrVersionConflict
	}

	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	product.Version = record.Version
	return product, nil
}

func (pr *productRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var record types.ProductRecord
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.ToProduct()
}

func (pr *productRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var records []*types.ProductRecord
	// Ids are UUIDv7, so id order is creation order.
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return mapRecords(records)
}

func (pr *productRepo) GetByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var records []*types.ProductRecord
	if err := transaction.WithContext(ctx).
		Where("category = ?", category).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return mapRecords(records)
}

func (pr *productRepo) GetActive(ctx context.Context, tx *gorm.DB) ([]*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var records []*types.ProductRecord
	if err := transaction.WithContext(ctx).
		Where("active = ?", true).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return mapRecords(records)
}

// Delete is idempotent: deleting an absent id is not an error.
func (pr *productRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.ProductRecord{}).Error
}

func (pr *productRepo) ExistsByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ProductRecord{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapRecords(records []*types.ProductRecord) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(records))
	for _, record := range records {
		product, err := record.ToProduct()
		if err != nil {
			return nil, err
		}
		out = append(out, product)
	}
	return out, nil
}
