package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/catalog-backend/internal/domain"
)

// ProductRecord is the persistence row shape. It never leaves the repo
// layer; RecordFromProduct/ToProduct do the mapping in both directions.
type ProductRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Description string          `gorm:"type:varchar(500);column:description" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;column:price" json:"price"`
	Currency    string          `gorm:"type:char(3);not null;column:currency" json:"currency"`
	Stock       int             `gorm:"not null;column:stock" json:"stock"`
	Category    string          `gorm:"type:varchar(50);not null;index;column:category" json:"category"`
	Active      bool            `gorm:"not null;index;column:active" json:"active"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	Version     int64           `gorm:"not null;default:0;column:version" json:"-"`
}

func (ProductRecord) TableName() string {
	return "product"
}

func RecordFromProduct(p *domain.Product) *ProductRecord {
	return &ProductRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount(),
		Currency:    p.Price.CurrencyCode(),
		Stock:       p.Stock,
		Category:    p.Category,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

func (r *ProductRecord) ToProduct() (*domain.Product, error) {
	price, err := domain.NewMoney(r.Price, r.Currency)
	if err != nil {
		return nil, err
	}
	return &domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Stock:       r.Stock,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Active:      r.Active,
		Version:     r.Version,
	}, nil
}
