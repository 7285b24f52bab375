package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/logger"
	"github.com/yungbote/catalog-backend/internal/repos"
)

// ProductInput carries the five mutable fields plus the money pair, already
// shape-validated by the request layer.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	Stock       int
	Category    string
}

// ListFilter narrows List to a category and/or active products only. Zero
// value means everything.
type ListFilter struct {
	Category   string
	ActiveOnly bool
}

type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error)
	RemoveStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error)
	Activate(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo}
}

func (ps *productService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	price, err := domain.NewMoney(input.Price, input.Currency)
	if err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(input.Name, input.Description, price, input.Stock, input.Category)
	if err != nil {
		return nil, err
	}

	var out *domain.Product
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		saved, err := ps.productRepo.Save(ctx, tx, product)
		if err != nil {
			return err
		}
		out = saved
		return nil
	}); err != nil {
		ps.log.Warn("Create failed", "error", err)
		return nil, err
	}
	ps.log.Info("Product created", "product_id", out.ID, "category", out.Category)
	return out, nil
}

func (ps *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := ps.productRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (ps *productService) List(ctx context.Context, filter ListFilter) ([]*domain.Product, error) {
	var (
		products []*domain.Product
		err      error
	)
	switch {
	case filter.Category != "":
		products, err = ps.productRepo.GetByCategory(ctx, nil, filter.Category)
	case filter.ActiveOnly:
		products, err = ps.productRepo.GetActive(ctx, nil)
	default:
		products, err = ps.productRepo.GetAll(ctx, nil)
	}
	if err != nil {
		return nil, err
	}
	if filter.Category != "" && filter.ActiveOnly {
		filtered := make([]*domain.Product, 0, len(products))
		for _, p := range products {
			if p.Active {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	return products, nil
}

func (ps *productService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error) {
	price, err := domain.NewMoney(input.Price, input.Currency)
	if err != nil {
		return nil, err
	}

	var out *domain.Product
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := ps.productRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := product.Update(input.Name, input.Description, price, input.Stock, input.Category); err != nil {
			return err
		}
		saved, err := ps.productRepo.Save(ctx, tx, product)
		if err != nil {
			return err
		}
		out = saved
		return nil
	}); err != nil {
		return nil, err
	}
	ps.log.Info("Product updated", "product_id", id)
	return out, nil
}

func (ps *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := ps.productRepo.ExistsByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return ps.productRepo.Delete(ctx, tx, id)
	}); err != nil {
		return err
	}
	ps.log.Info("Product deleted", "product_id", id)
	return nil
}

func (ps *productService) AddStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error) {
	return ps.mutate(ctx, id, func(p *domain.Product) error {
		return p.AddStock(quantity)
	})
}

func (ps *productService) RemoveStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error) {
	return ps.mutate(ctx, id, func(p *domain.Product) error {
		return p.RemoveStock(quantity)
	})
}

func (ps *productService) Activate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return ps.mutate(ctx, id, func(p *domain.Product) error {
		return p.Activate()
	})
}

func (ps *productService) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return ps.mutate(ctx, id, func(p *domain.Product) error {
		return p.Deactivate()
	})
}

// mutate runs fetch → aggregate operation → save in one unit of work.
func (ps *productService) mutate(ctx context.Context, id uuid.UUID, op func(*domain.Product) error) (*domain.Product, error) {
	var out *domain.Product
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := ps.productRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := op(product); err != nil {
			return err
		}
		saved, err := ps.productRepo.Save(ctx, tx, product)
		if err != nil {
			return err
		}
		out = saved
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
