package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/catalog"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product (admin only)
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.NameSq, catalog.Category(req.Category), valueobject.NewMoneyEUR(req.Price), req.Stock)
	if err != nil {
		return nil, err
	}

	if req.Description != "" || req.DescriptionSq != "" {
		product.SetDescription(req.Description, req.DescriptionSq)
	}
	product.ImageURL = req.ImageURL

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Get returns a single product
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns a page of products with the total count
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	f := toSharedFilter(filter)

	products, err := s.productRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, ToProductResponse(&products[i]))
	}
	return items, total, nil
}

// Update applies a partial update to a product (admin only)
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.NameSq != nil {
		product.NameSq = *req.NameSq
	}
	if req.Description != nil || req.DescriptionSq != nil {
		description := product.Description
		descriptionSq := product.DescriptionSq
		if req.Description != nil {
			description = *req.Description
		}
		if req.DescriptionSq != nil {
			descriptionSq = *req.DescriptionSq
		}
		product.SetDescription(description, descriptionSq)
	}
	if req.Price != nil {
		if err := product.SetPrice(valueobject.NewMoneyEUR(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		if *req.IsActive {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// AdjustStock changes the stock level by a delta (admin only)
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.AdjustStock(req.Delta); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product from the catalog (admin only)
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
