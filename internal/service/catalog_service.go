package service

import (
	"context"
	"fmt"

	"vastra/internal/model"
	"vastra/internal/repository"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
	blackoutRepo repository.BlackoutRepository
	logger       zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	blackoutRepo repository.BlackoutRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		blackoutRepo: blackoutRepo,
		logger:       logger.With().Str("service", "catalog").Logger(),
	}
}

// Categories lists all categories ordered by display order.
func (s *catalogService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category, deriving the slug from the name when
// the payload omits one.
func (s *catalogService) CreateCategory(ctx context.Context, category model.InsertCategory) (*model.Category, error) {
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}

	persisted, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", category.Slug).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().Int("category_id", persisted.ID).Str("slug", persisted.Slug).Msg("category created")

	return persisted, nil
}

// UpdateCategory applies a sparse patch.
func (s *catalogService) UpdateCategory(ctx context.Context, id int, patch model.UpdateCategory) (*model.Category, error) {
	category, err := s.categoryRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Int("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if category == nil {
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

// DeleteCategory removes a category.
func (s *catalogService) DeleteCategory(ctx context.Context, id int) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// Products lists products matching the filter.
func (s *catalogService) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category_slug", filter.CategorySlug).
			Str("search", filter.Search).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")

	return products, nil
}

// FeaturedProducts lists up to 8 active featured products.
func (s *catalogService) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetFeatured(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list featured products")
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return products, nil
}

// ProductBySlug retrieves a single product by slug.
func (s *catalogService) ProductBySlug(ctx context.Context, productSlug string) (*model.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", productSlug).Msg("failed to get product by slug")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("slug", productSlug).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// CreateProduct creates a product, deriving the slug from the name when the
// payload omits one.
func (s *catalogService) CreateProduct(ctx context.Context, product model.InsertProduct) (*model.Product, error) {
	if product.Slug == "" {
		product.Slug = slug.Make(product.Name)
	}

	persisted, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", product.Slug).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int("product_id", persisted.ID).Str("slug", persisted.Slug).Msg("product created")

	return persisted, nil
}

// UpdateProduct applies a sparse patch.
func (s *catalogService) UpdateProduct(ctx context.Context, id int, patch model.UpdateProduct) (*model.Product, error) {
	product, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// DeleteProduct removes a product.
func (s *catalogService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// BlackoutDates lists a product's blackout dates.
func (s *catalogService) BlackoutDates(ctx context.Context, productID int) ([]model.BlackoutDate, error) {
	blackouts, err := s.blackoutRepo.GetByProduct(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("failed to list blackout dates")
		return nil, fmt.Errorf("failed to list blackout dates: %w", err)
	}
	return blackouts, nil
}

// CreateBlackoutDate marks a date unavailable for a product.
func (s *catalogService) CreateBlackoutDate(ctx context.Context, blackout model.InsertBlackoutDate) (*model.BlackoutDate, error) {
	persisted, err := s.blackoutRepo.Create(ctx, blackout)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", blackout.ProductID).Msg("failed to create blackout date")
		return nil, fmt.Errorf("failed to create blackout date: %w", err)
	}
	return persisted, nil
}

// DeleteBlackoutDate removes a blackout date.
func (s *catalogService) DeleteBlackoutDate(ctx context.Context, id int) error {
	if err := s.blackoutRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("blackout_id", id).Msg("failed to delete blackout date")
		return fmt.Errorf("failed to delete blackout date: %w", err)
	}
	return nil
}

// Variants lists a product's size/colour inventory units.
func (s *catalogService) Variants(ctx context.Context, productID int) ([]model.ProductVariant, error) {
	variants, err := s.variantRepo.GetByProduct(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("failed to list variants")
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}
	return variants, nil
}

// CreateVariant creates a variant.
func (s *catalogService) CreateVariant(ctx context.Context, variant model.InsertProductVariant) (*model.ProductVariant, error) {
	persisted, err := s.variantRepo.Create(ctx, variant)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", variant.ProductID).Msg("failed to create variant")
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}
	return persisted, nil
}

// DeleteVariant removes a variant.
func (s *catalogService) DeleteVariant(ctx context.Context, id int) error {
	if err := s.variantRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("variant_id", id).Msg("failed to delete variant")
		return fmt.Errorf("failed to delete variant: %w", err)
	}
	return nil
}
