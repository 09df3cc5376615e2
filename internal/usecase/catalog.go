package usecase

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/ligue-vendas/internal/entity"
)

const salesAPIService = "sales_api"

type catalog struct {
	products   []entity.Product
	categories []entity.Category
}

// loadCatalog busca produtos e categorias em paralelo.
func loadCatalog(ctx context.Context, api SalesAPI, metrics MetricsRecorder, token string) (*catalog, error) {
	var c catalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := api.ListProducts(gctx, token)
		c.products = products
		return err
	})
	g.Go(func() error {
		categories, err := api.ListCategories(gctx, token)
		c.categories = categories
		return err
	})

	if err := g.Wait(); err != nil {
		metrics.RecordUpstreamError(salesAPIService)
		return nil, &TechnicalError{
			Code:    "UPSTREAM_ERROR",
			Message: "falha ao carregar catálogo",
			Err:     err,
		}
	}

	return &c, nil
}

type GetSectionsUseCase struct {
	API     SalesAPI
	Metrics MetricsRecorder
}

func NewGetSectionsUseCase(api SalesAPI, metrics MetricsRecorder) *GetSectionsUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &GetSectionsUseCase{API: api, Metrics: metrics}
}

func (uc *GetSectionsUseCase) Execute(ctx context.Context, token string) (*GetSectionsOutput, error) {
	c, err := loadCatalog(ctx, uc.API, uc.Metrics, token)
	if err != nil {
		return nil, err
	}

	names, images := CategoryMaps(c.categories)
	sections := DeriveSections(c.products, names)
	uc.Metrics.RecordSectionsDerived(len(sections))

	log.Debug().
		Int("products", len(c.products)).
		Int("categories", len(c.categories)).
		Int("sections", len(sections)).
		Msg("sections derived")

	return &GetSectionsOutput{
		Sections:       sections,
		CategoryImages: images,
	}, nil
}

type GetProductLabelsUseCase struct {
	API     SalesAPI
	Metrics MetricsRecorder
}

func NewGetProductLabelsUseCase(api SalesAPI, metrics MetricsRecorder) *GetProductLabelsUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &GetProductLabelsUseCase{API: api, Metrics: metrics}
}

func (uc *GetProductLabelsUseCase) Execute(ctx context.Context, token, productID string) (*ProductLabelsOutput, error) {
	if errs := validateID("product_id", productID); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	c, err := loadCatalog(ctx, uc.API, uc.Metrics, token)
	if err != nil {
		return nil, err
	}

	for _, p := range c.products {
		if p.ID != productID {
			continue
		}
		names, _ := CategoryMaps(c.categories)
		labels, ids := DeriveLabels(p.Categories, names)
		return &ProductLabelsOutput{
			ProductID:   p.ID,
			Labels:      labels,
			CategoryIDs: ids,
		}, nil
	}

	return nil, &DomainError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: "produto não encontrado: " + productID,
	}
}

// FilterProductsUseCase devolve os produtos de uma categoria, na ordem
// em que vieram do backend.
type FilterProductsUseCase struct {
	API     SalesAPI
	Metrics MetricsRecorder
}

func NewFilterProductsUseCase(api SalesAPI, metrics MetricsRecorder) *FilterProductsUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &FilterProductsUseCase{API: api, Metrics: metrics}
}

func (uc *FilterProductsUseCase) Execute(ctx context.Context, token, categoryID string) (*FilterProductsOutput, error) {
	if errs := validateID("category_id", categoryID); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	c, err := loadCatalog(ctx, uc.API, uc.Metrics, token)
	if err != nil {
		return nil, err
	}

	names, _ := CategoryMaps(c.categories)
	name, known := names[categoryID]
	if !known {
		return nil, &DomainError{
			Code:    "CATEGORY_NOT_FOUND",
			Message: "categoria não encontrada: " + categoryID,
		}
	}

	products := make([]entity.Product, 0)
	for _, p := range c.products {
		if p.HasCategory(categoryID) {
			products = append(products, p)
		}
	}

	return &FilterProductsOutput{
		CategoryID:   categoryID,
		CategoryName: name,
		Products:     products,
	}, nil
}
