package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-vendas/internal/entity"
	"github.com/xavierca1/ligue-vendas/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

func catalogRouter(api usecase.SalesAPI) http.Handler {
	h := handlers.NewCatalogHandler(
		usecase.NewGetSectionsUseCase(api, nil),
		usecase.NewGetProductLabelsUseCase(api, nil),
		usecase.NewFilterProductsUseCase(api, nil),
	)
	r := chi.NewRouter()
	r.Get("/sections", h.HandleSections)
	r.Get("/products/{productId}/labels", h.HandleProductLabels)
	r.Get("/categories/{categoryId}/products", h.HandleCategoryProducts)
	return r
}

func stubCatalog(api *mockSalesAPI, token string) {
	api.On("ListProducts", mock.Anything, token).Return([]entity.Product{
		{ID: "p1", Name: "Health", Categories: []string{"c1"}},
		{ID: "p2", Name: "", Categories: []string{"c2"}},
	}, nil)
	api.On("ListCategories", mock.Anything, token).Return([]entity.Category{
		{ID: "c1", Name: "Health Insurance"},
		{ID: "c2", Name: "Credit Card"},
	}, nil)
}

func TestHandleSections(t *testing.T) {
	api := new(mockSalesAPI)
	stubCatalog(api, "agent-token")

	req := httptest.NewRequest(http.MethodGet, "/sections", nil)
	req.Header.Set("Authorization", "Bearer agent-token")
	rec := httptest.NewRecorder()
	catalogRouter(api).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out usecase.GetSectionsOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Sections, 2)
	assert.Equal(t, "Health", out.Sections[0].Name)
	assert.Equal(t, entity.CardVariantA, out.Sections[0].CardVariant)
	assert.Equal(t, usecase.OtherProductsSection, out.Sections[1].Name)
	assert.Equal(t, entity.CardVariantB, out.Sections[1].CardVariant)
	api.AssertExpectations(t)
}

func TestHandleSectionsUpstreamFailure(t *testing.T) {
	api := new(mockSalesAPI)
	api.On("ListProducts", mock.Anything, "").Return(nil, errors.New("timeout"))
	api.On("ListCategories", mock.Anything, "").Return([]entity.Category{}, nil).Maybe()

	rec := httptest.NewRecorder()
	catalogRouter(api).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sections", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UPSTREAM_ERROR", body.Error)
}

func TestHandleProductLabels(t *testing.T) {
	api := new(mockSalesAPI)
	stubCatalog(api, "")

	rec := httptest.NewRecorder()
	catalogRouter(api).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/p1/labels", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out usecase.ProductLabelsOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []string{"Health\nInsurance"}, out.Labels)
	assert.Equal(t, []string{"c1"}, out.CategoryIDs)
}

func TestHandleProductLabelsNotFound(t *testing.T) {
	api := new(mockSalesAPI)
	stubCatalog(api, "")

	rec := httptest.NewRecorder()
	catalogRouter(api).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/p9/labels", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestHandleCategoryProducts(t *testing.T) {
	api := new(mockSalesAPI)
	stubCatalog(api, "")

	rec := httptest.NewRecorder()
	catalogRouter(api).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories/c2/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out usecase.FilterProductsOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Credit Card", out.CategoryName)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "p2", out.Products[0].ID)
}

func TestHandleCategoryProductsInvalidID(t *testing.T) {
	api := new(mockSalesAPI)

	rec := httptest.NewRecorder()
	catalogRouter(api).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories/c.2/products", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
