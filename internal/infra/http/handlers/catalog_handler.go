package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

type CatalogHandler struct {
	SectionsUC *usecase.GetSectionsUseCase
	LabelsUC   *usecase.GetProductLabelsUseCase
	FilterUC   *usecase.FilterProductsUseCase
}

func NewCatalogHandler(
	sectionsUC *usecase.GetSectionsUseCase,
	labelsUC *usecase.GetProductLabelsUseCase,
	filterUC *usecase.FilterProductsUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		SectionsUC: sectionsUC,
		LabelsUC:   labelsUC,
		FilterUC:   filterUC,
	}
}

// HandleSections (GET /sections)
func (h *CatalogHandler) HandleSections(w http.ResponseWriter, r *http.Request) {
	output, err := h.SectionsUC.Execute(r.Context(), bearerToken(r))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

// HandleProductLabels (GET /products/{productId}/labels)
func (h *CatalogHandler) HandleProductLabels(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "productId is required")
		return
	}

	output, err := h.LabelsUC.Execute(r.Context(), bearerToken(r), productID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

// HandleCategoryProducts (GET /categories/{categoryId}/products)
func (h *CatalogHandler) HandleCategoryProducts(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if categoryID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "categoryId is required")
		return
	}

	output, err := h.FilterUC.Execute(r.Context(), bearerToken(r), categoryID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
