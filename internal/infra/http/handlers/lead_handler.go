package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

type LeadHandler struct {
	ListLeadsUC *usecase.ListLeadsUseCase
	SyncLeadsUC *usecase.SyncLeadsUseCase
}

func NewLeadHandler(listUC *usecase.ListLeadsUseCase, syncUC *usecase.SyncLeadsUseCase) *LeadHandler {
	return &LeadHandler{
		ListLeadsUC: listUC,
		SyncLeadsUC: syncUC,
	}
}

// HandleList (GET /users/{userId}/leads?status=Converted)
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListLeadsInput{
		UserID: chi.URLParam(r, "userId"),
		Status: r.URL.Query().Get("status"),
	}
	if input.UserID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "userId is required")
		return
	}

	output, err := h.ListLeadsUC.Execute(r.Context(), bearerToken(r), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

// HandleSync (POST /users/{userId}/leads/sync)
func (h *LeadHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "userId is required")
		return
	}

	output, err := h.SyncLeadsUC.Execute(r.Context(), bearerToken(r), userID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
