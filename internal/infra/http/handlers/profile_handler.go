package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-vendas/internal/entity"
	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

// ProfileHandler é o único escritor do estado de perfil do agente.
type ProfileHandler struct {
	Repo entity.ProfileRepositoryInterface
}

func NewProfileHandler(repo entity.ProfileRepositoryInterface) *ProfileHandler {
	return &ProfileHandler{Repo: repo}
}

// HandleGet (GET /users/{userId}/profile)
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := profileUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.Repo.FindByUserID(r.Context(), userID)
	if errors.Is(err, entity.ErrProfileNotFound) {
		// agente sem perfil ainda: versão zero
		writeJSON(w, http.StatusOK, entity.Profile{UserID: userID})
		return
	}
	if err != nil {
		writeUseCaseError(w, &usecase.TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao buscar perfil", Err: err})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleUpdate (PUT /users/{userId}/profile)
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := profileUserID(w, r)
	if !ok {
		return
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}
	if errs := usecase.ValidateEmail(input.Email); len(errs) > 0 {
		writeUseCaseError(w, usecase.NewValidationError(errs))
		return
	}

	profile, err := h.Repo.UpdateEmail(r.Context(), userID, input.Email)
	if errors.Is(err, entity.ErrEmailAlreadyExists) {
		writeErrorResponse(w, http.StatusConflict, "EMAIL_EXISTS", err.Error())
		return
	}
	if err != nil {
		writeUseCaseError(w, &usecase.TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao atualizar perfil", Err: err})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleBumpImage (PUT /users/{userId}/profile/image)
func (h *ProfileHandler) HandleBumpImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := profileUserID(w, r)
	if !ok {
		return
	}

	version, err := h.Repo.BumpImageVersion(r.Context(), userID)
	if err != nil {
		writeUseCaseError(w, &usecase.TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao atualizar foto", Err: err})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"image_version": version})
}

// profileUserID lê o userId da rota; id inválido não pode virar linha em profiles.
func profileUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "userId is required")
		return "", false
	}
	if errs := usecase.ValidateUserID(userID); len(errs) > 0 {
		writeUseCaseError(w, usecase.NewValidationError(errs))
		return "", false
	}
	return userID, true
}
