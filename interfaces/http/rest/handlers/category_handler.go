package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hmaas-backend/application/services"
	"hmaas-backend/domain"
	"hmaas-backend/pkg/common"
	apperrors "hmaas-backend/pkg/errors"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	service *services.CategoryService
	logger  *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *services.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, r, h.logger, apperrors.NewBadRequestError("Invalid request body").WithCause(err))
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, category)
}

// GetCategory handles GET /categories/{categoryID}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")
	if categoryID == "" {
		common.RespondError(w, r, h.logger, apperrors.NewBadRequestError("Missing categoryId"))
		return
	}

	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, category)
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptionsFromQuery(r)
	if err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	page, err := h.service.ListCategories(r.Context(), opts)
	if err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, page)
}

// DeleteCategory handles DELETE /categories/{categoryID}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")
	if categoryID == "" {
		common.RespondError(w, r, h.logger, apperrors.NewBadRequestError("Missing categoryId"))
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}
