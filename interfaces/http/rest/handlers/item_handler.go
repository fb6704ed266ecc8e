// Package handlers contains the chi HTTP handlers. Handlers translate the
// request envelope, delegate to the services and shape responses; every
// error funnels through the shared error mapper.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hmaas-backend/application/ports"
	"hmaas-backend/application/services"
	"hmaas-backend/domain"
	"hmaas-backend/pkg/common"
	apperrors "hmaas-backend/pkg/errors"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	service *services.ItemService
	logger  *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service *services.ItemService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger,
	}
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, r, h.logger, apperrors.NewBadRequestError("Invalid request body").WithCause(err))
		return
	}

	item, err := h.service.CreateItem(r.Context(), req)
	if err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, item)
}

// GetItem handles GET /items/{itemID}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		common.RespondError(w, r, h.logger, apperrors.NewBadRequestError("Missing itemId"))
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, item)
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptionsFromQuery(r)
	if err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	page, err := h.service.ListItems(r.Context(), opts)
	if err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, page)
}

// DeleteItem handles DELETE /items/{itemID}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		common.RespondError(w, r, h.logger, apperrors.NewBadRequestError("Missing itemId"))
		return
	}

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		common.RespondError(w, r, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// listOptionsFromQuery extracts limit and cursor query parameters shared by
// the list endpoints.
func listOptionsFromQuery(r *http.Request) (ports.ListOptions, error) {
	var opts ports.ListOptions

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit <= 0 {
			return opts, apperrors.NewBadRequestError("limit must be a positive integer")
		}
		opts.Limit = int32(limit)
	}

	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		opts.Cursor = &cursor
	}

	return opts, nil
}
