package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aitoolhub/aitoolhub/internal/catalog"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// toolsHandler provides the catalog REST handlers.
type toolsHandler struct {
	tools  store.ToolStore
	logger *zap.Logger
}

// List returns tools matching the optional category and search filters.
// GET /api/tools?category=&search=
//
// @Summary      List tools
// @Description  Returns catalog tools. Category is an exact match (use "all" or omit for every category); search matches name or description case-insensitively.
// @Tags         Tools
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        search    query     string  false  "Substring search"
// @Success      200       {array}   store.Tool
// @Failure      500       {object}  ErrorResponse
// @Router       /tools [get]
func (h *toolsHandler) List(w http.ResponseWriter, r *http.Request) {
	tools, err := h.tools.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list tools", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, catalog.FilterTools(tools, q.Get("category"), q.Get("search")))
}

// Create adds a tool to the catalog. Admin only.
// POST /api/tools
//
// @Summary      Create a tool
// @Description  Adds a tool to the catalog with rating and review count initialized to zero. Requires the admin role.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        body  body      CreateToolRequest  true  "Tool to create"
// @Success      201   {object}  store.Tool
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tools [post]
func (h *toolsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", "BAD_REQUEST")
		return
	}
	category := store.Category(req.Category)
	if !category.Valid() {
		writeError(w, http.StatusBadRequest, "invalid category", "INVALID_CATEGORY")
		return
	}

	// Rating and review count start at zero; they only ever change through
	// review submission.
	tool := &store.Tool{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Category:    category,
		Description: req.Description,
		Price:       req.Price,
		Website:     req.Website,
		Features:    req.Features,
		Rating:      0,
		ReviewCount: 0,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.tools.Create(r.Context(), tool); err != nil {
		h.logger.Error("create tool", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

// Update merges the supplied fields over an existing tool. Admin only.
// PUT /api/tools/{id}
//
// @Summary      Update a tool
// @Description  Shallow-merges the supplied fields over the stored tool. Derived fields cannot be set.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Tool id"
// @Param        body  body      UpdateToolRequest  true  "Fields to change"
// @Success      200   {object}  store.Tool
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tools/{id} [put]
func (h *toolsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	tool, err := h.tools.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tool not found", "NOT_FOUND")
			return
		}
		h.logger.Error("load tool", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}

	if req.Name != nil {
		tool.Name = *req.Name
	}
	if req.Category != nil {
		category := store.Category(*req.Category)
		if !category.Valid() {
			writeError(w, http.StatusBadRequest, "invalid category", "INVALID_CATEGORY")
			return
		}
		tool.Category = category
	}
	if req.Description != nil {
		tool.Description = *req.Description
	}
	if req.Price != nil {
		tool.Price = req.Price
	}
	if req.Website != nil {
		tool.Website = *req.Website
	}
	if req.Features != nil {
		tool.Features = *req.Features
	}

	if err := h.tools.Update(r.Context(), tool); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tool not found", "NOT_FOUND")
			return
		}
		h.logger.Error("update tool", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// Delete removes a tool from the catalog. Admin only.
// DELETE /api/tools/{id}
//
// @Summary      Delete a tool
// @Tags         Tools
// @Produce      json
// @Param        id   path      string  true  "Tool id"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tools/{id} [delete]
func (h *toolsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.tools.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tool not found", "NOT_FOUND")
			return
		}
		h.logger.Error("delete tool", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "tool deleted"})
}
