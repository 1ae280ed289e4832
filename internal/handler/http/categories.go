// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	categories, err := h.services.DiaryService.GetCategories(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToGetCategories)
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var request models.CategoryRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	category, err := h.services.DiaryService.AddCategory(r.Context(), userID, request)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToCreateCategory)
		return
	}

	log.Debug().Int64("category_id", category.ID).Msg("category created")
	utils.WriteJSON(w, category, http.StatusCreated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	categoryID, ok := idFromPath(r, "id")
	if !ok {
		utils.WriteError(w, app.MsgCategoryNotFound, http.StatusNotFound)
		return
	}

	if err := h.services.DiaryService.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		writeServiceError(w, r, err, app.MsgFailedToDeleteCategory)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgCategoryDeleted}, http.StatusOK)
}
