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

func (h *Handler) getEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entries, err := h.services.DiaryService.GetEntries(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToGetEntries)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getEntriesByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	categoryID, ok := idFromPath(r, "categoryId")
	if !ok {
		utils.WriteError(w, app.MsgCategoryNotFound, http.StatusNotFound)
		return
	}

	entries, err := h.services.DiaryService.GetEntriesByCategory(r.Context(), userID, categoryID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToGetCategoryEntries)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entryID, ok := idFromPath(r, "id")
	if !ok {
		utils.WriteError(w, app.MsgEntryNotFound, http.StatusNotFound)
		return
	}

	entry, err := h.services.DiaryService.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToGetEntry)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var request models.EntryRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	entry, err := h.services.DiaryService.AddEntry(r.Context(), userID, request)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToCreateEntry)
		return
	}

	log.Debug().Int64("entry_id", entry.ID).Msg("entry created")
	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entryID, ok := idFromPath(r, "id")
	if !ok {
		utils.WriteError(w, app.MsgEntryNotFound, http.StatusNotFound)
		return
	}

	var request models.EntryUpdateRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	entry, err := h.services.DiaryService.UpdateEntry(r.Context(), userID, entryID, request)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToUpdateEntry)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entryID, ok := idFromPath(r, "id")
	if !ok {
		utils.WriteError(w, app.MsgEntryNotFound, http.StatusNotFound)
		return
	}

	if err := h.services.DiaryService.DeleteEntry(r.Context(), userID, entryID); err != nil {
		writeServiceError(w, r, err, app.MsgFailedToDeleteEntry)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEntryDeleted}, http.StatusOK)
}
