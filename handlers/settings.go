package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"worklog/models"
	"worklog/storage"

	"github.com/go-chi/chi/v5"
)

type SettingsHandler struct {
	store storage.Store
}

func NewSettingsHandler(store storage.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, err := h.store.GetSetting(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Setting not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.Setting{Key: key, Value: value})
}

func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var input struct {
		Value *string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Value == nil {
		writeFieldError(w, "Required", "value")
		return
	}

	if err := h.store.SetSetting(key, *input.Value); err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.Setting{Key: key, Value: *input.Value})
}
