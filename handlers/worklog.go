package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"worklog/models"
	"worklog/storage"
	"worklog/summary"

	"github.com/go-chi/chi/v5"
)

type WorkLogHandler struct {
	store storage.Store
}

func NewWorkLogHandler(store storage.Store) *WorkLogHandler {
	return &WorkLogHandler{store: store}
}

// refDate resolves the optional ?date= query parameter, defaulting to today.
func refDate(r *http.Request) (time.Time, bool) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now(), true
	}
	ref, err := time.Parse(models.DateLayout, dateStr)
	if err != nil || len(dateStr) != len(models.DateLayout) {
		return time.Time{}, false
	}
	return ref, true
}

// ListWeek returns the raw records for the Monday-Sunday week containing the
// reference date.
func (h *WorkLogHandler) ListWeek(w http.ResponseWriter, r *http.Request) {
	ref, ok := refDate(r)
	if !ok {
		writeFieldError(w, "Invalid date format (YYYY-MM-DD)", "date")
		return
	}

	start, end := summary.WeekRange(ref)
	logs, err := h.store.WorkLogsByRange(start.Format(models.DateLayout), end.Format(models.DateLayout))
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *WorkLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.CreateWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if field, message, ok := validateCreate(input); !ok {
		writeFieldError(w, message, field)
		return
	}

	start, _ := time.Parse(models.TimeLayout, input.StartTime)
	end, _ := time.Parse(models.TimeLayout, input.EndTime)
	if !end.After(start) {
		writeFieldError(w, "End time must be after start time", "endTime")
		return
	}

	log, err := h.store.CreateWorkLog(input)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (h *WorkLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid work log id")
		return
	}

	var input models.UpdateWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if field, message, ok := validateUpdate(input); !ok {
		writeFieldError(w, message, field)
		return
	}

	// When either time changes the merged pair must still be ordered, so the
	// existing record is consulted before writing anything.
	if input.StartTime != nil || input.EndTime != nil {
		existing, err := h.store.GetWorkLog(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Work log not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		startTime := existing.StartTime
		if input.StartTime != nil {
			startTime = *input.StartTime
		}
		endTime := existing.EndTime
		if input.EndTime != nil {
			endTime = *input.EndTime
		}

		start, _ := time.Parse(models.TimeLayout, startTime)
		end, _ := time.Parse(models.TimeLayout, endTime)
		if !end.After(start) {
			writeError(w, http.StatusBadRequest, "End time must be after start time")
			return
		}
	}

	log, err := h.store.UpdateWorkLog(id, input)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Work log not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (h *WorkLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid work log id")
		return
	}

	if err := h.store.DeleteWorkLog(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Work log not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func validateCreate(input models.CreateWorkLogRequest) (field, message string, ok bool) {
	switch {
	case input.Date == "":
		return "date", "Required", false
	case !models.ValidDate(input.Date):
		return "date", "Invalid date format (YYYY-MM-DD)", false
	case input.StartTime == "":
		return "startTime", "Required", false
	case !models.ValidTime(input.StartTime):
		return "startTime", "Invalid time format (HH:mm)", false
	case input.EndTime == "":
		return "endTime", "Required", false
	case !models.ValidTime(input.EndTime):
		return "endTime", "Invalid time format (HH:mm)", false
	}
	return "", "", true
}

func validateUpdate(input models.UpdateWorkLogRequest) (field, message string, ok bool) {
	switch {
	case input.Date != nil && !models.ValidDate(*input.Date):
		return "date", "Invalid date format (YYYY-MM-DD)", false
	case input.StartTime != nil && !models.ValidTime(*input.StartTime):
		return "startTime", "Invalid time format (HH:mm)", false
	case input.EndTime != nil && !models.ValidTime(*input.EndTime):
		return "endTime", "Invalid time format (HH:mm)", false
	}
	return "", "", true
}
