package handlers

import (
	"net/http"

	"worklog/summary"
)

type SummaryHandler struct {
	service *summary.Service
}

func NewSummaryHandler(service *summary.Service) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// Weekly serves the combined week + quincena summary for the reference date.
func (h *SummaryHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	ref, ok := refDate(r)
	if !ok {
		writeFieldError(w, "Invalid date format (YYYY-MM-DD)", "date")
		return
	}

	result, err := h.service.Weekly(ref)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
