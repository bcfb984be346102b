package handler

import (
	"fmt"
	"net/http"

	"github.com/hemangjain17/TruthLens-backend/internal/service"
)

type MediaHandler struct {
	intake   *service.IntakeService
	maxBytes int64
}

func NewMediaHandler(intake *service.IntakeService, maxBytes int64) *MediaHandler {
	return &MediaHandler{intake: intake, maxBytes: maxBytes}
}

// UploadMedia accepts one multipart submission. The request either fully
// succeeds or returns a single error; there is no partial-success shape.
// Malformed link-field JSON surfaces here as a 500, not a 400 — the
// whole intake path shares one failure mode.
func (h *MediaHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	form, err := r.MultipartReader()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := h.intake.Intake(r.Context(), form); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Raw data uploaded successfully!",
	})
}

// GetLatestData returns the newest submission for the email query
// parameter.
func (h *MediaHandler) GetLatestData(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required", nil)
		return
	}

	sub, err := h.intake.Latest(r.Context(), email)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching data: %v", err), nil)
		return
	}
	if sub == nil {
		writeMessage(w, http.StatusNotFound, "No records found", nil)
		return
	}
	writeMessage(w, http.StatusOK, "Latest entry retrieved", sub)
}

// GetTopData returns up to five submissions for the email query
// parameter, newest first. No matches is an empty list, not a 404.
func (h *MediaHandler) GetTopData(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required", nil)
		return
	}

	subs, err := h.intake.Top(r.Context(), email)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching data: %v", err), nil)
		return
	}
	writeMessage(w, http.StatusOK, "Last 5 entries retrieved", subs)
}
