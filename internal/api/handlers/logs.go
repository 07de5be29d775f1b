package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wolfyek/client-gallery/internal/api/middleware"
	"github.com/wolfyek/client-gallery/internal/models"
	"github.com/wolfyek/client-gallery/internal/utils"
)

// GET /api/v1/admin/logs
func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	activity, err := h.logs.GetActivity(r.Context())
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to load logs")
		return
	}
	downloads, err := h.logs.GetDownloads(r.Context())
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to load logs")
		return
	}

	utils.OK(w, "Logs retrieved", map[string]any{
		"activity":  activity,
		"downloads": downloads,
	})
}

// DELETE /api/v1/admin/logs: wipes the whole audit trail.
func (h *Handler) DeleteAllLogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if err := h.logs.DeleteAll(r.Context()); err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to delete logs")
		return
	}

	h.logs.LogActivity(r.Context(), models.ActivityOther, "Deleted all logs",
		middleware.AdminUser(r.Context()))
	utils.OK(w, "Logs deleted", nil)
}

// DELETE /api/v1/admin/logs/{kind}/{id}: kind is activity or downloads.
func (h *Handler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid log id")
		return
	}

	switch r.PathValue("kind") {
	case "activity":
		err = h.logs.DeleteActivity(r.Context(), id)
	case "downloads":
		err = h.logs.DeleteDownload(r.Context(), id)
	default:
		utils.Fail(w, http.StatusNotFound, "Unknown log kind")
		return
	}
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to delete log entry")
		return
	}

	utils.OK(w, "Log entry deleted", nil)
}

// POST /api/v1/downloads: visitors record a download before the
// browser follows the redirect. Failures never block the download.
func (h *Handler) RecordDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input struct {
		Email        string `json:"email"`
		GalleryTitle string `json:"galleryTitle"`
		PhotoID      string `json:"photoId"`
		PhotoSrc     string `json:"photoSrc"`
		PhotoName    string `json:"photoName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !strings.Contains(input.Email, "@") {
		utils.Fail(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	h.logs.LogDownload(r.Context(), input.Email, input.GalleryTitle,
		input.PhotoID, input.PhotoSrc, input.PhotoName)
	utils.OK(w, "Download recorded", nil)
}
