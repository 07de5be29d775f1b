package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wolfyek/client-gallery/internal/nextcloud"
	"github.com/wolfyek/client-gallery/internal/utils"
)

// POST /api/v1/admin/import
// NextcloudImport godoc
// @Summary Import photos from a Nextcloud public share
// @Description Lists the share over WebDAV, pairs web/full variants and returns Photo records. Nothing is persisted until the admin saves the gallery.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 502 {object} utils.Payload
// @Router /admin/import [post]
func (h *Handler) NextcloudImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input struct {
		ShareURL string `json:"shareUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ShareURL == "" {
		utils.Fail(w, http.StatusBadRequest, "Share URL is required")
		return
	}

	photos, warnings, err := h.nextcloud.Import(r.Context(), input.ShareURL)
	if err != nil {
		status, message := importErrorResponse(err)
		utils.Fail(w, status, message)
		return
	}

	utils.OK(w, "Import complete", map[string]any{
		"photos":   photos,
		"warnings": warnings,
		"count":    len(photos),
	})
}

// importErrorResponse maps pipeline errors onto user-facing messages.
// Nothing from the core propagates unwrapped past this point.
func importErrorResponse(err error) (int, string) {
	if errors.Is(err, nextcloud.ErrInvalidShareURL) {
		return http.StatusBadRequest, err.Error()
	}
	var upstream *nextcloud.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway, "Import failed: " + upstream.Error()
	}
	return http.StatusInternalServerError, "Import failed"
}
