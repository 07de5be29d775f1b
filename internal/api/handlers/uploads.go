package handlers

import (
	"encoding/json"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/wolfyek/client-gallery/internal/utils"
)

const presignExpiry = 15 * time.Minute

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/avif": true,
}

// POST /api/v1/admin/uploads/presign
// Hands the admin a presigned PUT URL so cover images and manually
// added photos can be hosted in the R2 bucket instead of hotlinked.
func (h *Handler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if h.uploads == nil {
		utils.Fail(w, http.StatusNotImplemented, "Uploads are not configured")
		return
	}

	var input struct {
		Filename    string `json:"filename"`
		ContentType string `json:"contentType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Filename == "" {
		utils.Fail(w, http.StatusBadRequest, "Filename is required")
		return
	}
	if !allowedUploadTypes[input.ContentType] {
		utils.Fail(w, http.StatusBadRequest, "Unsupported content type")
		return
	}

	token, err := utils.GenerateSecureToken(8)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to create upload key")
		return
	}
	key := "uploads/" + token + "_" + sanitizeFilename(input.Filename)

	uploadURL, err := h.uploads.PresignUpload(r.Context(), key, input.ContentType, presignExpiry)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to presign upload")
		return
	}

	utils.OK(w, "Upload URL created", map[string]any{
		"uploadUrl": uploadURL,
		"publicUrl": h.uploads.PublicURL(key),
		"key":       key,
		"expiresIn": presignExpiry.String(),
	})
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
