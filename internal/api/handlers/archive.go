package handlers

import (
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/wolfyek/client-gallery/internal/utils"
)

// GET /api/v1/galleries/{id}/archive?email=&password=
// Streams every photo of a downloadable gallery as one ZIP. The email
// is required for the download log, the password only for protected
// galleries.
func (h *Handler) GalleryArchive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	gallery, err := h.lookupGallery(r)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Gallery not found")
		return
	}
	if !gallery.IsDownloadable() {
		utils.Fail(w, http.StatusForbidden, "Downloads are disabled for this gallery")
		return
	}
	if gallery.IsProtected() &&
		subtle.ConstantTimeCompare([]byte(r.URL.Query().Get("password")), []byte(gallery.Password)) != 1 {
		utils.Fail(w, http.StatusUnauthorized, "Wrong password")
		return
	}

	email := r.URL.Query().Get("email")
	if !strings.Contains(email, "@") {
		utils.Fail(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if len(gallery.Photos) == 0 {
		utils.Fail(w, http.StatusNotFound, "Gallery has no photos")
		return
	}

	firstSrc := gallery.Photos[0].Src
	h.logs.LogDownload(r.Context(), email, gallery.Title, "ZIP-ARCHIVE", firstSrc, gallery.Title+".zip")

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", gallery.Title+".zip"))

	if err := h.packager.WriteArchive(r.Context(), w, gallery.Title, gallery.Photos); err != nil {
		// Headers are already on the wire; log and cut the stream.
		log.Printf("archive: gallery %s: %v", gallery.ID, err)
	}
}
