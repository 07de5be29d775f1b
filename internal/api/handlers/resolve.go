package handlers

import (
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/wolfyek/client-gallery/internal/nextcloud"
	"github.com/wolfyek/client-gallery/internal/utils"
)

// GET /api/v1/resolve?url={storedUrl}
// Resolves a stored photo URL to its display and download targets so
// clients never have to understand historical URL encodings.
func (h *Handler) ResolvePhoto(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	stored := r.URL.Query().Get("url")
	if stored == "" {
		utils.Fail(w, http.StatusBadRequest, "Missing url parameter")
		return
	}

	downloadURL, _ := nextcloud.ToDownloadURL(stored)
	utils.OK(w, "Resolved", map[string]any{
		"displayUrl":  nextcloud.ToDisplayURL(stored),
		"downloadUrl": downloadURL,
	})
}

// GET /api/download?url={storedUrl}
// Redirects to the attachment-forcing download target. Strict no-proxy
// policy: the server never relays image bytes, it only redirects.
func (h *Handler) DownloadRedirect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	stored := r.URL.Query().Get("url")
	if stored == "" {
		utils.Fail(w, http.StatusBadRequest, "Missing url parameter")
		return
	}

	target, ok := nextcloud.ToDownloadURL(stored)
	if !ok {
		// Direct non-Nextcloud URLs are their own download target.
		if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
			target = stored
		} else {
			utils.Fail(w, http.StatusNotFound, "Download target could not be resolved")
			return
		}
	}

	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

// GET /api/proxy?server=&token=&path=
// Legacy endpoint kept alive because early imports stored /api/proxy
// URLs in galleries. Redirects straight to the share-download endpoint.
func (h *Handler) LegacyProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	q := r.URL.Query()
	server := strings.TrimRight(q.Get("server"), "/")
	token := q.Get("token")
	filePath := q.Get("path")
	if server == "" || token == "" || filePath == "" {
		utils.Fail(w, http.StatusBadRequest, "Missing parameters")
		return
	}

	if !strings.HasPrefix(filePath, "/") {
		filePath = "/" + filePath
	}
	dir := path.Dir(filePath)
	name := path.Base(filePath)

	v := url.Values{}
	v.Set("path", dir)
	v.Set("files", name)
	target := server + "/s/" + token + "/download?" + v.Encode()

	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
