package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/wolfyek/client-gallery/internal/api/middleware"
	"github.com/wolfyek/client-gallery/internal/models"
	"github.com/wolfyek/client-gallery/internal/nextcloud"
	"github.com/wolfyek/client-gallery/internal/repositories"
	"github.com/wolfyek/client-gallery/internal/utils"
)

// galleryInput is the admin-facing create/update body. Photos arrive as
// a full replacement list; an absent list keeps the stored photos.
type galleryInput struct {
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Date               string         `json:"date"`
	CoverImage         string         `json:"coverImage"`
	CoverImagePosition string         `json:"coverImagePosition"`
	Password           string         `json:"password"`
	Downloadable       *bool          `json:"downloadable"`
	Category           string         `json:"category"`
	Slug               string         `json:"slug"`
	TitleEn            string         `json:"titleEn"`
	DescriptionEn      string         `json:"descriptionEn"`
	SlugEn             string         `json:"slugEn"`
	Hidden             bool           `json:"hidden"`
	Photos             []models.Photo `json:"photos"`
}

// POST /api/v1/admin/galleries
// CreateGallery godoc
// @Summary Create a gallery
// @Tags Admin
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /admin/galleries [post]
func (h *Handler) CreateGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input galleryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Title == "" || input.Date == "" {
		utils.Fail(w, http.StatusBadRequest, "Title and date are required")
		return
	}

	id := utils.Slugify(input.Title)
	if id == "" {
		utils.Fail(w, http.StatusBadRequest, "Title must contain at least one letter or digit")
		return
	}
	if _, err := h.galleries.GetGallery(r.Context(), id); err == nil {
		utils.Fail(w, http.StatusConflict, "A gallery with this title already exists")
		return
	}

	gallery := models.Gallery{
		ID:                 id,
		Title:              input.Title,
		Description:        input.Description,
		Date:               input.Date,
		CoverImage:         input.CoverImage,
		CoverImagePosition: input.CoverImagePosition,
		Password:           input.Password,
		Downloadable:       input.Downloadable,
		Category:           input.Category,
		Slug:               input.Slug,
		TitleEn:            input.TitleEn,
		DescriptionEn:      input.DescriptionEn,
		SlugEn:             input.SlugEn,
		Hidden:             input.Hidden,
		Photos:             input.Photos,
	}
	if gallery.Photos == nil {
		gallery.Photos = models.PhotoList{}
	}

	if err := h.galleries.SaveGallery(r.Context(), &gallery); err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to save gallery")
		return
	}

	h.logs.LogActivity(r.Context(), models.ActivityCreateGallery,
		fmt.Sprintf("Created gallery: %s (%d photos)", gallery.Title, len(gallery.Photos)),
		middleware.AdminUser(r.Context()))

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Gallery created",
		Data:    gallery,
	})
}

// PUT /api/v1/admin/galleries/{id}
func (h *Handler) UpdateGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id := r.PathValue("id")
	existing, err := h.galleries.GetGallery(r.Context(), id)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Gallery not found")
		return
	}

	var input galleryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Title == "" || input.Date == "" {
		utils.Fail(w, http.StatusBadRequest, "Title and date are required")
		return
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Date = input.Date
	existing.CoverImage = input.CoverImage
	existing.CoverImagePosition = input.CoverImagePosition
	existing.Password = input.Password
	existing.Downloadable = input.Downloadable
	existing.Category = input.Category
	existing.Slug = input.Slug
	existing.TitleEn = input.TitleEn
	existing.DescriptionEn = input.DescriptionEn
	existing.SlugEn = input.SlugEn
	existing.Hidden = input.Hidden
	if input.Photos != nil {
		existing.Photos = input.Photos
	}

	if err := h.galleries.SaveGallery(r.Context(), existing); err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to save gallery")
		return
	}

	h.logs.LogActivity(r.Context(), models.ActivityUpdateGallery,
		fmt.Sprintf("Updated gallery: %s (Total: %d photos)", existing.Title, len(existing.Photos)),
		middleware.AdminUser(r.Context()))

	utils.OK(w, "Gallery updated", existing)
}

// DELETE /api/v1/admin/galleries/{id}
func (h *Handler) DeleteGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id := r.PathValue("id")
	title := id
	if existing, err := h.galleries.GetGallery(r.Context(), id); err == nil {
		title = existing.Title
	}

	if err := h.galleries.DeleteGallery(r.Context(), id); err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to delete gallery")
		return
	}

	h.logs.LogActivity(r.Context(), models.ActivityDeleteGallery,
		fmt.Sprintf("Deleted gallery: %s", title),
		middleware.AdminUser(r.Context()))

	utils.OK(w, "Gallery deleted", nil)
}

// GET /api/v1/admin/galleries: full records including passwords.
func (h *Handler) AdminListGalleries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	galleries, err := h.galleries.GetGalleries(r.Context())
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to load galleries")
		return
	}
	utils.OK(w, "Galleries retrieved", galleries)
}

// GET /api/v1/galleries: public listing. Hidden galleries are dropped,
// password and photos never leave the server for protected galleries.
func (h *Handler) ListGalleries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	galleries, err := h.galleries.GetGalleries(r.Context())
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to load galleries")
		return
	}

	visible := make([]map[string]any, 0, len(galleries))
	for i := range galleries {
		g := &galleries[i]
		if g.Hidden {
			continue
		}
		visible = append(visible, publicGalleryView(g, !g.IsProtected()))
	}
	utils.OK(w, "Galleries retrieved", visible)
}

// GET /api/v1/galleries/{id}: by id or custom slug. Protected galleries
// come back locked, without photos; POST /unlock opens them.
func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	gallery, err := h.lookupGallery(r)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Gallery not found")
		return
	}

	utils.OK(w, "Gallery retrieved", publicGalleryView(gallery, !gallery.IsProtected()))
}

// POST /api/v1/galleries/{id}/unlock
func (h *Handler) UnlockGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	gallery, err := h.lookupGallery(r)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Gallery not found")
		return
	}

	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if gallery.IsProtected() &&
		subtle.ConstantTimeCompare([]byte(input.Password), []byte(gallery.Password)) != 1 {
		utils.Fail(w, http.StatusUnauthorized, "Wrong password")
		return
	}

	utils.OK(w, "Gallery unlocked", publicGalleryView(gallery, true))
}

func (h *Handler) lookupGallery(r *http.Request) (*models.Gallery, error) {
	key := r.PathValue("id")
	gallery, err := h.galleries.GetGallery(r.Context(), key)
	if errors.Is(err, repositories.ErrGalleryNotFound) {
		return h.galleries.GetGalleryBySlug(r.Context(), key)
	}
	return gallery, err
}

// publicGalleryView shapes a gallery for visitors. Photo URLs are passed
// through the display resolver so legacy proxy encodings still render.
func publicGalleryView(g *models.Gallery, includePhotos bool) map[string]any {
	view := map[string]any{
		"id":                 g.ID,
		"title":              g.Title,
		"description":        g.Description,
		"date":               g.Date,
		"coverImage":         nextcloud.ToDisplayURL(g.CoverImage),
		"coverImagePosition": g.CoverImagePosition,
		"category":           g.Category,
		"slug":               g.Slug,
		"titleEn":            g.TitleEn,
		"descriptionEn":      g.DescriptionEn,
		"slugEn":             g.SlugEn,
		"protected":          g.IsProtected(),
		"downloadable":       g.IsDownloadable(),
	}

	if includePhotos {
		photos := make([]map[string]any, 0, len(g.Photos))
		for _, p := range g.Photos {
			photos = append(photos, map[string]any{
				"id":         p.ID,
				"src":        nextcloud.ToDisplayURL(p.Src),
				"previewSrc": nextcloud.ToDisplayURL(p.DisplaySrc()),
				"width":      p.Width,
				"height":     p.Height,
				"alt":        p.Alt,
				"dateTaken":  p.DateTaken,
			})
		}
		view["photos"] = photos
	}
	return view
}
