package api

import (
	"fmt"
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/rs/cors"

	_ "github.com/wolfyek/client-gallery/docs"
	"github.com/wolfyek/client-gallery/internal/api/handlers"
	"github.com/wolfyek/client-gallery/internal/api/middleware"
	"github.com/wolfyek/client-gallery/internal/config"
)

// SetupRouter wires the public surface, the cookie-gated admin surface
// and the legacy redirect endpoints kept alive for stored URLs.
func SetupRouter(h *handlers.Handler) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// Legacy paths: old imports stored /api/proxy URLs and the frontend
	// download helper points at /api/download.
	mainMux.HandleFunc("/api/proxy", h.LegacyProxy)
	mainMux.HandleFunc("/api/download", h.DownloadRedirect)

	publicMux := http.NewServeMux()
	publicMux.HandleFunc("/auth/login", h.Login)
	publicMux.HandleFunc("/auth/google/login", h.GoogleLogin)
	publicMux.HandleFunc("/auth/google/callback", h.GoogleCallback)
	publicMux.HandleFunc("/galleries", h.ListGalleries)
	publicMux.HandleFunc("/galleries/{id}", h.GetGallery)
	publicMux.HandleFunc("/galleries/{id}/unlock", h.UnlockGallery)
	publicMux.HandleFunc("/galleries/{id}/archive", h.GalleryArchive)
	publicMux.HandleFunc("/downloads", h.RecordDownload)
	publicMux.HandleFunc("/resolve", h.ResolvePhoto)

	// ---------- PROTECTED ROUTES ----------
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("/auth/logout", h.Logout)
	adminMux.HandleFunc("/galleries", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.CreateGallery(w, r)
		default:
			h.AdminListGalleries(w, r)
		}
	})
	adminMux.HandleFunc("/galleries/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			h.DeleteGallery(w, r)
		default:
			h.UpdateGallery(w, r)
		}
	})
	adminMux.HandleFunc("/import", h.NextcloudImport)
	adminMux.HandleFunc("/logs", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			h.DeleteAllLogs(w, r)
		default:
			h.GetLogs(w, r)
		}
	})
	adminMux.HandleFunc("/logs/{kind}/{id}", h.DeleteLog)
	adminMux.HandleFunc("/uploads/presign", h.PresignUpload)

	mainMux.Handle("/api/v1/admin/",
		http.StripPrefix(
			"/api/v1/admin",
			middleware.AdminAuth(adminMux),
		),
	)
	mainMux.Handle("/api/v1/",
		http.StripPrefix("/api/v1", publicMux),
	)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
