package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"github.com/wolfyek/client-gallery/internal/api/middleware"
	"github.com/wolfyek/client-gallery/internal/api/services"
	"github.com/wolfyek/client-gallery/internal/config"
	"github.com/wolfyek/client-gallery/internal/models"
	"github.com/wolfyek/client-gallery/internal/utils"
)

const sessionLifetime = 7 * 24 * time.Hour

// Claims for the admin session cookie.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Username == "" || input.Password == "" {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if !verifyAdminCredentials(input.Username, input.Password) {
		utils.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := setSessionCookie(w, input.Username); err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logs.LogActivity(r.Context(), models.ActivityLogin, "Admin logged in", input.Username)
	utils.OK(w, "Login successful", nil)
}

// POST /api/v1/admin/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	isProd := config.Envs.Environment == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   isProd,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	utils.OK(w, "Logged out successfully", nil)
}

// GET /api/v1/auth/google/login
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !services.Enabled() {
		utils.Fail(w, http.StatusNotFound, "Google sign-in is not configured")
		return
	}

	state, err := GenerateState(map[string]string{"redirect": "/admin"})
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate OAuth state")
		return
	}

	http.Redirect(w, r, services.GoogleOauthConfig.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GET /api/v1/auth/google/callback
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if !services.Enabled() {
		utils.Fail(w, http.StatusNotFound, "Google sign-in is not configured")
		return
	}

	stateData, err := DecodeState(r.FormValue("state"))
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	token, err := services.GoogleOauthConfig.Exchange(r.Context(), r.FormValue("code"))
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Code exchange failed")
		return
	}

	email, err := fetchGoogleEmail(r.Context(), token)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to get user info")
		return
	}

	// Only the configured admin account may sign in this way.
	if config.Envs.Admin.Email == "" || email != config.Envs.Admin.Email {
		utils.Fail(w, http.StatusForbidden, "Account is not authorized")
		return
	}

	if err := setSessionCookie(w, config.Envs.Admin.Username); err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logs.LogActivity(r.Context(), models.ActivityLogin, "Admin logged in via Google", config.Envs.Admin.Username)

	redirect := stateData["redirect"]
	if redirect == "" {
		redirect = "/admin"
	}
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

func fetchGoogleEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := services.GoogleOauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var googleUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(data, &googleUser); err != nil {
		return "", err
	}
	return googleUser.Email, nil
}

func verifyAdminCredentials(username, password string) bool {
	admin := config.Envs.Admin
	if subtle.ConstantTimeCompare([]byte(username), []byte(admin.Username)) != 1 {
		return false
	}
	if admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
	}
	if admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) == 1
}

func setSessionCookie(w http.ResponseWriter, username string) error {
	expiration := time.Now().Add(sessionLifetime)
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Envs.JWTSecret))
	if err != nil {
		return err
	}

	isProd := config.Envs.Environment == "production"
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(sessionLifetime.Seconds()),
		Secure:   isProd,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}
