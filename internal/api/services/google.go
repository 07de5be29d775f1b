package services

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/wolfyek/client-gallery/internal/config"
)

// GoogleOauthConfig drives the optional Google sign-in for the admin.
// Only the configured admin email is accepted at the callback.
var GoogleOauthConfig = &oauth2.Config{
	ClientID:     config.Envs.Google.ClientID,
	ClientSecret: config.Envs.Google.ClientSecret,
	RedirectURL:  config.Envs.Google.RedirectURL,
	Scopes: []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	},
	Endpoint: google.Endpoint,
}

// Enabled reports whether Google sign-in is configured.
func Enabled() bool {
	return GoogleOauthConfig.ClientID != "" && GoogleOauthConfig.ClientSecret != ""
}
