package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Myusername84/food-server/config"
	"github.com/Myusername84/food-server/services"
	"github.com/Myusername84/food-server/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookieName = "oauthstate"
	userInfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleAuth runs the Google authorization-code flow and lands the federated
// user in a regular server-side session.
type GoogleAuth struct {
	oauth        *oauth2.Config
	accounts     *services.AccountService
	sessions     *session.Manager
	clientOrigin string
}

func NewGoogleAuth(cfg *config.Config, accounts *services.AccountService, sessions *session.Manager) *GoogleAuth {
	return &GoogleAuth{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		accounts:     accounts,
		sessions:     sessions,
		clientOrigin: cfg.ClientOrigin,
	}
}

// GET /google
func (g *GoogleAuth) Redirect(c *gin.Context) {
	state := uuid.NewString()

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(stateCookieName, state, int((10 * time.Minute).Seconds()), "/", "", true, true)
	c.Redirect(http.StatusTemporaryRedirect, g.oauth.AuthCodeURL(state))
}

// GET /google/callback
func (g *GoogleAuth) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || c.Query("state") != state {
		// Mirrors the consent-denied path: back to the landing page.
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}

	ctx := c.Request.Context()
	token, err := g.oauth.Exchange(ctx, c.Query("code"))
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}

	profile, err := g.fetchProfile(ctx, token)
	if err != nil || profile.Email == "" {
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}

	user, err := g.accounts.LoginWithOAuth(ctx, profile.Email, profile.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	sessionToken, err := g.sessions.Create(ctx, *user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(session.CookieName, sessionToken, int(session.DefaultTTL.Seconds()), "/", "", true, true)
	c.Redirect(http.StatusTemporaryRedirect, g.clientOrigin)
}

type googleProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (g *GoogleAuth) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	resp, err := g.oauth.Client(ctx, token).Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return &profile, nil
}
