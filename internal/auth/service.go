package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/eduboost/eduboost-back/internal/config"
	"github.com/eduboost/eduboost-back/internal/db"
	"github.com/eduboost/eduboost-back/internal/models"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

var googleOauthConfig *oauth2.Config

func InitGoogle(cfg *config.Config) {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  cfg.BaseURL + "/auth/google/callback",
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleSecret,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// @Summary      Login with Google
// @Description  Redirects to the Google consent screen
// @Tags         auth
// @Success      307 {string} string "redirect"
// @Router       /auth/google/login [get]
func GoogleLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		url := googleOauthConfig.AuthCodeURL("state")
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

// @Summary      Google Callback
// @Description  Exchanges the OAuth code and issues workspace tokens
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /auth/google/callback [get]
func GoogleCallbackHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		token, err := googleOauthConfig.Exchange(context.Background(), code)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to exchange token"})
			return
		}

		resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get user info"})
			return
		}
		defer resp.Body.Close()

		var userInfo struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil || userInfo.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse user info"})
			return
		}

		u := models.User{
			Email:        userInfo.Email,
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			TokenType:    token.TokenType,
			Expiry:       token.Expiry,
		}
		if err := db.SaveOrUpdateUser(context.Background(), u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
			return
		}

		access, refresh, err := mintTokenPair(u.Email, cfg.JWTSecret)
		if err != nil {
			log.Println("token signing failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
			return
		}

		c.JSON(200, gin.H{
			"access_token":  access,
			"refresh_token": refresh,
			"email":         u.Email,
		})
	}
}

// mintTokenPair issues a short-lived access token and a long-lived refresh
// token for the given account.
func mintTokenPair(email, secret string) (access, refresh string, err error) {
	key := []byte(secret)

	accessClaims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(key)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(refreshTokenTTL).Unix(),
		"type":  "refresh",
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(key)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
