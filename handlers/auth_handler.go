package handlers

import (
	"errors"
	"log"
	"net/http"

	"ezpt/middleware"
	"ezpt/services"

	"github.com/gin-gonic/gin"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60 // seconds, matches token expiry

type AuthHandler struct {
	authService *services.AuthService
	limiter     *services.LoginLimiter
}

func NewAuthHandler(authService *services.AuthService, limiter *services.LoginLimiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := c.ClientIP()
	allowed, err := h.limiter.Allow(c.Request.Context(), ip)
	if err != nil {
		// Redis being down should not lock admins out.
		log.Printf("login limiter unavailable: %v", err)
		allowed = true
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed login attempts, try again later"})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			if err := h.limiter.RecordFailure(c.Request.Context(), ip); err != nil {
				log.Printf("failed to record login failure: %v", err)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.limiter.Reset(c.Request.Context(), ip); err != nil {
		log.Printf("failed to reset login limiter: %v", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	tokenString, err := c.Cookie(middleware.SessionCookie)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusOK, gin.H{"is_admin": false})
		return
	}

	claims, err := h.authService.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"is_admin": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_admin": claims.IsAdmin, "username": claims.Subject})
}
