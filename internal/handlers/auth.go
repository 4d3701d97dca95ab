package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	iauth "github.com/dmaia/taskboard/internal/auth"
	"github.com/dmaia/taskboard/internal/middleware"
	"github.com/dmaia/taskboard/internal/services"
	"github.com/dmaia/taskboard/pkg/response"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(db *gorm.DB, jwt *iauth.JWTService) (*AuthHandler, error) {
	service, err := services.NewAuthService(db, jwt)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{service: service}, nil
}

// Register creates a new account and returns it with a signed token.
func (h *AuthHandler) Register(c *gin.Context) {
	var payload struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	result, err := h.service.Register(requestContext(c), services.CreateUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	setAuthCookie(c, result.Token)
	response.OK(c, http.StatusCreated, "User registered successfully", result)
}

// Login verifies credentials and returns the user with a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	result, err := h.service.Login(requestContext(c), payload.Email, payload.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	setAuthCookie(c, result.Token)
	response.OK(c, http.StatusOK, "Login successful", result)
}

// setAuthCookie mirrors the token into an httponly cookie so browser clients
// survive reloads without re-sending the Authorization header.
func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, int(iauth.DefaultTokenTTL.Seconds()), "/", "", false, true)
}
