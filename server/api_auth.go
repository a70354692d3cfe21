package userdemoserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	authports "github.com/qa-sandbox/go-demo-user-api/internal/domains/auth/ports"
	"github.com/qa-sandbox/go-demo-user-api/internal/shared/apierrors"
)

// AuthAPI wires HTTP transport with the simulated login service.
type AuthAPI struct {
	service authports.Service
}

// NewAuthAPI creates an AuthAPI backed by the provided service.
func NewAuthAPI(service authports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// LoginRequest is the login body. Presence is checked by the service so the
// missing-email message still wins when both fields are absent.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the fixed demo token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Post /api/login
// Log in with the demo credentials
// @Summary Simulated login returning a fixed token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} apierrors.Error "Missing email or password"
// @Failure 401 {object} apierrors.Error "Invalid credentials"
// @Router /api/login [post]
func (api *AuthAPI) LoginUser(c *gin.Context) {
	var payload LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		apierrors.Respond(c, apierrors.Validation(loginBindMessage(err)))
		return
	}
	token, err := api.service.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondLoginError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

func loginBindMessage(err error) string {
	switch bindErrorField(err) {
	case "email":
		return "Missing email"
	case "password":
		return "Missing password"
	}
	return "Invalid request body"
}

func respondLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authports.ErrMissingEmail):
		apierrors.Respond(c, apierrors.Validation("Missing email"))
	case errors.Is(err, authports.ErrMissingPassword):
		apierrors.Respond(c, apierrors.Validation("Missing password"))
	case errors.Is(err, authports.ErrInvalidCredentials):
		apierrors.Respond(c, apierrors.Unauthorized("Invalid credentials"))
	default:
		apierrors.RespondError(c, err)
	}
}
