package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nghetinhport/tos-bigdata-api/internal/api/dto"
	"github.com/nghetinhport/tos-bigdata-api/internal/auth"
	"github.com/nghetinhport/tos-bigdata-api/internal/service"
	apperrors "github.com/nghetinhport/tos-bigdata-api/pkg/util"
)

// AuthHandler exposes the login endpoint and the protected smoke-test route.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/login. The error body keeps the upstream's
// capitalized Code/Message casing.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload")
	}
	if req.Username == "" {
		return apperrors.NewValidation("Username required")
	}
	if req.Password == "" {
		return apperrors.NewValidation("Password required")
	}

	token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.HTTPStatus == http.StatusUnauthorized {
			return c.Status(http.StatusUnauthorized).JSON(dto.LoginError{
				Code:    "0",
				Message: domainErr.Message,
			})
		}
		return err
	}

	return c.JSON(dto.LoginResponse{
		AccessToken: token,
		Code:        "1",
		Message:     "Login thành công",
		ExpireIn:    fmt.Sprintf("%dh", int(h.auth.TokenTTL()/time.Hour)),
	})
}

// Protected handles GET /api/protected, a token smoke test.
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	subject, _ := auth.SubjectFromContext(c)
	return c.JSON(fiber.Map{
		"message": "This is a protected route",
		"user":    subject,
	})
}
