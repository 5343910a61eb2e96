package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/nghetinhport/tos-bigdata-api/pkg/util"
)

const subjectKey = "auth_subject"

// Middleware validates bearer tokens on protected routes. Verification is a
// pure computation: signature check plus clock comparison, no store lookup.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware around a token manager.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Invalid authentication credentials")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("Invalid authentication credentials")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("Invalid authentication credentials")
	}

	c.Locals(subjectKey, claims.Subject)
	return c.Next()
}

// SubjectFromContext retrieves the authenticated username.
func SubjectFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(subjectKey)
	if val == nil {
		return "", false
	}
	subject, ok := val.(string)
	return subject, ok
}
