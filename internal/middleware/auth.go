package middleware

import (
	"strconv"
	"strings"

	"ripple/internal/config"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired enforces authentication for protected routes. It resolves the
// current user from a Bearer token and stores the user ID in c.Locals("userID").
// Requests without a resolvable user never reach the handler.
func AuthRequired(c *fiber.Ctx) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized, err)
	}
	c.Locals("userID", userID)
	return c.Next()
}

// resolveUserID parses and validates the Authorization header, returning the
// authenticated user's ID from the token's "sub" claim.
func resolveUserID(c *fiber.Ctx) (uint, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, models.NewUnauthenticatedError("Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, models.NewUnauthenticatedError("Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, models.NewUnauthenticatedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthenticatedError("Invalid token claims")
	}

	// Subject claim per RFC 7519 carries the user ID.
	subClaim, ok := claims["sub"]
	if !ok {
		return 0, models.NewUnauthenticatedError("Invalid token structure - missing subject")
	}
	subStr, ok := subClaim.(string)
	if !ok {
		return 0, models.NewUnauthenticatedError("Invalid token subject type")
	}

	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, models.NewUnauthenticatedError("Invalid user ID in token")
	}

	return uint(userIDVal), nil
}
